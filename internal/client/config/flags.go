package config

import (
	"flag"
	"os"
	"time"

	"github.com/partsquest/cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-f string   path of the bearer-token file (default from Config)
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// packages do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	timeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.TokenFile, "f", cfg.TokenFile, "path of the bearer-token file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*timeout) * time.Second
}
