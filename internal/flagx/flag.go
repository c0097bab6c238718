// Package flagx contains helpers for parsing a subset of the command line
// without tripping over flags that belong to other packages.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only those arguments that name an allowed flag, plus
// their values. Both "-f value" and "-f=value" forms are recognized. This
// lets each package run its own FlagSet over os.Args without erroring on
// flags it does not define.
func FilterArgs(args []string, allowed []string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		known[name] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := known[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := known[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// ConfigFilePath extracts the config file path given via -c or -config,
// or returns "" when neither is present. Other arguments are ignored.
func ConfigFilePath() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
