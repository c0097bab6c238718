package main

import (
	"context"
	"os"

	"github.com/partsquest/cli/internal/client/cli"
	"github.com/partsquest/cli/internal/client/config"
	"github.com/partsquest/cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr)

	app := cli.NewApp(cfg, log)
	app.Run(context.Background())
}
