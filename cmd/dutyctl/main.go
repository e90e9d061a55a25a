// Command dutyctl generates, confirms and prints daily duty schedules
// from the command line.
package main

import (
	"context"
	"os"

	"github.com/arnavshah/duty-planner-go/internal/app"
	"github.com/arnavshah/duty-planner-go/internal/config"
	"github.com/arnavshah/duty-planner-go/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env from the working directory or the project root
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	opener := func(configPath string) (*app.App, func() error, error) {
		var cfg *config.Config
		var err error
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return nil, nil, err
		}
		// keep stdout for command output
		logger.Setup(cfg.LogLevel, os.Stderr)
		a, err := app.New(cfg, logger.New().WithField("cmd", "dutyctl"))
		if err != nil {
			return nil, nil, err
		}
		return a, a.Close, nil
	}

	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, opener))
}
