package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/meghashyamc/hitnbreak/config"
	"github.com/meghashyamc/hitnbreak/logger"
	"github.com/meghashyamc/hitnbreak/terminal"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	// stderr shares the terminal with the game, so only warnings get through
	log := logger.NewWithLevel(slog.LevelWarn)

	app, err := terminal.New(cfg, log)
	if err != nil {
		slog.Error("error starting terminal game", "err", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		slog.Error("error running terminal game", "err", err)
		os.Exit(1)
	}
}
