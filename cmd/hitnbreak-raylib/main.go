package main

import (
	"fmt"
	"os"

	"github.com/meghashyamc/hitnbreak/config"
	"github.com/meghashyamc/hitnbreak/rlgame"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	g, err := rlgame.NewGame(cfg)
	if err != nil {
		os.Exit(1)
	}
	g.Run()
}
