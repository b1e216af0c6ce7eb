package main

import (
	"flag"
	"log"

	"minesweeper/internal/app"
	"minesweeper/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// Without -log-file the terminal is ours, so logs are discarded.
	env, err := cfg.Open(nil)
	if err != nil {
		log.Fatal(err)
	}
	defer env.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

	s := env.Session(cfg.Seed, term.Layout)
	runner := term.New(screen, s, env.Log, cfg.TPS)
	runner.Preselect(env.LastDifficulty())
	if err := runner.Run(); err != nil {
		env.Log.WithError(err).Error("terminal frontend stopped")
	}
}
