//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"minesweeper/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	env, err := cfg.Open(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	defer env.Close()

	w, h := env.Settings.Window.Width, env.Settings.Window.Height
	s := env.Session(cfg.Seed, app.BoardLayout(w, h))
	game := app.New(s, w, h, cfg.TPS)

	ebiten.SetWindowTitle("Minesweeper")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		env.Log.WithError(err).Error("game stopped")
		env.Close()
		os.Exit(1)
	}
}
