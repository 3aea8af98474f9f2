//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sparselife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := app.New(cfg)

	ebiten.SetWindowTitle("sparselife")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
