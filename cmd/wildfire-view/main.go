//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wildfire-ca/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(app.NewPlayer(sim), cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("wildfire-ca — run " + sim.RunID()[:8])
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
