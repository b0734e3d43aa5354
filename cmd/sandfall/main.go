//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/MagicLemma/alchimia/internal/app"
	"github.com/MagicLemma/alchimia/internal/config"
	"github.com/MagicLemma/alchimia/internal/sand"
)

func main() {
	cfg, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	world := sand.New(cfg.Sim.Seed)
	game := app.New(world, cfg)

	ebiten.SetWindowTitle("sandfall")
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(world.Size()*cfg.Window.Scale, world.Size()*cfg.Window.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
