//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandfall/internal/app"
	"sandfall/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := sand.DefaultConfig()
	if cfg.File != "" {
		loaded, err := sand.LoadFile(cfg.File)
		if err != nil {
			log.Fatal(err)
		}
		simCfg = loaded
	}
	// Explicit flags win over the tuning file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			simCfg.Width = cfg.Width
		case "height":
			simCfg.Height = cfg.Height
		case "seed":
			simCfg.Seed = cfg.Seed
		}
	})

	world := sand.NewWithConfig(simCfg)
	world.Reset(simCfg.Seed)

	game := app.New(world, cfg.Scale, simCfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("sandfall")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
