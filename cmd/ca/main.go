//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/oechslein/AdventOfCode2024/internal/app"
	"github.com/oechslein/AdventOfCode2024/internal/core"
	_ "github.com/oechslein/AdventOfCode2024/internal/sims/briansbrain"
	_ "github.com/oechslein/AdventOfCode2024/internal/sims/elementary"
	_ "github.com/oechslein/AdventOfCode2024/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.Params)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("gridtool: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
