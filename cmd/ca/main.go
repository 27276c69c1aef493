//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"aoc-automata/internal/app"
	"aoc-automata/internal/core"
	_ "aoc-automata/internal/sims/cubes"
	_ "aoc-automata/internal/sims/seats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		logrus.Fatal(err)
	}
	log, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		logrus.Fatal(err)
	}

	var text string
	if cfg.Input != "" {
		inputs, err := app.ReadInputs([]string{cfg.Input})
		if err != nil {
			log.Fatal(err)
		}
		text = inputs[0].Text
	}

	sim, err := core.New(cfg.Sim, cfg.SimConfig(text))
	if err != nil {
		log.WithField("sims", core.Names()).Fatal(err)
	}
	if cfg.Seed != 0 {
		sim.Reset(cfg.Seed)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("aoc-automata - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
