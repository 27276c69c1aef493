// Command solve runs one or more automata on puzzle inputs and prints the
// population of each terminal generation.
//
//	solve -sims seats-adjacent,seats-visible input11.txt
//	solve -sims cubes3,cubes4 -cycles 6 input17.txt
//	solve -sims all            # built-in examples
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"aoc-automata/internal/app"
	_ "aoc-automata/internal/sims/cubes"
	_ "aoc-automata/internal/sims/seats"

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

	paths := flag.Args()
	if len(paths) == 0 && cfg.Input != "" {
		paths = []string{cfg.Input}
	}
	inputs, err := app.ReadInputs(paths)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := app.Solve(ctx, cfg, inputs, log)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		if len(inputs) > 1 {
			fmt.Printf("%s\t%s\t%d\n", r.Input, r.Sim, r.Population)
			continue
		}
		fmt.Printf("%s\t%d\n", r.Sim, r.Population)
	}
}
