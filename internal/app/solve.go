package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"aoc-automata/internal/core"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrUnsettled is returned when an automaton exceeds MaxGenerations without
// reaching its terminal generation.
var ErrUnsettled = errors.New("automaton did not settle")

// Input is one puzzle text to solve.
type Input struct {
	Name string
	Text string
}

// Result is the terminal state of one sim run on one input.
type Result struct {
	Input       string
	Sim         string
	Population  int
	Generations int
}

// ReadInputs loads puzzle files. An empty path list yields the built-in
// example of each sim, represented by an empty text.
func ReadInputs(paths []string) ([]Input, error) {
	if len(paths) == 0 {
		return []Input{{Name: "example"}}, nil
	}
	inputs := make([]Input, 0, len(paths))
	for _, p := range paths {
		body, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		inputs = append(inputs, Input{Name: p, Text: string(body)})
	}
	return inputs, nil
}

// Solve runs every selected sim on every input and returns the results in
// input-major order. Runs are independent and spread over cfg.Workers
// goroutines; each sim instance stays on the goroutine that built it.
func Solve(ctx context.Context, cfg *Config, inputs []Input, log logrus.FieldLogger) ([]Result, error) {
	names := cfg.SimNames()
	results := make([]Result, len(inputs)*len(names))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, in := range inputs {
		for j, name := range names {
			slot := i*len(names) + j
			g.Go(func() error {
				res, err := run(ctx, cfg, in, name, log)
				if err != nil {
					return fmt.Errorf("%s on %s: %w", name, in.Name, err)
				}
				results[slot] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func run(ctx context.Context, cfg *Config, in Input, name string, log logrus.FieldLogger) (Result, error) {
	sim, err := core.New(name, cfg.SimConfig(in.Text))
	if err != nil {
		return Result{}, err
	}
	finite, ok := sim.(core.Finite)
	if !ok {
		return Result{}, fmt.Errorf("sim %q has no terminal generation", name)
	}
	entry := log.WithFields(logrus.Fields{"input": in.Name, "sim": name})
	if p, ok := sim.(core.ParameterProvider); ok {
		entry.WithFields(p.Parameters().Fields()).Debug("starting")
	}
	for !finite.Done() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if cfg.MaxGenerations > 0 && finite.Generation() >= cfg.MaxGenerations {
			return Result{}, fmt.Errorf("%w after %d generations", ErrUnsettled, finite.Generation())
		}
		finite.Step()
		entry.WithFields(logrus.Fields{
			"generation": finite.Generation(),
			"population": finite.Population(),
		}).Debug("generation")
	}
	res := Result{
		Input:       in.Name,
		Sim:         name,
		Population:  finite.Population(),
		Generations: finite.Generation(),
	}
	entry.WithFields(logrus.Fields{
		"population":  res.Population,
		"generations": res.Generations,
	}).Info("solved")
	return res, nil
}
