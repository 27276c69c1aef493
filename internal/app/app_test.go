package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"aoc-automata/internal/core"
	"aoc-automata/internal/pattern"
	_ "aoc-automata/internal/sims/cubes"
	_ "aoc-automata/internal/sims/seats"
)

func TestSolveExamples(t *testing.T) {
	cfg := NewConfig()
	cfg.Sims = []string{"seats-adjacent", "seats-visible", "cubes3", "cubes4"}
	var out bytes.Buffer
	log, err := NewLogger(&out, "info")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	results, err := Solve(context.Background(), cfg, []Input{{Name: "example"}}, log)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := map[string]int{"seats-adjacent": 37, "seats-visible": 26, "cubes3": 112, "cubes4": 848}
	if len(results) != len(want) {
		t.Fatalf("got %d results, expected %d", len(results), len(want))
	}
	for i, r := range results {
		if r.Sim != cfg.Sims[i] {
			t.Fatalf("result %d is for %s, expected %s", i, r.Sim, cfg.Sims[i])
		}
		if r.Population != want[r.Sim] {
			t.Fatalf("%s population=%d, expected %d", r.Sim, r.Population, want[r.Sim])
		}
	}
	if results[2].Generations != 6 {
		t.Fatalf("cubes3 generations=%d, expected 6", results[2].Generations)
	}
	if strings.Count(out.String(), "solved") != 4 {
		t.Fatalf("expected one log line per result, got:\n%s", out.String())
	}
}

func TestSolveOrdersByInput(t *testing.T) {
	cfg := NewConfig()
	cfg.Sims = []string{"seats-adjacent", "seats-visible"}
	cfg.Workers = 3
	inputs := []Input{
		{Name: "floor", Text: "...\n...\n"},
		{Name: "example", Text: pattern.ExampleSeats},
		{Name: "single", Text: "L\n"},
	}
	log, _ := NewLogger(io.Discard, "debug")
	results, err := Solve(context.Background(), cfg, inputs, log)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	var got []int
	for _, r := range results {
		got = append(got, r.Population)
	}
	if !slices.Equal(got, []int{0, 0, 37, 26, 1, 1}) {
		t.Fatalf("populations=%v", got)
	}
	if results[0].Generations != 1 {
		t.Fatalf("all-floor layout should settle after one generation, got %d", results[0].Generations)
	}
}

func TestSolveReportsMalformedInput(t *testing.T) {
	cfg := NewConfig()
	cfg.Sims = []string{"cubes3"}
	log, _ := NewLogger(io.Discard, "info")
	_, err := Solve(context.Background(), cfg, []Input{{Name: "bad", Text: ".#.\n.L.\n"}}, log)
	if !errors.Is(err, pattern.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestSolveUnknownSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Sims = []string{"nope"}
	log, _ := NewLogger(io.Discard, "info")
	if _, err := Solve(context.Background(), cfg, []Input{{Name: "example"}}, log); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}

func TestSolveMaxGenerations(t *testing.T) {
	cfg := NewConfig()
	cfg.MaxGenerations = 1
	log, _ := NewLogger(io.Discard, "info")
	_, err := Solve(context.Background(), cfg, []Input{{Name: "example"}}, log)
	if !errors.Is(err, ErrUnsettled) {
		t.Fatalf("expected ErrUnsettled, got %v", err)
	}
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	log, _ := NewLogger(io.Discard, "info")
	if _, err := Solve(ctx, NewConfig(), []Input{{Name: "example"}}, log); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSimNames(t *testing.T) {
	cfg := NewConfig()
	if got := cfg.SimNames(); !slices.Equal(got, []string{"seats-adjacent"}) {
		t.Fatalf("default names=%v", got)
	}
	cfg.Sims = []string{"cubes4", "seats-visible", "cubes4"}
	if got := cfg.SimNames(); !slices.Equal(got, []string{"cubes4", "seats-visible"}) {
		t.Fatalf("names=%v", got)
	}
	cfg.Sims = []string{"cubes4", "all"}
	got := cfg.SimNames()
	if got[0] != "cubes4" || len(got) != len(core.Names()) {
		t.Fatalf("all should expand to every registered sim once, got %v", got)
	}
}

func TestParseFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	body := "sims: [cubes3, cubes4]\ncycles: 3\nworkers: 2\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := cfg.Parse(fs, []string{"-config", path, "-cycles", "4"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Cycles != 4 {
		t.Fatalf("flag should override file, cycles=%d", cfg.Cycles)
	}
	if cfg.Workers != 2 || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if !slices.Equal(cfg.Sims, []string{"cubes3", "cubes4"}) {
		t.Fatalf("sims=%v", cfg.Sims)
	}
	if cfg.SimConfig("x")["cycles"] != "4" {
		t.Fatal("SimConfig should carry the cycle count")
	}
}

func TestParseSimsFlag(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := cfg.Parse(fs, []string{"-sims", "seats-visible, cubes3,,"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !slices.Equal(cfg.Sims, []string{"seats-visible", "cubes3"}) {
		t.Fatalf("sims=%v", cfg.Sims)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("cycles: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFile(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestReadInputs(t *testing.T) {
	inputs, err := ReadInputs(nil)
	if err != nil || len(inputs) != 1 || inputs[0].Text != "" {
		t.Fatalf("no paths should yield the example input, got %v %v", inputs, err)
	}
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("L.L\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	inputs, err = ReadInputs([]string{path})
	if err != nil || inputs[0].Text != "L.L\n" || inputs[0].Name != path {
		t.Fatalf("unexpected inputs %v %v", inputs, err)
	}
	if _, err := ReadInputs([]string{path + ".missing"}); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLogger(io.Discard, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
