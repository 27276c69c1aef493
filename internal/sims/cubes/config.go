package cubes

import (
	"strconv"

	"aoc-automata/internal/pattern"
)

// Config holds parameters for the N-dimensional cube automaton.
type Config struct {
	Pattern string
	Dims    int
	Cycles  int
}

// DefaultConfig returns the puzzle example in three dimensions for six cycles.
func DefaultConfig() Config {
	return Config{Pattern: pattern.ExampleCubes, Dims: 3, Cycles: 6}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["dims"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.Dims = parsed
		}
	}
	if v, ok := cfg["cycles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cycles = parsed
		}
	}
	return c
}
