package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"aoc-automata/internal/core"

	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters shared by the solver and the
// viewer. Any field can also come from a YAML file; flags given explicitly on
// the command line take precedence over the file.
type Config struct {
	ConfigPath string `yaml:"-"`

	Sim            string   `yaml:"sim"`
	Sims           []string `yaml:"sims"`
	Input          string   `yaml:"input"`
	Cycles         int      `yaml:"cycles"`
	MaxGenerations int      `yaml:"max_generations"`
	Workers        int      `yaml:"workers"`
	LogLevel       string   `yaml:"log_level"`

	Scale    int   `yaml:"scale"`
	TPS      int   `yaml:"tps"`
	GPS      int   `yaml:"gps"`
	Seed     int64 `yaml:"seed"`
	HUDWidth int   `yaml:"hud_width"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:            "seats-adjacent",
		Cycles:         6,
		MaxGenerations: 10000,
		Workers:        4,
		LogLevel:       "info",
		Scale:          24,
		TPS:            60,
		GPS:            4,
		HUDWidth:       220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML configuration file")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Func("sims", "comma-separated simulations to solve (\"all\" for every registered sim)", func(v string) error {
		c.Sims = splitList(v)
		return nil
	})
	fs.StringVar(&c.Input, "input", c.Input, "puzzle input file (empty for the built-in example)")
	fs.IntVar(&c.Cycles, "cycles", c.Cycles, "generations to run for fixed-length automata")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "abort automata that have not settled after this many generations")
	fs.IntVar(&c.Workers, "workers", c.Workers, "inputs solved in parallel")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random reset (0 keeps the input pattern)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels")
}

// Parse binds c to fs and parses args. When -config names a file, the file is
// applied first and args are parsed again so explicit flags win.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath == "" {
		return nil
	}
	if err := c.LoadFile(c.ConfigPath); err != nil {
		return err
	}
	return fs.Parse(args)
}

// LoadFile overlays the values present in a YAML file.
func (c *Config) LoadFile(path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(body, c); err != nil {
		return fmt.Errorf("decoding config %s: %w", path, err)
	}
	return nil
}

// SimConfig builds the string map handed to sim factories.
func (c *Config) SimConfig(pattern string) map[string]string {
	return map[string]string{
		"pattern": pattern,
		"cycles":  strconv.Itoa(c.Cycles),
	}
}

// SimNames returns the sims to solve, deduplicated in first-seen order. An
// empty list falls back to Sim; "all" expands to every registered sim.
func (c *Config) SimNames() []string {
	names := c.Sims
	if len(names) == 0 {
		names = []string{c.Sim}
	}
	seen := mapset.New[string]()
	var out []string
	for _, name := range names {
		expanded := []string{name}
		if name == "all" {
			expanded = core.Names()
		}
		for _, n := range expanded {
			if seen.Has(n) {
				continue
			}
			seen.Put(n)
			out = append(out, n)
		}
	}
	return out
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
