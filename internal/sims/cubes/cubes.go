package cubes

import (
	"fmt"

	"aoc-automata/internal/automaton"
	"aoc-automata/internal/core"
	"aoc-automata/internal/lattice"
	"aoc-automata/internal/pattern"
)

// Cubes runs the survive-on-2-or-3, birth-on-3 rule over an N-dimensional
// lattice sized up front for the configured number of cycles.
type Cubes struct {
	cfg     Config
	w, h    int
	driver  *automaton.Driver
	rule    automaton.LifeRule
	offsets []lattice.Coord
	view    []uint8
	plane   lattice.Coord
}

// New returns a Cubes simulation for the given configuration.
func New(cfg Config) (*Cubes, error) {
	adj := automaton.NewAdjacency(cfg.Dims)
	c := &Cubes{cfg: cfg, rule: automaton.LifeRule{Counter: adj}, offsets: adj.Offsets()}
	if err := c.load(cfg.Pattern); err != nil {
		return nil, err
	}
	shape := c.driver.Current().Shape()
	c.view = make([]uint8, shape[0]*shape[1])
	c.plane = make(lattice.Coord, cfg.Dims)
	return c, nil
}

func (c *Cubes) load(text string) error {
	l, err := pattern.ParseCubes(text, c.cfg.Dims, c.cfg.Cycles)
	if err != nil {
		return fmt.Errorf("cubes: %w", err)
	}
	shape := l.Shape()
	c.w = shape[0] - 2*c.cfg.Cycles
	c.h = shape[1] - 2*c.cfg.Cycles
	c.driver = automaton.NewDriver(l, c.rule)
	return nil
}

// Name returns the simulation identifier.
func (c *Cubes) Name() string { return fmt.Sprintf("cubes%d", c.cfg.Dims) }

// Size returns the dimensions of the rendered x/y plane.
func (c *Cubes) Size() core.Size {
	shape := c.driver.Current().Shape()
	return core.Size{W: shape[0], H: shape[1]}
}

// Cells exposes the plane through the origin of every axis beyond x and y,
// one byte per cell (1 active, 0 inactive).
func (c *Cubes) Cells() []uint8 {
	l := c.driver.Current()
	r := l.Ranges()
	i := 0
	for y := r[1].Min; y <= r[1].Max; y++ {
		for x := r[0].Min; x <= r[0].Max; x++ {
			c.plane[0], c.plane[1] = x, y
			idx, _ := l.IndexOf(c.plane)
			c.view[i] = 0
			if l.At(idx) == lattice.Active {
				c.view[i] = 1
			}
			i++
		}
	}
	return c.view
}

// Reset restores the configured pattern when seed is zero, otherwise it seeds
// a random pattern of the same footprint.
func (c *Cubes) Reset(seed int64) {
	if seed == 0 {
		c.driver.Reset()
		return
	}
	if err := c.load(pattern.Random(c.w, c.h, seed, 0.35, false)); err != nil {
		panic(err)
	}
}

// Step advances one generation. The lattice only has room for the configured
// number of cycles, so further steps are ignored.
func (c *Cubes) Step() {
	if c.Done() {
		return
	}
	c.driver.Step()
}

// Done reports whether the configured number of cycles has run.
func (c *Cubes) Done() bool { return c.driver.Generation() >= c.cfg.Cycles }

// Generation returns the number of completed cycles.
func (c *Cubes) Generation() int { return c.driver.Generation() }

// Population returns the number of active cubes in the whole lattice.
func (c *Cubes) Population() int { return c.driver.Current().Count(lattice.Active) }

// Lattice exposes the current generation.
func (c *Cubes) Lattice() *lattice.Lattice { return c.driver.Current() }

// Parameters describes the automaton for the HUD and logs.
func (c *Cubes) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				core.IntParam("dims", "Dimensions", c.cfg.Dims),
				core.IntParam("cells", "Cells", c.driver.Current().Len()),
				core.IntParam("neighbors", "Neighbors", len(c.offsets)),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", c.Generation()),
				core.IntParam("cycles", "Cycles", c.cfg.Cycles),
				core.IntParam("population", "Active", c.Population()),
			},
		},
	}}
}

// Solve runs the pattern for cycles generations in dims dimensions and returns
// the number of active cubes.
func Solve(text string, dims, cycles int) (int, error) {
	l, err := pattern.ParseCubes(text, dims, cycles)
	if err != nil {
		return 0, err
	}
	return automaton.RunFor(l, automaton.NewLifeRule(dims), cycles).Count(lattice.Active), nil
}

func newSim(cfg Config) (core.Sim, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func init() {
	core.Register("cubes", func(cfg map[string]string) (core.Sim, error) {
		return newSim(FromMap(cfg))
	})
	for _, dims := range []int{3, 4} {
		core.Register(fmt.Sprintf("cubes%d", dims), func(cfg map[string]string) (core.Sim, error) {
			c := FromMap(cfg)
			c.Dims = dims
			return newSim(c)
		})
	}
}
