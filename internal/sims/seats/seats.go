package seats

import (
	"fmt"

	"aoc-automata/internal/automaton"
	"aoc-automata/internal/core"
	"aoc-automata/internal/lattice"
	"aoc-automata/internal/pattern"
)

// Neighbor-counting strategies.
const (
	Adjacent = "adjacent"
	Visible  = "visible"
)

// Palette indices written by Cells.
const (
	CellFloor uint8 = iota
	CellEmpty
	CellOccupied
)

// Config holds parameters for the seat layout automaton.
type Config struct {
	Pattern  string
	Strategy string
}

// DefaultConfig returns the puzzle example with adjacency counting.
func DefaultConfig() Config {
	return Config{Pattern: pattern.ExampleSeats, Strategy: Adjacent}
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
	if v, ok := cfg["strategy"]; ok && (v == Adjacent || v == Visible) {
		c.Strategy = v
	}
	return c
}

// RuleFor returns the seat rule matching a strategy name.
func RuleFor(strategy string) (automaton.SeatRule, error) {
	switch strategy {
	case Adjacent:
		return automaton.AdjacentSeats(), nil
	case Visible:
		return automaton.VisibleSeats(), nil
	}
	return automaton.SeatRule{}, fmt.Errorf("unknown seat strategy %q", strategy)
}

// Seats simulates passengers filling and leaving a seat layout until nobody
// moves.
type Seats struct {
	cfg    Config
	w, h   int
	rule   automaton.SeatRule
	driver *automaton.Driver
	view   []uint8
}

// New returns a Seats simulation for the given configuration.
func New(cfg Config) (*Seats, error) {
	rule, err := RuleFor(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	s := &Seats{cfg: cfg, rule: rule}
	if err := s.load(cfg.Pattern); err != nil {
		return nil, err
	}
	s.view = make([]uint8, s.w*s.h)
	return s, nil
}

func (s *Seats) load(text string) error {
	l, err := pattern.ParseSeats(text)
	if err != nil {
		return fmt.Errorf("seats: %w", err)
	}
	shape := l.Shape()
	s.w, s.h = shape[0], shape[1]
	s.driver = automaton.NewDriver(l, s.rule)
	return nil
}

// Name returns the simulation identifier.
func (s *Seats) Name() string { return "seats-" + s.cfg.Strategy }

// Size returns the layout dimensions.
func (s *Seats) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Cells exposes the layout as palette indices (CellFloor, CellEmpty,
// CellOccupied).
func (s *Seats) Cells() []uint8 {
	for i, st := range s.driver.Current().Cells() {
		switch st {
		case lattice.Occupied:
			s.view[i] = CellOccupied
		case lattice.Empty:
			s.view[i] = CellEmpty
		default:
			s.view[i] = CellFloor
		}
	}
	return s.view
}

// Reset restores the configured layout when seed is zero, otherwise it seeds a
// random layout of the same size.
func (s *Seats) Reset(seed int64) {
	if seed == 0 {
		s.driver.Reset()
		return
	}
	if err := s.load(pattern.Random(s.w, s.h, seed, 0.75, true)); err != nil {
		panic(err)
	}
}

// Step advances one generation.
func (s *Seats) Step() { s.driver.Step() }

// Done reports whether the last generation changed nothing.
func (s *Seats) Done() bool { return s.driver.Stable() }

// Generation returns the number of generations computed, including the final
// one that confirmed the fixed point.
func (s *Seats) Generation() int { return s.driver.Generation() }

// Population returns the number of occupied seats.
func (s *Seats) Population() int { return s.driver.Current().Count(lattice.Occupied) }

// Lattice exposes the current generation.
func (s *Seats) Lattice() *lattice.Lattice { return s.driver.Current() }

// String renders the current layout in puzzle notation.
func (s *Seats) String() string { return pattern.FormatSeats(s.driver.Current()) }

// Parameters describes the automaton for the HUD and logs.
func (s *Seats) Parameters() core.ParameterSnapshot {
	l := s.driver.Current()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.StringParam("strategy", "Strategy", s.cfg.Strategy),
				core.IntParam("tolerance", "Tolerance", s.rule.Tolerance),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.Generation()),
				core.BoolParam("stable", "Stable", s.Done()),
				core.IntParam("population", "Occupied", s.Population()),
				core.IntParam("empty", "Empty", l.Count(lattice.Empty)),
			},
		},
	}}
}

// SolveAdjacent runs the layout to its fixed point counting adjacent
// neighbors and returns the number of occupied seats.
func SolveAdjacent(text string) (int, error) { return solve(text, automaton.AdjacentSeats()) }

// SolveVisible is SolveAdjacent with the nearest-visible-seat rule.
func SolveVisible(text string) (int, error) { return solve(text, automaton.VisibleSeats()) }

func solve(text string, rule automaton.SeatRule) (int, error) {
	l, err := pattern.ParseSeats(text)
	if err != nil {
		return 0, err
	}
	final, _ := automaton.RunToFixedPoint(l, rule)
	return final.Count(lattice.Occupied), nil
}

func init() {
	for _, strategy := range []string{Adjacent, Visible} {
		core.Register("seats-"+strategy, func(cfg map[string]string) (core.Sim, error) {
			c := FromMap(cfg)
			c.Strategy = strategy
			s, err := New(c)
			if err != nil {
				return nil, err
			}
			return s, nil
		})
	}
}
