package automaton

import "aoc-automata/internal/lattice"

// Rule computes the next state of cell i (at coordinate c) from the current
// generation l. Implementations must only read l.
type Rule interface {
	Next(l *lattice.Lattice, i int, c lattice.Coord) lattice.State
}

// SeatRule fills empty seats with no occupied neighbors and vacates occupied
// seats once the neighbor count reaches Tolerance. Floor never changes.
type SeatRule struct {
	Counter   Counter
	Tolerance int
}

// AdjacentSeats counts the eight immediate neighbors and vacates at four.
func AdjacentSeats() SeatRule {
	return SeatRule{Counter: NewAdjacency(2), Tolerance: 4}
}

// VisibleSeats counts the nearest visible seat per direction and vacates at
// five.
func VisibleSeats() SeatRule {
	return SeatRule{Counter: NewVisibility(), Tolerance: 5}
}

func (r SeatRule) Next(l *lattice.Lattice, i int, c lattice.Coord) lattice.State {
	s := l.At(i)
	switch s {
	case lattice.Empty:
		if r.Counter.Count(l, c) == 0 {
			return lattice.Occupied
		}
	case lattice.Occupied:
		if r.Counter.Count(l, c) >= r.Tolerance {
			return lattice.Empty
		}
	}
	return s
}

// LifeRule is the two-state survive-on-2-or-3, birth-on-3 rule.
type LifeRule struct {
	Counter Counter
}

// NewLifeRule returns a LifeRule counting all 3^dims-1 neighbors.
func NewLifeRule(dims int) LifeRule {
	return LifeRule{Counter: NewAdjacency(dims)}
}

func (r LifeRule) Next(l *lattice.Lattice, i int, c lattice.Coord) lattice.State {
	s := l.At(i)
	if s == lattice.Floor {
		return s
	}
	n := r.Counter.Count(l, c)
	if (s == lattice.Active && (n == 2 || n == 3)) || (s == lattice.Inactive && n == 3) {
		return lattice.Active
	}
	return lattice.Inactive
}
