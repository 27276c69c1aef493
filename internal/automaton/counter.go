package automaton

import "aoc-automata/internal/lattice"

// Counter counts the live neighbors of the cell at c.
type Counter interface {
	Count(l *lattice.Lattice, c lattice.Coord) int
}

// Adjacency counts Active cells among the immediate neighbors. Neighbors that
// fall outside the lattice are skipped.
type Adjacency struct {
	offsets []lattice.Coord
}

// NewAdjacency builds the offset set for an n-dimensional lattice once.
func NewAdjacency(n int) Adjacency {
	return Adjacency{offsets: lattice.Offsets(n)}
}

// Offsets exposes the neighbor offsets. The slice must not be modified.
func (a Adjacency) Offsets() []lattice.Coord { return a.offsets }

func (a Adjacency) Count(l *lattice.Lattice, c lattice.Coord) int {
	n := 0
	for _, o := range a.offsets {
		if i, ok := l.Step(c, o, 1); ok && l.At(i) == lattice.Active {
			n++
		}
	}
	return n
}

// Visibility counts, for each of the eight planar directions, whether the
// first non-Floor cell along that line is Occupied. Floor cells are
// transparent; reaching the boundary contributes nothing.
type Visibility struct {
	dirs []lattice.Coord
}

// NewVisibility returns a counter over the eight planar directions.
func NewVisibility() Visibility {
	return Visibility{dirs: lattice.Directions2D()}
}

func (v Visibility) Count(l *lattice.Lattice, c lattice.Coord) int {
	n := 0
	for _, d := range v.dirs {
		if v.firstSeat(l, c, d) == lattice.Occupied {
			n++
		}
	}
	return n
}

// firstSeat returns the first non-Floor state seen from c along d, or Floor
// when the walk leaves the lattice.
func (v Visibility) firstSeat(l *lattice.Lattice, c, d lattice.Coord) lattice.State {
	for steps := 1; ; steps++ {
		i, ok := l.Step(c, d, steps)
		if !ok {
			return lattice.Floor
		}
		if s := l.At(i); s != lattice.Floor {
			return s
		}
	}
}
