package automaton

import "aoc-automata/internal/lattice"

// TickInto writes the generation following src into dst and reports whether
// any cell changed. Every cell is evaluated against src only, so dst must not
// alias src.
func TickInto(dst, src *lattice.Lattice, r Rule) bool {
	if dst == src {
		panic("automaton: TickInto called with aliased buffers")
	}
	if !dst.SameShape(src) {
		panic("automaton: TickInto shape mismatch")
	}
	changed := false
	src.Each(func(i int, c lattice.Coord, s lattice.State) {
		next := r.Next(src, i, c)
		dst.Set(i, next)
		if next != s {
			changed = true
		}
	})
	return changed
}

// Tick returns the generation following cur as a new lattice. cur is not
// modified.
func Tick(cur *lattice.Lattice, r Rule) (*lattice.Lattice, bool) {
	next := cur.Clone()
	changed := TickInto(next, cur, r)
	return next, changed
}

// RunToFixedPoint ticks until a generation equals its predecessor. It returns
// the stable lattice and the number of generations that changed something.
func RunToFixedPoint(l *lattice.Lattice, r Rule) (*lattice.Lattice, int) {
	d := NewDriver(l, r)
	for d.Step() {
	}
	return d.Current(), d.Generation() - 1
}

// RunFor ticks exactly n times regardless of stability.
func RunFor(l *lattice.Lattice, r Rule, n int) *lattice.Lattice {
	d := NewDriver(l, r)
	for i := 0; i < n; i++ {
		d.Step()
	}
	return d.Current()
}

// Driver advances a lattice generation by generation using two buffers that
// are swapped after each complete pass.
type Driver struct {
	rule    Rule
	initial *lattice.Lattice
	cur     *lattice.Lattice
	nxt     *lattice.Lattice
	gen     int
	stable  bool
}

// NewDriver copies l into the driver's buffers; l itself is never mutated.
func NewDriver(l *lattice.Lattice, r Rule) *Driver {
	d := &Driver{rule: r, initial: l.Clone()}
	d.Reset()
	return d
}

// Reset rewinds to the initial lattice.
func (d *Driver) Reset() {
	if d.cur == nil {
		d.cur = d.initial.Clone()
		d.nxt = d.initial.Clone()
	} else {
		d.cur.CopyFrom(d.initial)
	}
	d.gen = 0
	d.stable = false
}

// Step computes one generation and reports whether any cell changed.
func (d *Driver) Step() bool {
	changed := TickInto(d.nxt, d.cur, d.rule)
	d.cur, d.nxt = d.nxt, d.cur
	d.gen++
	d.stable = !changed
	return changed
}

// Current returns the latest generation. It is overwritten by the Step after
// next; Clone it to keep a snapshot.
func (d *Driver) Current() *lattice.Lattice { return d.cur }

// Generation returns the number of Step calls since the last Reset.
func (d *Driver) Generation() int { return d.gen }

// Stable reports whether the last Step changed nothing.
func (d *Driver) Stable() bool { return d.stable }
