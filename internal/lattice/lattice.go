package lattice

import "fmt"

// State is the value held by a single lattice cell.
type State uint8

const (
	Inactive State = iota
	Active
	// Floor never transitions and is never counted as a neighbor.
	Floor
)

// Seat layouts reuse the two-state values.
const (
	Empty    = Inactive
	Occupied = Active
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Floor:
		return "floor"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Range is an inclusive coordinate interval along one axis.
type Range struct {
	Min, Max int
}

// Len returns the number of coordinates covered by the range.
func (r Range) Len() int { return r.Max - r.Min + 1 }

// Contains reports whether v lies inside the range.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Coord is a point in an N-dimensional lattice. Axis 0 is x.
type Coord []int

// Lattice stores N-dimensional cell states in a flat slice. Axis 0 varies
// fastest, so a 2D lattice is laid out row-major.
type Lattice struct {
	ranges  []Range
	strides []int
	cells   []State
}

// New allocates a lattice spanning the given ranges with every cell Inactive.
func New(ranges ...Range) *Lattice {
	if len(ranges) == 0 {
		panic("lattice: at least one axis is required")
	}
	strides := make([]int, len(ranges))
	total := 1
	for k, r := range ranges {
		if r.Len() <= 0 {
			panic(fmt.Sprintf("lattice: empty range %v on axis %d", r, k))
		}
		strides[k] = total
		total *= r.Len()
	}
	return &Lattice{
		ranges:  append([]Range(nil), ranges...),
		strides: strides,
		cells:   make([]State, total),
	}
}

// Dims returns the number of axes.
func (l *Lattice) Dims() int { return len(l.ranges) }

// Len returns the number of cells.
func (l *Lattice) Len() int { return len(l.cells) }

// Ranges returns a copy of the per-axis ranges.
func (l *Lattice) Ranges() []Range { return append([]Range(nil), l.ranges...) }

// Shape returns the size of each axis.
func (l *Lattice) Shape() []int {
	shape := make([]int, len(l.ranges))
	for k, r := range l.ranges {
		shape[k] = r.Len()
	}
	return shape
}

// Cells exposes the backing slice so callers can read/write values directly.
func (l *Lattice) Cells() []State { return l.cells }

// At returns the state stored at flat index i.
func (l *Lattice) At(i int) State { return l.cells[i] }

// Set stores s at flat index i.
func (l *Lattice) Set(i int, s State) { l.cells[i] = s }

// IndexOf maps a coordinate to its flat index. It reports false when the
// coordinate has the wrong arity or falls outside any axis range.
func (l *Lattice) IndexOf(c Coord) (int, bool) {
	if len(c) != len(l.ranges) {
		return 0, false
	}
	idx := 0
	for k, r := range l.ranges {
		v := c[k]
		if !r.Contains(v) {
			return 0, false
		}
		idx += (v - r.Min) * l.strides[k]
	}
	return idx, true
}

// Step maps c + steps*dir to a flat index without allocating. It reports false
// when the target falls outside the lattice.
func (l *Lattice) Step(c, dir Coord, steps int) (int, bool) {
	idx := 0
	for k, r := range l.ranges {
		v := c[k] + steps*dir[k]
		if !r.Contains(v) {
			return 0, false
		}
		idx += (v - r.Min) * l.strides[k]
	}
	return idx, true
}

// CoordOf is the inverse of IndexOf for every index in [0, Len()).
func (l *Lattice) CoordOf(i int) Coord {
	c := make(Coord, len(l.ranges))
	l.coordInto(c, i)
	return c
}

func (l *Lattice) coordInto(c Coord, i int) {
	for k := len(l.ranges) - 1; k >= 0; k-- {
		c[k] = i/l.strides[k] + l.ranges[k].Min
		i %= l.strides[k]
	}
}

// Each calls fn for every cell in index order. The coordinate slice is reused
// between calls and must not be retained.
func (l *Lattice) Each(fn func(i int, c Coord, s State)) {
	c := make(Coord, len(l.ranges))
	for i, s := range l.cells {
		l.coordInto(c, i)
		fn(i, c, s)
	}
}

// Count returns the number of cells holding s.
func (l *Lattice) Count(s State) int {
	n := 0
	for _, v := range l.cells {
		if v == s {
			n++
		}
	}
	return n
}

// Fill sets every cell to s.
func (l *Lattice) Fill(s State) {
	for i := range l.cells {
		l.cells[i] = s
	}
}

// Clone returns a deep copy.
func (l *Lattice) Clone() *Lattice {
	return &Lattice{
		ranges:  append([]Range(nil), l.ranges...),
		strides: append([]int(nil), l.strides...),
		cells:   append([]State(nil), l.cells...),
	}
}

// SameShape reports whether o spans exactly the same ranges.
func (l *Lattice) SameShape(o *Lattice) bool {
	if len(l.ranges) != len(o.ranges) {
		return false
	}
	for k := range l.ranges {
		if l.ranges[k] != o.ranges[k] {
			return false
		}
	}
	return true
}

// Equal reports whether o has the same shape and cell states.
func (l *Lattice) Equal(o *Lattice) bool {
	if !l.SameShape(o) {
		return false
	}
	for i := range l.cells {
		if l.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// CopyFrom overwrites the cells with those of src, which must share the shape.
func (l *Lattice) CopyFrom(src *Lattice) {
	if !l.SameShape(src) {
		panic("lattice: CopyFrom shape mismatch")
	}
	copy(l.cells, src.cells)
}
