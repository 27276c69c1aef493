// Package pattern converts between puzzle text and lattices.
package pattern

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"aoc-automata/internal/core"
	"aoc-automata/internal/lattice"
)

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = errors.New("malformed pattern")

//go:embed examples/seats.txt
var ExampleSeats string

//go:embed examples/cubes.txt
var ExampleCubes string

var seatStates = map[rune]lattice.State{
	'.': lattice.Floor,
	'L': lattice.Empty,
	'#': lattice.Occupied,
}

var cubeStates = map[rune]lattice.State{
	'.': lattice.Inactive,
	'#': lattice.Active,
}

// ParseSeats reads a seat layout into a 2D lattice with x in [0,w-1] and y in
// [0,h-1].
func ParseSeats(text string) (*lattice.Lattice, error) {
	rows, w, err := splitRows(text)
	if err != nil {
		return nil, err
	}
	l := lattice.New(lattice.Range{Min: 0, Max: w - 1}, lattice.Range{Min: 0, Max: len(rows) - 1})
	err = decode(rows, seatStates, func(x, y int, s lattice.State) {
		i, _ := l.IndexOf(lattice.Coord{x, y})
		l.Set(i, s)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ParseCubes reads a 2D slice of cubes into a dims-dimensional lattice sized
// for cycles generations of growth: each axis extends cycles cells beyond the
// initial pattern in both directions.
func ParseCubes(text string, dims, cycles int) (*lattice.Lattice, error) {
	if dims < 2 {
		return nil, fmt.Errorf("cubes need at least 2 dimensions, got %d", dims)
	}
	if cycles < 0 {
		return nil, fmt.Errorf("negative cycle count %d", cycles)
	}
	rows, w, err := splitRows(text)
	if err != nil {
		return nil, err
	}
	ranges := make([]lattice.Range, dims)
	ranges[0] = lattice.Range{Min: -cycles, Max: w - 1 + cycles}
	ranges[1] = lattice.Range{Min: -cycles, Max: len(rows) - 1 + cycles}
	for k := 2; k < dims; k++ {
		ranges[k] = lattice.Range{Min: -cycles, Max: cycles}
	}
	l := lattice.New(ranges...)
	c := make(lattice.Coord, dims)
	err = decode(rows, cubeStates, func(x, y int, s lattice.State) {
		c[0], c[1] = x, y
		i, _ := l.IndexOf(c)
		l.Set(i, s)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func splitRows(text string) ([]string, int, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, 0, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	rows := strings.Split(text, "\n")
	w := len([]rune(rows[0]))
	for y, row := range rows {
		if n := len([]rune(row)); n != w {
			return nil, 0, fmt.Errorf("%w: line %d has %d cells, expected %d", ErrMalformed, y+1, n, w)
		}
	}
	if w == 0 {
		return nil, 0, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	return rows, w, nil
}

func decode(rows []string, states map[rune]lattice.State, set func(x, y int, s lattice.State)) error {
	for y, row := range rows {
		for x, ch := range []rune(row) {
			s, ok := states[ch]
			if !ok {
				return fmt.Errorf("%w: unexpected %q at line %d column %d", ErrMalformed, ch, y+1, x+1)
			}
			set(x, y, s)
		}
	}
	return nil
}

// FormatSeats renders a 2D seat lattice in puzzle notation, one line per row.
func FormatSeats(l *lattice.Lattice) string {
	if l.Dims() != 2 {
		panic("pattern: FormatSeats needs a 2D lattice")
	}
	shape := l.Shape()
	var b strings.Builder
	for i, s := range l.Cells() {
		b.WriteByte(seatByte(s))
		if (i+1)%shape[0] == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func seatByte(s lattice.State) byte {
	switch s {
	case lattice.Occupied:
		return '#'
	case lattice.Empty:
		return 'L'
	}
	return '.'
}

// FormatCubes lists every 2D slice that holds at least one Active cell,
// each headed by its coordinates on the remaining axes.
func FormatCubes(l *lattice.Lattice) string {
	shape := l.Shape()
	ranges := l.Ranges()
	plane := shape[0]
	if len(shape) > 1 {
		plane *= shape[1]
	}
	cells := l.Cells()
	var b strings.Builder
	for start := 0; start < len(cells); start += plane {
		slice := cells[start : start+plane]
		if !hasActive(slice) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		if l.Dims() > 2 {
			c := l.CoordOf(start)
			labels := make([]string, 0, l.Dims()-2)
			for k := 2; k < l.Dims(); k++ {
				labels = append(labels, fmt.Sprintf("%s=%d", axisName(k), c[k]))
			}
			b.WriteString(strings.Join(labels, ", "))
			b.WriteByte('\n')
		}
		for i, s := range slice {
			if s == lattice.Active {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
			if (i+1)%ranges[0].Len() == 0 {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func hasActive(cells []lattice.State) bool {
	for _, s := range cells {
		if s == lattice.Active {
			return true
		}
	}
	return false
}

func axisName(k int) string {
	if k < 4 {
		return string("xyzw"[k])
	}
	return fmt.Sprintf("d%d", k)
}

// Random builds a deterministic w×h pattern. For seat layouts roughly density
// of the cells are seats ('L'), the rest floor; for cubes density of the cells
// are active ('#').
func Random(w, h int, seed int64, density float64, seats bool) string {
	rng := core.NewRNG(seed)
	on := byte('#')
	if seats {
		on = 'L'
	}
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				b.WriteByte(on)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
