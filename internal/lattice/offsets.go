package lattice

// Offsets returns every vector in {-1,0,1}^n except the origin, in
// lexicographic order with the last axis varying fastest. The result has
// 3^n-1 entries.
func Offsets(n int) []Coord {
	if n <= 0 {
		return nil
	}
	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}
	out := make([]Coord, 0, total-1)
	for v := 0; v < total; v++ {
		c := make(Coord, n)
		rem := v
		zero := true
		for k := n - 1; k >= 0; k-- {
			c[k] = rem%3 - 1
			rem /= 3
			if c[k] != 0 {
				zero = false
			}
		}
		if zero {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Directions2D returns the eight planar unit directions.
func Directions2D() []Coord { return Offsets(2) }
