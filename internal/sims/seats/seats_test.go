package seats

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"aoc-automata/internal/core"
	"aoc-automata/internal/pattern"
)

func TestSolveExample(t *testing.T) {
	got, err := SolveAdjacent(pattern.ExampleSeats)
	if err != nil {
		t.Fatalf("SolveAdjacent: %v", err)
	}
	if got != 37 {
		t.Fatalf("adjacent occupied=%d, expected 37", got)
	}
	got, err = SolveVisible(pattern.ExampleSeats)
	if err != nil {
		t.Fatalf("SolveVisible: %v", err)
	}
	if got != 26 {
		t.Fatalf("visible occupied=%d, expected 26", got)
	}
}

func TestSolveMalformed(t *testing.T) {
	for _, input := range []string{"", "L.L\nL\n", "L?L\n"} {
		if _, err := SolveAdjacent(input); !errors.Is(err, pattern.ErrMalformed) {
			t.Fatalf("input %q: expected ErrMalformed, got %v", input, err)
		}
	}
}

func TestSimSecondGeneration(t *testing.T) {
	sim, err := core.New("seats-adjacent", nil)
	if err != nil {
		t.Fatalf("core.New: %v", err)
	}
	s := sim.(*Seats)
	s.Step()
	s.Step()
	want := "#.LL.L#.##\n" +
		"#LLLLLL.L#\n" +
		"L.L.L..L..\n" +
		"#LLL.LL.L#\n" +
		"#.LL.LL.LL\n" +
		"#.LLLL#.##\n" +
		"..L.L.....\n" +
		"#LLLLLLLL#\n" +
		"#.LLLLLL.L\n" +
		"#.#LLLL.##\n"
	if got := s.String(); got != want {
		t.Fatalf("generation 2:\n%s\nexpected:\n%s", got, want)
	}
}

func TestSimRunsToFixedPoint(t *testing.T) {
	for name, want := range map[string]int{"seats-adjacent": 37, "seats-visible": 26} {
		sim, err := core.New(name, nil)
		if err != nil {
			t.Fatalf("core.New(%s): %v", name, err)
		}
		s := sim.(*Seats)
		if s.Name() != name {
			t.Fatalf("name=%q, expected %q", s.Name(), name)
		}
		for !s.Done() {
			s.Step()
		}
		if s.Population() != want {
			t.Fatalf("%s occupied=%d, expected %d", name, s.Population(), want)
		}
		settled := s.String()
		s.Step()
		if !s.Done() || s.String() != settled {
			t.Fatalf("%s: stepping a fixed point changed the layout", name)
		}
	}
}

func TestSimCellsPalette(t *testing.T) {
	s, err := New(Config{Pattern: "L.#\n", Strategy: Visible})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.Cells(); !slices.Equal(got, []uint8{CellEmpty, CellFloor, CellOccupied}) {
		t.Fatalf("cells=%v", got)
	}
}

func TestSimReset(t *testing.T) {
	s, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	initial := s.String()
	s.Step()
	s.Reset(0)
	if s.String() != initial || s.Generation() != 0 {
		t.Fatal("Reset(0) should restore the configured layout")
	}
	s.Reset(5)
	seeded := s.String()
	s.Reset(5)
	if s.String() != seeded {
		t.Fatal("Reset with a seed should be deterministic")
	}
	if strings.Count(seeded, "\n") != 10 {
		t.Fatal("random layout should keep the configured height")
	}
}

func TestRandomLayoutsSettle(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		for _, strategy := range []string{Adjacent, Visible} {
			s, err := New(Config{Pattern: pattern.Random(16, 12, seed, 0.7, true), Strategy: strategy})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			for i := 0; i < 1000 && !s.Done(); i++ {
				s.Step()
			}
			if !s.Done() {
				t.Fatalf("seed %d %s did not settle", seed, strategy)
			}
			floor := strings.Count(pattern.Random(16, 12, seed, 0.7, true), ".")
			if got := strings.Count(s.String(), "."); got != floor {
				t.Fatalf("floor cells changed from %d to %d", floor, got)
			}
		}
	}
}

func TestNewRejectsUnknownStrategy(t *testing.T) {
	if _, err := New(Config{Pattern: "L", Strategy: "diagonal"}); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
	if c := FromMap(map[string]string{"strategy": "diagonal"}); c.Strategy != Adjacent {
		t.Fatalf("FromMap should ignore unknown strategies, got %q", c.Strategy)
	}
}

func TestParametersSnapshot(t *testing.T) {
	s, err := New(Config{Pattern: pattern.ExampleSeats, Strategy: Visible})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f := s.Parameters().Fields()
	if f["tolerance"] != "5" || f["strategy"] != Visible || f["stable"] != "false" {
		t.Fatalf("unexpected parameters %v", f)
	}
}
