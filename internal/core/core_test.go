package core

import (
	"slices"
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll should step")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	clock = clock.Add(200 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("200ms is below the 250ms step")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("260ms accumulated, should step")
	}
	if fs.ShouldStep() {
		t.Fatal("remaining 10ms should not step")
	}
}

func TestRegistry(t *testing.T) {
	saved := sims
	defer func() { sims = saved }()
	sims = map[string]Factory{}

	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil", nil)
	if len(sims) != 0 {
		t.Fatal("empty names and nil factories must be ignored")
	}
	Register("b", func(map[string]string) (Sim, error) { return nil, nil })
	Register("a", func(map[string]string) (Sim, error) { return nil, nil })
	if got := Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("Names()=%v", got)
	}
	if _, err := New("missing", nil); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}

func TestSnapshotFields(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("gen", "Generation", 3)}},
		{Name: "B", Params: []Parameter{BoolParam("stable", "Stable", true), StringParam("rule", "Rule", "visible")}},
	}}
	f := snap.Fields()
	if f["gen"] != "3" || f["stable"] != "true" || f["rule"] != "visible" {
		t.Fatalf("unexpected fields %v", f)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 16; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed must produce the same sequence")
		}
	}
}
