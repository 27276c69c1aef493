package core

import "time"

// FixedStep paces generations at a steady rate independent of the frame rate
// of whatever loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting gps generations per second.
// The first poll always steps.
func NewFixedStep(gps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(gps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the generation rate. Non-positive rates fall back to 10.
func (f *FixedStep) SetRate(gps int) {
	if gps <= 0 {
		gps = 10
	}
	f.step = time.Second / time.Duration(gps)
}

// ShouldStep reports whether the automaton should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
