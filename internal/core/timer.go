package core

import "time"

// FixedStep paces repeated generations while a step key is held down.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting tps generations per second.
// Non-positive rates fall back to 10.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.Restart()
	return fs
}

// SetTPS changes the step rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// Restart arms the controller so the next ShouldStep call fires immediately.
func (f *FixedStep) Restart() {
	f.accumulator = f.step
	f.last = time.Time{}
}

// ShouldStep reports whether one more generation is due.
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
