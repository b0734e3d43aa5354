package core

import "time"

// FixedStep accumulates wall-clock time and converts it into a whole number
// of fixed-length simulation ticks. Ticks are never partial; leftover time
// stays in the accumulator for the next frame, except on a frame that reaches
// the per-frame cap, where the accumulator is cleared.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxPerFrame int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return &FixedStep{
		step:        time.Second / time.Duration(tps),
		maxPerFrame: 8,
	}
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Steps reports how many simulation ticks should run this frame, capped so a
// long stall cannot trigger an unbounded catch-up burst.
func (f *FixedStep) Steps() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step && n < f.maxPerFrame {
		f.accumulator -= f.step
		n++
	}
	if n == f.maxPerFrame {
		f.accumulator = 0
	}
	return n
}
