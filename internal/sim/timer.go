package sim

import "time"

// DefaultSPS is the default generation cadence, matching one step every
// 200ms.
const DefaultSPS = 5

// FixedStep gates generation advances to a steady steps-per-second rate,
// independent of how often the surrounding loop runs.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given SPS.
func NewFixedStep(sps int) *FixedStep {
	if sps <= 0 {
		sps = DefaultSPS
	}
	fs := &FixedStep{}
	fs.SetSPS(sps)
	fs.accumulator = fs.step
	return fs
}

// SetSPS changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetSPS(sps int) {
	if sps <= 0 {
		sps = DefaultSPS
	}
	f.step = time.Second / time.Duration(sps)
}

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
