package core

import "time"

// FixedStep helps run frames at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the loop should advance by one frame. A long
// stall does not queue a burst of catch-up frames; drift is tolerated.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// FPSMeter averages frame counts over roughly one-second windows. It is only
// used for display.
type FPSMeter struct {
	window  time.Duration
	elapsed time.Duration
	frames  int
	fps     float64
}

// NewFPSMeter returns a meter that reports once per second.
func NewFPSMeter() *FPSMeter {
	return &FPSMeter{window: time.Second}
}

// Frame records one frame that took dt. It reports true when a new reading
// is available.
func (m *FPSMeter) Frame(dt time.Duration) bool {
	m.elapsed += dt
	m.frames++
	if m.elapsed < m.window {
		return false
	}
	m.fps = float64(m.frames) / m.elapsed.Seconds()
	m.frames = 0
	m.elapsed = 0
	return true
}

// FPS returns the most recent reading.
func (m *FPSMeter) FPS() float64 { return m.fps }
