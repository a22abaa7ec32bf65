package core

import "time"

const (
	// DefaultInterval is the delay between automatic steps.
	DefaultInterval = 300 * time.Millisecond

	minInterval = 5 * time.Millisecond
	maxInterval = 10 * time.Second
)

// Pacer decides when the next automatic step is due and lets the user speed
// the stepping up or slow it down.
type Pacer struct {
	interval time.Duration
	base     time.Duration
	last     time.Time
}

// NewPacer constructs a Pacer firing every interval. Non-positive intervals
// fall back to DefaultInterval.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	interval = clampInterval(interval)
	return &Pacer{interval: interval, base: interval}
}

// Interval returns the current step interval.
func (p *Pacer) Interval() time.Duration { return p.interval }

// Faster shortens the interval by a sixth.
func (p *Pacer) Faster() {
	p.interval = clampInterval(p.interval / 12 * 10)
}

// Slower lengthens the interval by a fifth.
func (p *Pacer) Slower() {
	p.interval = clampInterval(p.interval / 10 * 12)
}

// ResetSpeed restores the interval the Pacer was created with.
func (p *Pacer) ResetSpeed() { p.interval = p.base }

// Due reports whether a step should run at now. The first call only starts
// the clock.
func (p *Pacer) Due(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
		return false
	}
	if now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}

func clampInterval(d time.Duration) time.Duration {
	if d < minInterval {
		return minInterval
	}
	if d > maxInterval {
		return maxInterval
	}
	return d
}
