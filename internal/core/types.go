package core

import "time"

// Stepper is the mutating surface a viewer drives. Both methods report
// whether the growth cap restarted the shuffle.
type Stepper interface {
	HalfStep() bool
	FullStep() bool
}

// Mode selects what one automatic tick does.
type Mode uint8

const (
	// ModeFull advances a whole order per tick.
	ModeFull Mode = iota
	// ModeHalf alternates migration and creation per tick.
	ModeHalf
)

func (m Mode) String() string {
	if m == ModeHalf {
		return "half-step"
	}
	return "full-step"
}

// Session holds the interactive state shared by the viewers: pause, stepping
// mode and speed. It owns no rendering.
type Session struct {
	sim    Stepper
	pacer  *Pacer
	mode   Mode
	paused bool
	steps  int
}

// NewSession wraps sim with a pacer firing every interval.
func NewSession(sim Stepper, interval time.Duration, mode Mode) *Session {
	return &Session{sim: sim, pacer: NewPacer(interval), mode: mode}
}

// Tick advances the simulation if it is running and a step is due. It
// reports whether a step ran.
func (s *Session) Tick(now time.Time) bool {
	if !s.pacer.Due(now) || s.paused {
		return false
	}
	s.step()
	return true
}

// Advance runs one step in the current mode regardless of the pacer.
func (s *Session) Advance() { s.step() }

func (s *Session) step() {
	if s.mode == ModeHalf {
		s.sim.HalfStep()
	} else {
		s.sim.FullStep()
	}
	s.steps++
}

// Space pauses a running session. On a paused session it performs a single
// half-step instead, and reports true.
func (s *Session) Space() bool {
	if !s.paused {
		s.paused = true
		return false
	}
	s.sim.HalfStep()
	s.steps++
	return true
}

// TogglePause flips between running and paused.
func (s *Session) TogglePause() { s.paused = !s.paused }

// ToggleMode switches between half-step and full-step ticks.
func (s *Session) ToggleMode() {
	if s.mode == ModeHalf {
		s.mode = ModeFull
	} else {
		s.mode = ModeHalf
	}
}

// Faster shortens the step interval.
func (s *Session) Faster() { s.pacer.Faster() }

// Slower lengthens the step interval.
func (s *Session) Slower() { s.pacer.Slower() }

// ResetSpeed restores the initial step interval.
func (s *Session) ResetSpeed() { s.pacer.ResetSpeed() }

// Paused reports whether automatic ticks are suspended.
func (s *Session) Paused() bool { return s.paused }

// Mode returns what one automatic tick does.
func (s *Session) Mode() Mode { return s.mode }

// Interval returns the current step interval.
func (s *Session) Interval() time.Duration { return s.pacer.Interval() }

// Steps counts the steps run so far, automatic or manual.
func (s *Session) Steps() int { return s.steps }
