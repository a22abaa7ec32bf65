package aztec

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"aztec/pkg/core"
)

// Phase names the half-step a Shuffler performs next.
type Phase uint8

const (
	// PhaseFilling means the next half-step fills free blocks.
	PhaseFilling Phase = iota
	// PhaseMigrating means the next half-step migrates to a larger order.
	PhaseMigrating
)

func (p Phase) String() string {
	if p == PhaseMigrating {
		return "migrating"
	}
	return "filling"
}

// Shuffler sequences migration and creation half-steps on a lattice and
// restarts from InitialOrder once the order passes maxOrder.
type Shuffler struct {
	lattice  *Lattice
	maxOrder int
	phase    Phase
	resets   int

	coin   Coin
	logger *log.Logger

	lastMigrate MigrateStats
	lastFill    FillStats
}

// Option configures a Shuffler.
type Option func(*Shuffler)

// WithCoin sets the random source used to orient new blocks.
func WithCoin(c Coin) Option {
	return func(s *Shuffler) {
		if c != nil {
			s.coin = c
		}
	}
}

// WithLogger attaches a logger for step diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Shuffler) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewShuffler returns a Shuffler holding an empty diamond of InitialOrder.
// maxOrder is fixed for the lifetime of the Shuffler.
func NewShuffler(maxOrder int, opts ...Option) *Shuffler {
	s := &Shuffler{
		lattice:  New(InitialOrder),
		maxOrder: maxOrder,
		phase:    PhaseFilling,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.coin == nil {
		s.coin = core.NewRNG(time.Now().UnixNano())
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// MaxOrderForWindow derives the largest order that fits a square window of
// windowPx pixels when every unit square is drawn 8 pixels wide.
func MaxOrderForWindow(windowPx int) int { return windowPx / 16 }

// HalfStep performs whichever half-step is pending and reports whether the
// growth cap triggered a reset.
func (s *Shuffler) HalfStep() bool {
	if s.phase == PhaseMigrating {
		s.migrate()
		s.phase = PhaseFilling
	} else {
		s.fill()
		s.phase = PhaseMigrating
	}
	return s.checkReset()
}

// FullStep completes any pending fill, migrates, and fills the new diamond
// unless the growth cap reset it. It reports whether a reset happened.
func (s *Shuffler) FullStep() bool {
	if s.phase == PhaseFilling {
		s.fill()
	}
	s.migrate()
	if s.checkReset() {
		return true
	}
	s.fill()
	s.phase = PhaseMigrating
	return false
}

func (s *Shuffler) migrate() {
	s.lastMigrate = s.lattice.Migrate()
	s.logger.Debug("migrated",
		"order", s.lattice.Order(),
		"moved", s.lastMigrate.Moved,
		"annihilated", s.lastMigrate.Annihilated,
		"collisions", s.lastMigrate.Collisions)
}

func (s *Shuffler) fill() {
	s.lastFill = s.lattice.Fill(s.coin)
	s.logger.Debug("filled",
		"order", s.lattice.Order(),
		"tiles", s.lastFill.Tiles,
		"horizontal", s.lastFill.Horizontal,
		"rounds", s.lastFill.Rounds)
}

func (s *Shuffler) checkReset() bool {
	if s.lattice.Order() <= s.maxOrder {
		return false
	}
	s.logger.Info("order cap reached, restarting", "order", s.lattice.Order(), "max", s.maxOrder)
	s.lattice.Reset()
	s.phase = PhaseFilling
	s.resets++
	return true
}

// Order returns the current diamond order.
func (s *Shuffler) Order() int { return s.lattice.Order() }

// MaxOrder returns the growth cap.
func (s *Shuffler) MaxOrder() int { return s.maxOrder }

// Phase returns the pending half-step.
func (s *Shuffler) Phase() Phase { return s.phase }

// Generation returns how many times the shuffle has restarted.
func (s *Shuffler) Generation() int { return s.resets }

// LastMigrate returns statistics from the most recent migration.
func (s *Shuffler) LastMigrate() MigrateStats { return s.lastMigrate }

// LastFill returns statistics from the most recent fill.
func (s *Shuffler) LastFill() FillStats { return s.lastFill }

// Lattice returns a read-only view of the current tiling.
func (s *Shuffler) Lattice() View { return View{l: s.lattice} }

// View is a read-only handle on a lattice. It is only meaningful between
// completed steps.
type View struct {
	l *Lattice
}

// Order returns the diamond order.
func (v View) Order() int { return v.l.Order() }

// Len returns the number of stored vertices.
func (v View) Len() int { return v.l.Len() }

// Get returns the facing at (x, y), Empty outside the diamond.
func (v View) Get(x, y int) Facing { return v.l.Get(x, y) }

// Sweep visits every vertex in storage order.
func (v View) Sweep(fn func(x, y int, f Facing)) { v.l.Sweep(fn) }

// Dominoes lists every placed domino.
func (v View) Dominoes() []Domino { return v.l.Dominoes() }

// Validate checks that the dominoes tile the diamond exactly.
func (v View) Validate() error { return v.l.Validate() }

// Snapshot returns an independent copy of the lattice.
func (v View) Snapshot() *Lattice { return v.l.Clone() }
