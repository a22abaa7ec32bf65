package aztec

// MigrateStats summarises one migration.
type MigrateStats struct {
	// Moved is the number of dominoes carried into the larger diamond.
	Moved int
	// Annihilated is the number of dominoes dropped because they sat in a
	// colliding pair.
	Annihilated int
	// Collisions counts vertices left holding two dominoes after the move.
	Collisions int
}

// Migrate grows the diamond by one order. Every Single slides one unit in its
// direction. Double vertices are not carried over, which removes both of their
// dominoes.
func (l *Lattice) Migrate() MigrateStats {
	next := New(l.order + 1)
	var stats MigrateStats
	l.Sweep(func(x, y int, f Facing) {
		switch f.Count() {
		case 1:
			d := f.first
			dx, dy := d.Delta()
			next.Mut(x+dx, y+dy).Add(d)
			stats.Moved++
		case 2:
			stats.Annihilated += 2
		}
	})
	for _, f := range next.cells {
		if f.IsDouble() {
			stats.Collisions++
		}
	}
	*l = *next
	return stats
}
