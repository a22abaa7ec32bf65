package aztec

import "fmt"

// Coin supplies the independent fair bits used to orient new blocks.
type Coin interface {
	Bool() bool
}

// FillStats summarises one creation step.
type FillStats struct {
	// Candidates is the number of free block centers found by the sweep.
	Candidates int
	// Tiles is the number of 2x2 blocks that received a domino pair.
	Tiles int
	// Horizontal counts the blocks filled with a Left/Right pair.
	Horizontal int
	// Rounds is the number of cascade rounds needed.
	Rounds int
}

type point struct{ x, y int }

// Fill covers every free 2x2 block with a pair of dominoes. Each block is
// oriented by one coin flip: true places Left/Right, false places Up/Down.
// Overlapping candidate centers are resolved in rounds, committing only the
// centers that are not sandwiched between two other open centers.
func (l *Lattice) Fill(coin Coin) FillStats {
	var order []point
	open := make(map[point]bool)
	l.Sweep(func(x, y int, _ Facing) {
		if abs(x)+abs(y) < l.order-1 && l.isFreeTile(x, y) {
			p := point{x, y}
			order = append(order, p)
			open[p] = true
		}
	})

	stats := FillStats{Candidates: len(order)}
	var fillable []point
	for len(open) > 0 {
		stats.Rounds++
		fillable = fillable[:0]
		for _, p := range order {
			if !open[p] {
				continue
			}
			horizontal := open[point{p.x - 1, p.y}] && open[point{p.x + 1, p.y}]
			vertical := open[point{p.x, p.y - 1}] && open[point{p.x, p.y + 1}]
			if !horizontal && !vertical {
				fillable = append(fillable, p)
			}
		}
		if len(fillable) == 0 {
			panic(fmt.Sprintf("aztec: fill cascade stalled with %d open centers at order %d", len(open), l.order))
		}
		for _, p := range fillable {
			if !open[p] {
				continue
			}
			if coin.Bool() {
				l.Mut(p.x-1, p.y).Add(Left)
				l.Mut(p.x+1, p.y).Add(Right)
				stats.Horizontal++
			} else {
				l.Mut(p.x, p.y+1).Add(Up)
				l.Mut(p.x, p.y-1).Add(Down)
			}
			stats.Tiles++
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					delete(open, point{p.x + dx, p.y + dy})
				}
			}
		}
		order = compact(order, open)
	}
	return stats
}

func compact(order []point, open map[point]bool) []point {
	kept := order[:0]
	for _, p := range order {
		if open[p] {
			kept = append(kept, p)
		}
	}
	return kept
}

// isFreeTile reports whether the four unit squares around (x, y) are all
// uncovered, so (x, y) can take a new block.
func (l *Lattice) isFreeTile(x, y int) bool {
	return l.Get(x, y).IsEmpty() &&
		l.Get(x+1, y+1).singleOf(Left, Down) &&
		l.Get(x+1, y-1).singleOf(Left, Up) &&
		l.Get(x-1, y-1).singleOf(Right, Up) &&
		l.Get(x-1, y+1).singleOf(Right, Down) &&
		l.Get(x, y+1).singleOf(Down) &&
		l.Get(x, y-1).singleOf(Up) &&
		l.Get(x-1, y).singleOf(Right) &&
		l.Get(x+1, y).singleOf(Left)
}
