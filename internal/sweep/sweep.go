// Package sweep grows many independently seeded diamonds in parallel and
// validates and aggregates the resulting tilings.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"aztec/internal/aztec"
	pcore "aztec/pkg/core"
)

// ErrInvalidOptions is returned when Options cannot describe a sweep.
var ErrInvalidOptions = errors.New("sweep: invalid options")

// Options configures a sweep.
type Options struct {
	// Order is the diamond order each run grows to.
	Order int
	// BaseSeed is the seed of the first run; run i uses BaseSeed+i.
	BaseSeed int64
	// Count is the number of runs.
	Count int
	// Workers defaults to runtime.NumCPU when zero.
	Workers int
	Logger  *log.Logger
}

// Result describes one grown diamond.
type Result struct {
	Seed     int64
	Order    int
	Dominoes int
	// ByDir counts dominoes per direction, indexed by aztec.Direction.
	ByDir       [4]int
	BadBlocks   int
	Annihilated int
	MaxRounds   int
	Err         error
}

// Summary aggregates a batch of results.
type Summary struct {
	Runs     int
	Failures int
	// Share is the mean fraction of dominoes per direction.
	Share       [4]float64
	BadBlocks   float64
	Annihilated float64
	MaxRounds   int
}

func (o Options) validate() error {
	if o.Order < aztec.InitialOrder {
		return fmt.Errorf("%w: order %d below %d", ErrInvalidOptions, o.Order, aztec.InitialOrder)
	}
	if o.Count < 1 {
		return fmt.Errorf("%w: count %d", ErrInvalidOptions, o.Count)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidOptions, o.Workers)
	}
	return nil
}

// Run executes the sweep and returns results sorted by seed. The order of
// results does not depend on the number of workers.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Info("sweeping", "order", opts.Order, "runs", opts.Count, "workers", workers)

	jobs := make(chan int64)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := pcore.NewRNG(0)
			for seed := range jobs {
				rng.Reseed(seed)
				results <- grow(opts.Order, seed, rng)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < opts.Count; i++ {
			select {
			case jobs <- opts.BaseSeed + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	start := time.Now()
	all := make([]Result, 0, opts.Count)
	for res := range results {
		if res.Err != nil {
			logger.Warn("invalid tiling", "seed", res.Seed, "err", res.Err)
		}
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	logger.Info("sweep done", "runs", len(all), "elapsed", time.Since(start).Round(time.Millisecond))
	return all, nil
}

// Grow shuffles a diamond from InitialOrder up to order with the given seed
// and reports its statistics.
func Grow(order int, seed int64) Result {
	return grow(order, seed, pcore.NewRNG(seed))
}

// grow runs one diamond on rng, which must already be seeded with seed.
func grow(order int, seed int64, rng *pcore.RNG) Result {
	s := aztec.NewShuffler(order, aztec.WithCoin(rng))
	res := Result{Seed: seed}

	s.HalfStep()
	res.MaxRounds = s.LastFill().Rounds
	for s.Order() < order {
		s.FullStep()
		res.Annihilated += s.LastMigrate().Annihilated
		res.MaxRounds = max(res.MaxRounds, s.LastFill().Rounds)
	}

	view := s.Lattice()
	res.Order = view.Order()
	for _, d := range view.Dominoes() {
		res.ByDir[d.Dir]++
		res.Dominoes++
	}
	view.Sweep(func(_, _ int, f aztec.Facing) {
		if f.IsDouble() {
			res.BadBlocks++
		}
	})
	res.Err = view.Validate()
	return res
}

// Summarize aggregates results. Runs with a validation error count as
// failures and are excluded from the averages.
func Summarize(results []Result) Summary {
	var sum Summary
	ok := 0
	for _, r := range results {
		sum.Runs++
		if r.Err != nil {
			sum.Failures++
			continue
		}
		ok++
		if r.Dominoes > 0 {
			for d := range r.ByDir {
				sum.Share[d] += float64(r.ByDir[d]) / float64(r.Dominoes)
			}
		}
		sum.BadBlocks += float64(r.BadBlocks)
		sum.Annihilated += float64(r.Annihilated)
		sum.MaxRounds = max(sum.MaxRounds, r.MaxRounds)
	}
	if ok == 0 {
		return sum
	}
	for d := range sum.Share {
		sum.Share[d] /= float64(ok)
	}
	sum.BadBlocks /= float64(ok)
	sum.Annihilated /= float64(ok)
	return sum
}
