package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"aztec/internal/aztec"
	"aztec/internal/sweep"
)

func newSweepCmd() *cobra.Command {
	var (
		order   int
		seeds   int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Grow many seeded diamonds in parallel and validate them",
		Long: `sweep grows one diamond per seed, starting at --seed (or 1) and counting
up, and reports per-direction domino shares, bad blocks and annihilations.
Results do not depend on the number of workers.`,
		Example: "  aztec sweep --order 40 --seeds 64 --workers 8",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			base := configFromContext(ctx).Seed
			if base == 0 {
				base = 1
			}

			results, err := sweep.Run(ctx, sweep.Options{
				Order:    order,
				BaseSeed: base,
				Count:    seeds,
				Workers:  workers,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			sum := sweep.Summarize(results)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "order %d, %d runs, %d failures\n", order, sum.Runs, sum.Failures)
			for _, d := range aztec.Directions() {
				fmt.Fprintf(out, "  %-5s %.4f\n", d, sum.Share[d])
			}
			fmt.Fprintf(out, "  bad blocks  %.2f per diamond\n", sum.BadBlocks)
			fmt.Fprintf(out, "  annihilated %.2f per diamond\n", sum.Annihilated)
			fmt.Fprintf(out, "  max fill rounds %d\n", sum.MaxRounds)

			if sum.Failures > 0 {
				return fmt.Errorf("%d of %d tilings failed validation", sum.Failures, sum.Runs)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&order, "order", 20, "order each diamond grows to")
	cmd.Flags().IntVar(&seeds, "seeds", 32, "number of seeds to run")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}
