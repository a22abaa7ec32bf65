package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"aztec/internal/aztec"
	"aztec/internal/render"
)

func newRunCmd() *cobra.Command {
	var (
		steps  int
		half   bool
		ascii  bool
		colour bool
		pngOut string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a diamond headless and validate the result",
		Example: `  aztec run --steps 10 --ascii
  aztec run --seed 42 --steps 30 --png diamond.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("--steps must not be negative, got %d", steps)
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			s, seed := newShuffler(cfg, cfg.EffectiveMaxOrder(), aztec.WithLogger(logger))
			logger.Info("growing", "seed", seed, "steps", steps, "half", half, "max_order", s.MaxOrder())

			for i := 0; i < steps; i++ {
				if half {
					s.HalfStep()
				} else {
					s.FullStep()
				}
			}

			// Only a freshly filled diamond is a complete tiling.
			view := s.Lattice()
			if s.Phase() == aztec.PhaseMigrating {
				if err := view.Validate(); err != nil {
					return fmt.Errorf("tiling at order %d is invalid: %w", view.Order(), err)
				}
			} else {
				logger.Info("diamond is mid-step, skipping validation", "order", view.Order())
			}
			logger.Info("done",
				"order", view.Order(),
				"dominoes", len(view.Dominoes()),
				"next", s.Phase(),
				"resets", s.Generation(),
				"fill_rounds", s.LastFill().Rounds,
			)

			if ascii {
				fmt.Fprintln(cmd.OutOrStdout(), render.ASCII(render.Rasterize(view), colour))
			}
			if pngOut != "" {
				if err := writePNG(pngOut, view, cfg.CellPx); err != nil {
					return err
				}
				logger.Info("wrote image", "path", pngOut)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 10, "number of steps to run")
	cmd.Flags().BoolVar(&half, "half", false, "count half-steps instead of full steps")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "print the tiling as text")
	cmd.Flags().BoolVar(&colour, "colour", false, "use coloured blocks for --ascii")
	cmd.Flags().StringVar(&pngOut, "png", "", "write the tiling as a PNG image")
	return cmd
}

// writePNG paints the tiling onto a canvas just large enough to hold it.
func writePNG(path string, view aztec.View, cellPx int) error {
	side := 2*(view.Order()-1)*cellPx + 2*cellPx
	canvas := render.NewCanvas(side, side)
	render.PaintTiling(canvas, view, cellPx)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
