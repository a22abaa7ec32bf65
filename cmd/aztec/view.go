package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"aztec/internal/app"
	"aztec/internal/aztec"
	"aztec/internal/config"
	"aztec/internal/core"
	"aztec/internal/tui"
)

func sessionMode(cfg config.Config) core.Mode {
	if cfg.HalfStepMode {
		return core.ModeHalf
	}
	return core.ModeFull
}

func newTUICmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Watch the shuffle in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			maxOrder := cfg.MaxOrder
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				fit := tui.MaxOrderForTerminal(w, h)
				if maxOrder == 0 || fit < maxOrder {
					maxOrder = fit
				}
				logger.Debug("terminal size", "w", w, "h", h, "max_order", maxOrder)
			} else if maxOrder == 0 {
				maxOrder = tui.MaxOrderForTerminal(80, 24)
			}

			// Log lines would tear the alternate screen, so the shuffler stays quiet.
			s, seed := newShuffler(cfg, maxOrder)
			logger.Info("starting terminal viewer", "seed", seed, "max_order", maxOrder)
			session := core.NewSession(s, cfg.Interval(), sessionMode(cfg))
			return tui.Run(tui.NewModel(s, session, !plain))
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "draw arrows instead of coloured blocks")
	return cmd
}

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Watch the shuffle in a desktop window",
		Long: `gui opens an ebiten window. The binary must be built with -tags ebiten;
otherwise the command fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			maxOrder := cfg.EffectiveMaxOrder()
			s, seed := newShuffler(cfg, maxOrder, aztec.WithLogger(logger))
			logger.Info("starting desktop viewer", "seed", seed, "max_order", maxOrder, "window_px", cfg.WindowPx)
			session := core.NewSession(s, cfg.Interval(), sessionMode(cfg))
			return app.Run(app.New(s, session, cfg.WindowPx, cfg.CellPx))
		},
	}
}
