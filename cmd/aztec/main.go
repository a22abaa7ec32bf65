// aztec grows random domino tilings of Aztec diamonds with the shuffling
// algorithm.
//
// Usage:
//
//	aztec run --steps 20 --ascii    - Grow headless and print the tiling
//	aztec sweep --order 40          - Validate many seeded diamonds in parallel
//	aztec tui                       - Watch the shuffle in the terminal
//	aztec gui                       - Watch the shuffle in a window (ebiten build)
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"aztec/internal/aztec"
	"aztec/internal/config"
	pcore "aztec/pkg/core"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	seed       int64
	maxOrder   int
	overrides  []string
	verbose    bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "aztec",
		Short: "Random domino tilings of Aztec diamonds",
		Long: `aztec grows uniformly random domino tilings of Aztec diamonds with the
domino shuffling algorithm: each order is reached by a migration half-step
followed by a creation half-step that fills the freed 2x2 blocks.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(flags)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), levelFor(cfg.LogLevel, flags.verbose))
			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.aztec/config.yaml)")
	pf.Int64Var(&flags.seed, "seed", 0, "RNG seed (0 for time-based)")
	pf.IntVar(&flags.maxOrder, "max-order", 0, "restart after this order (0 derives it from the window)")
	pf.StringArrayVar(&flags.overrides, "set", nil, "override a config setting as key=value (repeatable)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newSweepCmd())
	root.AddCommand(newTUICmd())
	root.AddCommand(newGUICmd())
	return root
}

// resolveConfig layers the config file, --set overrides and explicit flags.
func resolveConfig(flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	kv, err := config.ParseOverrides(flags.overrides)
	if err != nil {
		return cfg, err
	}
	if cfg, err = config.FromMap(cfg, kv); err != nil {
		return cfg, err
	}
	if flags.seed != 0 {
		cfg.Seed = flags.seed
	}
	if flags.maxOrder != 0 {
		cfg.MaxOrder = flags.maxOrder
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

// seedOf returns the configured seed, or a time-based one.
func seedOf(cfg config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// newShuffler builds a shuffler capped at maxOrder and returns the seed it
// was given so runs can be replayed.
func newShuffler(cfg config.Config, maxOrder int, opts ...aztec.Option) (*aztec.Shuffler, int64) {
	seed := seedOf(cfg)
	opts = append([]aztec.Option{aztec.WithCoin(pcore.NewRNG(seed))}, opts...)
	return aztec.NewShuffler(maxOrder, opts...), seed
}
