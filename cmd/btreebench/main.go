// Command btreebench measures how long it takes to fill a B-Tree with random
// keys and checks that an in-order traversal returns them sorted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lMiaul/Hola-Jesus/internal/bench"
	"github.com/lMiaul/Hola-Jesus/internal/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.L.WithError(err).Error("benchmark failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var logLevel string
	cmd := &cobra.Command{
		Use:          "btreebench",
		Short:        "Inserts random keys into a B-Tree and reports the time taken.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	flags := cmd.Flags()
	flags.IntVar(&cfg.Degree, "degree", cfg.Degree, "Minimum degree of the tree.")
	flags.IntVar(&cfg.Count, "count", cfg.Count, "Number of keys to insert per round.")
	flags.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "Number of times to fill the tree, resetting it in between.")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the random key generator.")
	flags.IntVar(&cfg.MinKey, "min-key", cfg.MinKey, "Smallest key to generate.")
	flags.IntVar(&cfg.MaxKey, "max-key", cfg.MaxKey, "Upper bound (exclusive) of generated keys.")
	flags.IntVar(&cfg.ReportEvery, "report-every", cfg.ReportEvery, "Log progress after this many inserts.")
	flags.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Check the tree invariants after each round.")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "If set, serve prometheus metrics on this address.")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error).")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLevel(logLevel); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m := bench.NewMetrics()
		if cfg.MetricsAddr != "" {
			shutdown := m.Serve(cfg.MetricsAddr, logger.L)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.L.WithError(err).Warn("error stopping metrics server")
				}
			}()
		}

		res, err := bench.Run(ctx, cfg, logger.L, m)
		if err != nil {
			return err
		}
		res.Write(cmd.OutOrStdout())
		return nil
	}
	return cmd
}
