package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/app"
	"github.com/TemirB/foodcart/internal/config"
	"github.com/TemirB/foodcart/internal/kafka"
)

var (
	cfg    config.Config
	logger *zap.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:           "foodcartctl",
		Short:         "Operational commands for the foodcart matching service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.LoadE(); err != nil {
				return err
			}
			logger, err = app.NewLogger(cfg.Env, cfg.LogLevel)
			return err
		},
	}

	rootCmd.AddCommand(createMigrateCmd())
	rootCmd.AddCommand(createBackfillCmd())
	rootCmd.AddCommand(createMatchCmd())
	rootCmd.AddCommand(createFeedCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func createMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Repo.EnsureSchema(ctx); err != nil {
					return err
				}
				fmt.Printf("schema %q is up to date\n", cfg.Tables.Schema)
				return nil
			})
		},
	}
}

func createBackfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Geocode every restaurant that has no coordinates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				a.Cache.Warm(ctx)
				st, err := a.Service.BackfillRestaurantCoordinates(ctx)
				fmt.Printf("restaurants: %d, resolved: %d, failed: %d, superseded: %d\n",
					st.Total, st.Resolved, st.Failed, st.Superseded)
				return err
			})
		},
	}
}

func createMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match [order_uid]",
		Short: "Print the restaurants that can fulfil an order, nearest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				res, err := a.Service.MatchOrder(ctx, args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			})
		},
	}
}

func createFeedCmd() *cobra.Command {
	var (
		opts     kafka.FeedOptions
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Publish synthetic orders to the intake topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			w := kafka.NewWriter(cfg.Kafka)
			defer w.Close()

			sent, err := kafka.NewFeeder(w, logger.Named("feed")).Run(ctx, opts)
			fmt.Printf("sent %d orders to %s\n", sent, cfg.Kafka.Topic)
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&opts.Rate, "rate", 10, "orders per second")
	cmd.Flags().IntVar(&opts.Count, "count", 100, "orders to send, 0 for no limit")
	cmd.Flags().StringSliceVar(&opts.Addresses, "address", nil, "delivery addresses to pick from")
	cmd.Flags().Int64Var(&opts.MaxProduct, "max-product", 20, "highest product id")
	cmd.Flags().IntVar(&opts.MaxItems, "max-items", 3, "maximum line items per order")
	cmd.Flags().DurationVar(&duration, "duration", 0, "stop after this long")

	return cmd
}
