package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"buyhive/config"
	logs "buyhive/internal/infra/log"
	"buyhive/internal/infra/persistence"
	"buyhive/internal/usecase"
	"buyhive/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Format string // "json" | "text"
}

var validFormats = []string{"text", "json"}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cartctl",
		Short: "Inspect and repair cart and item references",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return errors.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newReconcileCommand(opts))

	return cmd
}

// withReconciler starts the storage layer selected by the config file, runs fn
// and stops it again.
func withReconciler(ctx context.Context, fn func(context.Context, usecase.ReconcileUsecase, *slog.Logger) error) error {
	var (
		reconciler usecase.ReconcileUsecase
		logger     *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			impl.NewReconcileService,
		),
		persistence.Module,
		fx.Populate(&reconciler, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start storage")
	}
	defer func() {
		if err := app.Stop(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("Failed to stop storage", slog.Any("error", err))
		}
	}()

	return fn(ctx, reconciler, logger)
}

func requireTarget(userIDs []string, all bool) error {
	if all && len(userIDs) > 0 {
		return fmt.Errorf("--user and --all are mutually exclusive")
	}
	if !all && len(userIDs) == 0 {
		return fmt.Errorf("one of --user or --all is required")
	}

	return nil
}
