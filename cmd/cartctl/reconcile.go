package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"buyhive/internal/usecase"
	"buyhive/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// errDriftFound makes check exit non-zero when any user needs repair.
var errDriftFound = errors.New("reference drift found")

type reconcileFlags struct {
	userIDs     []string
	all         bool
	concurrency int
}

func (f *reconcileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.userIDs, "user", nil, "user id to process (repeatable)")
	cmd.Flags().BoolVar(&f.all, "all", false, "process every user")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", defaultConcurrency, "users processed in parallel")
}

func newCheckCommand(opts *rootOptions) *cobra.Command {
	flags := &reconcileFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report reference drift without writing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := runReconcile(cmd.Context(), flags, false)
			if err != nil {
				return err
			}
			if err := writeReports(cmd.OutOrStdout(), opts.Format, reports); err != nil {
				return err
			}

			for _, report := range reports {
				if !report.Plan.Empty() {
					return errDriftFound
				}
			}

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newReconcileCommand(opts *rootOptions) *cobra.Command {
	flags := &reconcileFlags{}
	var apply bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Rebuild derived references from their authoritative side",
		Long: `Rebuild user cart lists from cart owners and cart item lists from item
memberships. Items whose carts are all gone are deleted; items moved to no
cart are only reported. Without --apply the plan is printed and nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := runReconcile(cmd.Context(), flags, apply)
			if err != nil {
				return err
			}

			return writeReports(cmd.OutOrStdout(), opts.Format, reports)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&apply, "apply", false, "write the repairs")

	return cmd
}

func runReconcile(ctx context.Context, flags *reconcileFlags, apply bool) ([]*usecase.ReconcileReport, error) {
	if err := requireTarget(flags.userIDs, flags.all); err != nil {
		return nil, err
	}

	var reports []*usecase.ReconcileReport
	err := withReconciler(ctx, func(ctx context.Context, reconciler usecase.ReconcileUsecase, logger *slog.Logger) error {
		userIDs := util.DedupeIDs(flags.userIDs)
		if flags.all {
			ids, err := reconciler.ListUserIDs(ctx)
			if err != nil {
				return errors.Wrap(err, "list users")
			}
			userIDs = ids
		}

		start := time.Now()
		var err error
		reports, err = reconcileUsers(ctx, reconciler, userIDs, apply, flags.concurrency)
		if err != nil {
			return err
		}

		logger.Info("Reconcile finished",
			slog.Int("users", len(userIDs)),
			slog.Bool("apply", apply),
			slog.String("elapsed", util.FormatDuration(time.Since(start))),
		)

		return nil
	})

	return reports, err
}

// reconcileUsers processes users in parallel and returns reports in input order.
func reconcileUsers(ctx context.Context, reconciler usecase.ReconcileUsecase, userIDs []string, apply bool, concurrency int) ([]*usecase.ReconcileReport, error) {
	reports := make([]*usecase.ReconcileReport, len(userIDs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(concurrency, 1))

	for idx, userID := range userIDs {
		group.Go(func() error {
			report, err := reconciler.Reconcile(ctx, userID, apply)
			if err != nil {
				return errors.Wrapf(err, "reconcile user %s", userID)
			}
			reports[idx] = report

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func writeReports(w io.Writer, format string, reports []*usecase.ReconcileReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.WithStack(enc.Encode(reports))
	}

	for _, report := range reports {
		plan := report.Plan
		if plan.Empty() && len(plan.Parked) == 0 {
			fmt.Fprintf(w, "%s: consistent\n", report.UserID)

			continue
		}

		state := "planned"
		if report.Applied {
			state = "applied"
		}
		fmt.Fprintf(w, "%s: %s\n", report.UserID, state)
		if plan.UserCartIDs != nil {
			fmt.Fprintf(w, "  user carts -> %v\n", plan.UserCartIDs)
		}
		for _, fix := range plan.CartFixes {
			fmt.Fprintf(w, "  cart %s items -> %v\n", fix.CartID, fix.ItemIDs)
		}
		for _, fix := range plan.ItemFixes {
			fmt.Fprintf(w, "  item %s carts -> %v\n", fix.ItemID, fix.CartIDs)
		}
		for _, itemID := range plan.Orphans {
			fmt.Fprintf(w, "  item %s lost every cart\n", itemID)
		}
		for _, itemID := range plan.Parked {
			fmt.Fprintf(w, "  item %s is in no cart\n", itemID)
		}
		if report.Failed > 0 {
			fmt.Fprintf(w, "  %d writes failed\n", report.Failed)
		}
	}

	return nil
}
