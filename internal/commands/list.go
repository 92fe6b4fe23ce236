package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/smsledger/internal/ledger"
	"github.com/cleared-dev/smsledger/internal/model"
)

// monthFilter narrows records to --month or --today when either is set.
type monthFilter struct {
	month string
	today bool
}

func (f *monthFilter) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.month, "month", "", "only records in this month (YYYY-MM)")
	cmd.Flags().BoolVar(&f.today, "today", false, "only records dated today")
	cmd.MarkFlagsMutuallyExclusive("month", "today")
}

// apply filters records and returns a human label for the selection.
func (f *monthFilter) apply(records []model.Record, now time.Time) ([]model.Record, string, error) {
	switch {
	case f.today:
		return ledger.OnDay(records, now), now.Format("2 January 2006"), nil
	case f.month != "":
		m, err := time.Parse("2006-01", f.month)
		if err != nil {
			return nil, "", fmt.Errorf("invalid --month %q: want YYYY-MM", f.month)
		}
		return ledger.Month(records, m.Year(), m.Month()), m.Format("January 2006"), nil
	}
	return records, "", nil
}

// listRecords loads every record, newest first.
func (a *app) listRecords(ctx context.Context) ([]model.Record, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.List(ctx)
}

func newListCommand(a *app) *cobra.Command {
	var filter monthFilter
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.listRecords(cmd.Context())
			if err != nil {
				return err
			}
			records, _, err = filter.apply(records, a.now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No transactions.")
				return nil
			}

			total := len(records)
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			fmt.Fprintln(out, recordsTable(records))
			fmt.Fprintf(out, "%d of %d transactions\n", len(records), total)
			return nil
		},
	}

	filter.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n records (0 for all)")

	return cmd
}
