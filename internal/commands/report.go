package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/smsledger/internal/ledger"
)

func newSummaryCommand(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Spending by category over the last N days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("days") {
				days = a.cfg.Reports.SummaryDays
			}
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}

			records, err := a.listRecords(cmd.Context())
			if err != nil {
				return err
			}
			totals := ledger.CategorySummary(records, days, a.now())

			out := cmd.OutOrStdout()
			if len(totals) == 0 {
				fmt.Fprintf(out, "No spending in the last %d days.\n", days)
				return nil
			}

			spent := decimal.Zero
			for _, ct := range totals {
				spent = spent.Add(ct.Total)
			}

			t := newTable(nil, "Category", "Spent", "Txns", "Share")
			for _, ct := range totals {
				share := ct.Total.Div(spent).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
				t.Row(categoryLabel(ct.Icon, ct.Category), rupees(ct.Total), fmt.Sprint(ct.Count), share)
			}
			fmt.Fprintln(out, t.String())
			fmt.Fprintf(out, "Spent %s in the last %d days\n", rupees(spent), days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "window size in days (default from config)")

	return cmd
}

func newMonthlyCommand(a *app) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Income and spending per month, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("months") {
				months = a.cfg.Reports.MonthlyMonths
			}

			records, err := a.listRecords(cmd.Context())
			if err != nil {
				return err
			}
			return printPeriods(cmd, "Month", ledger.MonthlyTotals(records, months))
		},
	}

	cmd.Flags().IntVar(&months, "months", 6, "number of months to show, 0 for all (default from config)")

	return cmd
}

func newDailyCommand(a *app) *cobra.Command {
	var filter monthFilter

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Income and spending per day, newest first",
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
			return printPeriods(cmd, "Day", ledger.DailyTotals(records))
		},
	}

	filter.register(cmd)

	return cmd
}

func printPeriods(cmd *cobra.Command, label string, periods []ledger.PeriodTotal) error {
	out := cmd.OutOrStdout()
	if len(periods) == 0 {
		fmt.Fprintln(out, "No transactions.")
		return nil
	}

	t := newTable(func(row, col int) lipgloss.Style {
		switch col {
		case 1:
			return cellStyle.Foreground(colorCredit)
		case 2:
			return cellStyle.Foreground(colorDebit)
		case 3:
			if periods[row].Net().IsNegative() {
				return cellStyle.Foreground(colorDebit)
			}
			return cellStyle.Foreground(colorCredit)
		}
		return cellStyle
	}, label, "Income", "Spent", "Net", "Txns")

	for _, p := range periods {
		t.Row(p.Period, rupees(p.Credit), rupees(p.Debit), rupees(p.Net()), fmt.Sprint(p.Count))
	}
	fmt.Fprintln(out, t.String())
	return nil
}
