package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/smsledger/internal/ledger"
)

func newExportCommand(a *app) *cobra.Command {
	var filter monthFilter
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as JSON, a CSV report, or a ledger CSV",
		Long: "Export transactions.\n\n" +
			"  json    backup document with exportedAt, count and transactions\n" +
			"  csv     spreadsheet report (Date, Time, Type, Amount, ...)\n" +
			"  ledger  transactions.csv format, readable by the csv backend",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "json" && format != "csv" && format != "ledger" {
				return fmt.Errorf("unknown --format %q: want json, csv or ledger", format)
			}

			records, err := a.listRecords(cmd.Context())
			if err != nil {
				return err
			}
			records, period, err := filter.apply(records, a.now())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "json":
				err = ledger.ExportJSON(w, records, period, a.now())
			case "csv":
				err = ledger.ExportCSV(w, records)
			case "ledger":
				err = ledger.WriteRecords(w, records)
			}
			if err != nil {
				return err
			}

			a.logger.Info("exported transactions", "format", format, "count", len(records), "output", output)
			return nil
		},
	}

	filter.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, csv or ledger")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
