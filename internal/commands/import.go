package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/smsledger/internal/id"
	"github.com/cleared-dev/smsledger/internal/inbox"
	"github.com/cleared-dev/smsledger/internal/model"
	"github.com/cleared-dev/smsledger/internal/scanlog"
	"github.com/cleared-dev/smsledger/internal/smsparse"
)

func newImportCommand(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Save every transaction found in SMS exports under import/",
		Long: "Parse .txt dumps (messages separated by blank lines) and SMS backup\n" +
			".csv files (with a body/message column) from the import/ directory.\n" +
			"Messages without an amount are skipped. Processed files move to import/processed/.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := inbox.DefaultRegistry()
			files, err := reg.Scan(a.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintf(out, "Nothing to import in %s\n", inbox.Dir(a.root))
				return nil
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			p := &smsparse.Parser{Now: a.now}
			for _, fi := range files {
				msgs, err := reg.ReadFile(fi)
				if err != nil {
					return err
				}

				saved, skipped := 0, 0
				for _, msg := range msgs {
					tx, err := p.Parse(msg)
					if errors.Is(err, smsparse.ErrNoAmount) {
						skipped++
						a.audit(scanlog.Entry{Source: model.SourceSMS, Outcome: scanlog.OutcomeNoAmount, Details: msg})
						continue
					}
					if err != nil {
						return err
					}
					if dryRun {
						saved++
						continue
					}

					rec := model.NewRecord(id.NewRecordID(model.SourceSMS), tx, msg, model.SourceSMS)
					if err := store.Insert(cmd.Context(), rec); err != nil {
						skipped++
						a.audit(scanlog.Entry{Source: model.SourceSMS, Outcome: scanlog.OutcomeRejected, Amount: rec.Amount, Details: err.Error()})
						continue
					}
					saved++
					a.audit(scanlog.Entry{Source: model.SourceSMS, Outcome: scanlog.OutcomeSaved, RecordID: rec.ID, Amount: rec.Amount, Details: rec.Merchant})
				}

				verb := "saved"
				if dryRun {
					verb = "would save"
				} else if err := inbox.MarkProcessed(a.root, fi.Name); err != nil {
					return err
				}
				a.logger.Info("imported file", "file", fi.Name, "messages", len(msgs), "saved", saved, "skipped", skipped, "dry_run", dryRun)
				fmt.Fprintf(out, "%s: %s %d, skipped %d\n", fi.Name, verb, saved, skipped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without saving or moving files")

	return cmd
}
