package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/smsledger/internal/model"
	"github.com/cleared-dev/smsledger/internal/scanlog"
	"github.com/cleared-dev/smsledger/internal/smsparse"
)

// parsedView is the JSON shape printed by `scan --json`.
type parsedView struct {
	Type        model.Direction   `json:"type"`
	Amount      json.Number       `json:"amount"`
	Bank        model.Bank        `json:"bank"`
	Merchant    string            `json:"merchant"`
	PaymentMode model.PaymentMode `json:"paymentMode"`
	Date        string            `json:"date"`
	Category    model.Category    `json:"category"`
}

func newParsedView(tx model.ParsedTransaction) parsedView {
	return parsedView{
		Type:        tx.Direction,
		Amount:      json.Number(tx.Amount.StringFixed(2)),
		Bank:        tx.Bank,
		Merchant:    tx.Merchant,
		PaymentMode: tx.PaymentMode,
		Date:        tx.Date.Format(time.DateOnly),
		Category:    tx.Category,
	}
}

func newScanCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan [sms text]",
		Short: "Parse a bank SMS and show what would be saved",
		Long: "Parse a bank SMS and show the extracted fields without saving.\n" +
			"The text is read from the arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			p := &smsparse.Parser{Now: a.now}
			tx, err := p.Parse(text)
			if errors.Is(err, smsparse.ErrNoAmount) {
				a.audit(scanlog.Entry{Source: model.SourceSMS, Outcome: scanlog.OutcomeNoAmount, Details: text})
				return err
			}
			if err != nil {
				return err
			}

			a.logger.Debug("parsed sms", "amount", tx.Amount.StringFixed(2), "bank", tx.Bank, "direction", tx.Direction)
			a.audit(scanlog.Entry{
				Source:  model.SourceSMS,
				Outcome: scanlog.OutcomeParsed,
				Amount:  tx.Amount,
				Details: fmt.Sprintf("%s %s %s", tx.Bank, tx.PaymentMode, tx.Merchant),
			})

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(newParsedView(tx))
			}
			fmt.Fprintln(out, parsedTable(tx))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the parsed transaction as JSON")

	return cmd
}

// readText joins args, or reads all of stdin when there are none.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func parsedTable(tx model.ParsedTransaction) string {
	merchant := tx.Merchant
	if merchant == "" {
		merchant = "-"
	}
	t := newTable(func(row, col int) lipgloss.Style {
		if row == 1 && col == 1 {
			return directionStyle(tx.Direction)
		}
		return cellStyle
	}, "Field", "Value")
	t.Row("Type", string(tx.Direction))
	t.Row("Amount", rupees(tx.Amount))
	t.Row("Bank", string(tx.Bank))
	t.Row("Merchant", merchant)
	t.Row("Mode", string(tx.PaymentMode))
	t.Row("Date", tx.Date.Format(time.DateOnly))
	t.Row("Category", categoryLabel("", tx.Category))
	return t.String()
}
