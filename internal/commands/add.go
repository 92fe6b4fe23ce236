package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/smsledger/internal/id"
	"github.com/cleared-dev/smsledger/internal/model"
	"github.com/cleared-dev/smsledger/internal/scanlog"
	"github.com/cleared-dev/smsledger/internal/smsparse"
)

type addFlags struct {
	sms       string
	amount    string
	direction string
	bank      string
	merchant  string
	mode      string
	category  string
	date      string
	source    string
}

func newAddCommand(a *app) *cobra.Command {
	var f addFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a transaction from an SMS, manual fields, or both",
		Long: "Save a transaction. With --sms the message is parsed first and any\n" +
			"other flag overrides the parsed field. Without --sms, --amount is required.",
		Example: `  smsledger add --sms "Rs.450 debited from HDFC a/c via UPI to VPA swiggy@ybl"
  smsledger add --amount 120 --type outgoing --category Transport --merchant "Auto"
  smsledger add --sms "$(pbpaste)" --category Food`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := a.buildRecord(cmd, f)
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Insert(cmd.Context(), rec); err != nil {
				a.audit(scanlog.Entry{Source: rec.Source, Outcome: scanlog.OutcomeRejected, Amount: rec.Amount, Details: err.Error()})
				return err
			}

			a.logger.Info("saved transaction", "id", rec.ID, "amount", rec.Amount.StringFixed(2), "category", rec.Category)
			a.audit(scanlog.Entry{Source: rec.Source, Outcome: scanlog.OutcomeSaved, RecordID: rec.ID, Amount: rec.Amount, Details: rec.Merchant})

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s %s %s (%s)\n",
				rec.ID, signedAmount(rec.Amount, rec.Direction), rec.Merchant, rec.Category)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.sms, "sms", "", "bank SMS text to parse")
	fl.StringVar(&f.amount, "amount", "", "amount in rupees, e.g. 1200.50")
	fl.StringVar(&f.direction, "type", "", "incoming or outgoing (credit/debit also accepted)")
	fl.StringVar(&f.bank, "bank", "", "bank name, e.g. \"HDFC Bank\"")
	fl.StringVar(&f.merchant, "merchant", "", "merchant or payee")
	fl.StringVar(&f.mode, "mode", "", "payment mode, e.g. UPI, NEFT, \"Card Swipe\"")
	fl.StringVar(&f.category, "category", "", "category, e.g. Food")
	fl.StringVar(&f.date, "date", "", "transaction date as YYYY-MM-DD")
	fl.StringVar(&f.source, "source", "", "sms, receipt or manual")

	return cmd
}

// buildRecord starts from the parsed SMS (or manual defaults) and applies
// every flag the user set on top.
func (a *app) buildRecord(cmd *cobra.Command, f addFlags) (model.Record, error) {
	tx := model.ParsedTransaction{
		Direction:   model.DirectionOutgoing,
		Bank:        model.BankOther,
		PaymentMode: model.PaymentModeOther,
		Date:        a.today(),
		Category:    model.CategoryOther,
	}
	source := model.SourceManual
	changed := cmd.Flags().Changed

	if strings.TrimSpace(f.sms) != "" {
		p := &smsparse.Parser{Now: a.now}
		parsed, err := p.Parse(f.sms)
		switch {
		case errors.Is(err, smsparse.ErrNoAmount) && changed("amount"):
			a.logger.Debug("sms had no amount, using manual fields")
		case err != nil:
			a.audit(scanlog.Entry{Source: model.SourceSMS, Outcome: scanlog.OutcomeNoAmount, Details: f.sms})
			return model.Record{}, err
		default:
			tx = parsed
			source = model.SourceSMS
		}
	} else if !changed("amount") {
		return model.Record{}, errors.New("either --sms or --amount is required")
	}

	if changed("amount") {
		amount, err := decimal.NewFromString(strings.ReplaceAll(f.amount, ",", ""))
		if err != nil {
			return model.Record{}, fmt.Errorf("invalid --amount %q: %w", f.amount, err)
		}
		tx.Amount = amount
	}
	if changed("type") {
		d, ok := model.ParseDirection(strings.ToLower(f.direction))
		if !ok {
			return model.Record{}, fmt.Errorf("invalid --type %q: want incoming or outgoing", f.direction)
		}
		tx.Direction = d
	}
	if changed("bank") {
		b, ok := model.ParseBank(f.bank)
		if !ok {
			return model.Record{}, fmt.Errorf("unknown --bank %q", f.bank)
		}
		tx.Bank = b
	}
	if changed("merchant") {
		tx.Merchant = f.merchant
	}
	if changed("mode") {
		m, ok := model.ParsePaymentMode(f.mode)
		if !ok {
			return model.Record{}, fmt.Errorf("unknown --mode %q", f.mode)
		}
		tx.PaymentMode = m
	}
	// A credit re-filed as outgoing cannot keep Income.
	if changed("type") && !changed("category") && tx.Direction == model.DirectionOutgoing {
		tx.Category = model.CategoryOther
		if source == model.SourceSMS {
			tx.Category = smsparse.ClassifyCategory(f.sms, tx.Merchant, tx.Direction)
		}
	}
	if changed("category") {
		c, ok := model.ParseCategory(f.category)
		if !ok {
			return model.Record{}, fmt.Errorf("unknown --category %q", f.category)
		}
		tx.Category = c
	}
	if changed("date") {
		d, err := time.Parse(time.DateOnly, f.date)
		if err != nil {
			return model.Record{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", f.date)
		}
		tx.Date = d
	}
	if changed("source") {
		s, err := parseSource(f.source)
		if err != nil {
			return model.Record{}, err
		}
		source = s
	}

	raw := ""
	if source != model.SourceManual {
		raw = f.sms
	}
	return model.NewRecord(id.NewRecordID(source), tx, raw, source), nil
}

func parseSource(s string) (model.Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sms", "sms_parse":
		return model.SourceSMS, nil
	case "receipt", "receipt_parse":
		return model.SourceReceipt, nil
	case "manual":
		return model.SourceManual, nil
	}
	return "", fmt.Errorf("invalid --source %q: want sms, receipt or manual", s)
}
