package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/smsledger/internal/model"
)

// ValidationError describes a single problem with a record.
type ValidationError struct {
	Field       string
	RecordID    string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Field, e.RecordID, e.Description)
}

var hundred = decimal.NewFromInt(100)

// ValidateRecord checks the invariants every stored record must hold.
func ValidateRecord(rec model.Record) []ValidationError {
	var errs []ValidationError
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, RecordID: rec.ID, Description: fmt.Sprintf(format, args...)})
	}

	if rec.ID == "" {
		add("id", "must not be empty")
	}
	if rec.Date.IsZero() {
		add("date", "must be set")
	}

	if !rec.Amount.IsPositive() {
		add("amount", "%s must be greater than zero", rec.Amount)
	} else if !rec.Amount.Mul(hundred).Equal(rec.Amount.Mul(hundred).Floor()) {
		add("amount", "%s has more than 2 decimal places", rec.Amount)
	}

	if !rec.Direction.Valid() {
		add("direction", "unknown direction %q", rec.Direction)
	}
	if !rec.Bank.Valid() {
		add("bank", "unknown bank %q", rec.Bank)
	}
	if !rec.PaymentMode.Valid() {
		add("payment_mode", "unknown payment mode %q", rec.PaymentMode)
	}
	if !rec.Category.Valid() {
		add("category", "unknown category %q", rec.Category)
	}
	if !rec.Source.Valid() {
		add("source", "unknown source %q", rec.Source)
	}

	// Income is reserved for, and required by, incoming money.
	incoming := rec.Direction == model.DirectionIncoming
	if incoming && rec.Category != model.CategoryIncome {
		add("category", "incoming transaction must be categorised as Income, got %q", rec.Category)
	}
	if !incoming && rec.Category == model.CategoryIncome {
		add("category", "Income is only valid for incoming transactions")
	}

	return errs
}

// checkRecord folds ValidateRecord's result into a single error.
func checkRecord(rec model.Record) error {
	verrs := ValidateRecord(rec)
	if len(verrs) == 0 {
		return nil
	}
	msg := verrs[0].Error()
	for _, ve := range verrs[1:] {
		msg += "; " + ve.Error()
	}
	return fmt.Errorf("validation failed: %s", msg)
}
