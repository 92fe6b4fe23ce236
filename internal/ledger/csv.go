package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/smsledger/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,date,amount,direction,bank,merchant,payment_mode,category,category_icon,category_color,raw,source"

const (
	numFields    = 12
	dateFormat   = time.RFC3339
	colID        = 0
	colDate      = 1
	colAmount    = 2
	colDirection = 3
	colBank      = 4
	colMerchant  = 5
	colMode      = 6
	colCategory  = 7
	colIcon      = 8
	colColor     = 9
	colRaw       = 10
	colSource    = 11
)

// ReadRecords reads all records from a transactions.csv reader.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// Skip header row.
	var records []model.Record
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteRecords writes records to a transactions.csv writer (including header).
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendRecords appends records to an existing transactions.csv writer (no header).
func AppendRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colID] = rec.ID
	row[colDate] = rec.Date.UTC().Format(dateFormat)
	row[colAmount] = rec.Amount.StringFixed(2)
	row[colDirection] = string(rec.Direction)
	row[colBank] = string(rec.Bank)
	row[colMerchant] = rec.Merchant
	row[colMode] = string(rec.PaymentMode)
	row[colCategory] = string(rec.Category)
	row[colIcon] = rec.CategoryIcon
	row[colColor] = rec.CategoryColor
	row[colRaw] = rec.Raw
	row[colSource] = string(rec.Source)
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(row []string) (model.Record, error) {
	if len(row) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	date, err := time.Parse(dateFormat, row[colDate])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing date %q: %w", row[colDate], err)
	}

	amount, err := decimal.NewFromString(row[colAmount])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", row[colAmount], err)
	}

	return model.Record{
		ID:            row[colID],
		Date:          date.UTC(),
		Amount:        amount,
		Direction:     model.Direction(row[colDirection]),
		Bank:          model.Bank(row[colBank]),
		Merchant:      row[colMerchant],
		PaymentMode:   model.PaymentMode(row[colMode]),
		Category:      model.Category(row[colCategory]),
		CategoryIcon:  row[colIcon],
		CategoryColor: row[colColor],
		Raw:           row[colRaw],
		Source:        model.Source(row[colSource]),
	}, nil
}
