package ledger

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cleared-dev/smsledger/internal/model"
)

// utf8BOM prefixes report CSVs so spreadsheet apps detect the encoding.
const utf8BOM = "\uFEFF"

// ReportHeader is the header of the human-facing CSV report.
var ReportHeader = []string{"Date", "Time", "Type", "Amount", "Bank", "Merchant", "Category", "Mode"}

type exportRecord struct {
	ID            string      `json:"id"`
	Date          string      `json:"date"`
	Amount        json.Number `json:"amount"`
	Direction     string      `json:"direction"`
	Bank          string      `json:"bank"`
	Merchant      string      `json:"merchant"`
	PaymentMode   string      `json:"paymentMode"`
	Category      string      `json:"category"`
	CategoryIcon  string      `json:"categoryIcon"`
	CategoryColor string      `json:"categoryColor"`
	Raw           string      `json:"raw,omitempty"`
	Source        string      `json:"source"`
}

type exportDoc struct {
	ExportedAt   string         `json:"exportedAt"`
	Period       string         `json:"period,omitempty"`
	Count        int            `json:"count"`
	Transactions []exportRecord `json:"transactions"`
}

// ExportJSON writes records as an indented JSON backup document.
// period is an optional human label for the selection ("June 2025").
func ExportJSON(w io.Writer, records []model.Record, period string, now time.Time) error {
	doc := exportDoc{
		ExportedAt:   now.UTC().Format(time.RFC3339),
		Period:       period,
		Count:        len(records),
		Transactions: make([]exportRecord, 0, len(records)),
	}
	for _, r := range records {
		doc.Transactions = append(doc.Transactions, exportRecord{
			ID:            r.ID,
			Date:          r.Date.UTC().Format(dateFormat),
			Amount:        json.Number(r.Amount.StringFixed(2)),
			Direction:     string(r.Direction),
			Bank:          string(r.Bank),
			Merchant:      r.Merchant,
			PaymentMode:   string(r.PaymentMode),
			Category:      string(r.Category),
			CategoryIcon:  r.CategoryIcon,
			CategoryColor: r.CategoryColor,
			Raw:           r.Raw,
			Source:        string(r.Source),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

// ExportCSV writes records as a spreadsheet-friendly report. Unlike
// WriteRecords the output is not meant to be read back.
func ExportCSV(w io.Writer, records []model.Record) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ReportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range records {
		row := []string{
			r.Date.Format("02-01-2006"),
			r.Date.Format("15:04"),
			string(r.Direction),
			r.Amount.StringFixed(2),
			string(r.Bank),
			r.Merchant,
			string(r.Category),
			string(r.PaymentMode),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
