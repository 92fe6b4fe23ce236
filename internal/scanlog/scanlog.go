// Package scanlog keeps an append-only CSV audit trail of scan and save
// attempts, one row per attempt.
package scanlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/smsledger/internal/model"
)

// Outcome is what happened to one attempt.
type Outcome string

const (
	OutcomeParsed   Outcome = "parsed"
	OutcomeNoAmount Outcome = "no_amount"
	OutcomeSaved    Outcome = "saved"
	OutcomeRejected Outcome = "rejected"
)

// Entry is one row in the scan log.
type Entry struct {
	Timestamp time.Time
	Source    model.Source
	Outcome   Outcome
	RecordID  string
	Amount    decimal.Decimal // zero when nothing was extracted
	Details   string
}

// Header is the CSV header for scan-log.csv.
const Header = "timestamp,source,outcome,record_id,amount,details"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "scan-log.csv"
	colTimestamp = 0
	colSource    = 1
	colOutcome   = 2
	colRecordID  = 3
	colAmount    = 4
	colDetails   = 5
)

// Path returns the scan log location under root.
func Path(root string) string {
	return filepath.Join(root, logDir, logFile)
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.UTC().Format(time.RFC3339)
	row[colSource] = string(e.Source)
	row[colOutcome] = string(e.Outcome)
	row[colRecordID] = e.RecordID
	if !e.Amount.IsZero() {
		row[colAmount] = e.Amount.StringFixed(2)
	}
	// Raw SMS text can span lines; keep one physical line per row.
	row[colDetails] = strings.Join(strings.Fields(e.Details), " ")
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(row []string) (Entry, error) {
	if len(row) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	ts, err := time.Parse(time.RFC3339, row[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", row[colTimestamp], err)
	}

	amount := decimal.Zero
	if row[colAmount] != "" {
		amount, err = decimal.NewFromString(row[colAmount])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing amount %q: %w", row[colAmount], err)
		}
	}

	return Entry{
		Timestamp: ts,
		Source:    model.Source(row[colSource]),
		Outcome:   Outcome(row[colOutcome]),
		RecordID:  row[colRecordID],
		Amount:    amount,
		Details:   row[colDetails],
	}, nil
}

// Append writes entries to <root>/logs/scan-log.csv, creating the file and header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := Path(root)
	needsHeader := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening scan log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <root>/logs/scan-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(Path(root))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening scan log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading scan log CSV: %w", err)
	}

	if len(rows) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, row := range rows[1:] {
		e, err := UnmarshalEntry(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
