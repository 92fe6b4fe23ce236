package ledger

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/cleared-dev/smsledger/internal/model"
)

// transactionsFile is the file name of the CSV ledger inside its directory.
const transactionsFile = "transactions.csv"

// CSVStore keeps every record in a single transactions.csv file.
// It is meant for one writer at a time.
type CSVStore struct {
	dir    string
	logger *slog.Logger
}

// NewCSVStore creates a CSVStore rooted at dir. The file is created lazily.
func NewCSVStore(dir string, logger *slog.Logger) *CSVStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVStore{dir: dir, logger: logger}
}

// Path returns the location of transactions.csv.
func (s *CSVStore) Path() string {
	return filepath.Join(s.dir, transactionsFile)
}

// Insert validates rec and appends it, or rewrites the file when a record
// with the same ID already exists.
func (s *CSVStore) Insert(_ context.Context, rec model.Record) error {
	if err := checkRecord(rec); err != nil {
		return err
	}

	existing, err := s.readAll()
	if err != nil {
		return err
	}
	for i, r := range existing {
		if r.ID == rec.ID {
			existing[i] = rec
			s.logger.Debug("replacing transaction", "id", rec.ID)
			return s.rewrite(existing)
		}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(s.Path()); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendRecords(f, []model.Record{rec}); err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}

	s.logger.Debug("inserted transaction", "id", rec.ID, "amount", rec.Amount.StringFixed(2))
	return nil
}

// Get returns the record with the given ID.
func (s *CSVStore) Get(_ context.Context, id string) (model.Record, error) {
	records, err := s.readAll()
	if err != nil {
		return model.Record{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Record{}, fmt.Errorf("%s: %w", id, ErrNotFound)
}

// List returns all records, newest first.
func (s *CSVStore) List(_ context.Context) ([]model.Record, error) {
	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	sortNewestFirst(records)
	return records, nil
}

// Delete removes the record with the given ID.
func (s *CSVStore) Delete(_ context.Context, id string) error {
	records, err := s.readAll()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	s.logger.Debug("deleting transaction", "id", id)
	return s.rewrite(kept)
}

// UpdateCategory recategorises a record.
func (s *CSVStore) UpdateCategory(_ context.Context, id string, cat model.Category) error {
	records, err := s.readAll()
	if err != nil {
		return err
	}
	for i, r := range records {
		if r.ID != id {
			continue
		}
		updated := withCategory(r, cat)
		if err := checkRecord(updated); err != nil {
			return err
		}
		records[i] = updated
		return s.rewrite(records)
	}
	return fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Clear removes every record.
func (s *CSVStore) Clear(_ context.Context) error {
	err := os.Remove(s.Path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing ledger: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *CSVStore) Count(_ context.Context) (int, error) {
	records, err := s.readAll()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Close is a no-op; the file is opened per operation.
func (s *CSVStore) Close() error { return nil }

func (s *CSVStore) readAll() ([]model.Record, error) {
	f, err := os.Open(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.Path(), err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", s.Path(), err)
	}
	return records, nil
}

// rewrite replaces the ledger file via a temp file and rename.
func (s *CSVStore) rewrite(records []model.Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, transactionsFile+".*")
	if err != nil {
		return fmt.Errorf("creating temp ledger: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteRecords(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}

func sortNewestFirst(records []model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}
