// Package ledger stores transaction records and answers read-only
// aggregate queries over them.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cleared-dev/smsledger/internal/model"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("transaction not found")

// Store persists transaction records keyed by ID.
type Store interface {
	// Insert adds rec, replacing any record with the same ID.
	Insert(ctx context.Context, rec model.Record) error
	Get(ctx context.Context, id string) (model.Record, error)
	// List returns all records, newest first.
	List(ctx context.Context) ([]model.Record, error)
	Delete(ctx context.Context, id string) error
	UpdateCategory(ctx context.Context, id string, cat model.Category) error
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendCSV    Backend = "csv"
	BackendSQLite Backend = "sqlite"
)

// Options selects and configures a Store.
type Options struct {
	Backend Backend
	// Dir holds transactions.csv for the CSV backend.
	Dir string
	// SQLitePath is the database file for the SQLite backend.
	SQLitePath string
}

// Open returns the Store described by opts.
func Open(opts Options, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch opts.Backend {
	case BackendCSV, "":
		return NewCSVStore(opts.Dir, logger.With("store", "csv")), nil
	case BackendSQLite:
		return OpenSQLite(opts.SQLitePath, logger.With("store", "sqlite"))
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", opts.Backend)
	}
}

// withCategory returns rec recategorised, keeping the style columns in step.
func withCategory(rec model.Record, cat model.Category) model.Record {
	style := cat.Style()
	rec.Category = cat
	rec.CategoryIcon = style.Icon
	rec.CategoryColor = style.Color
	return rec
}
