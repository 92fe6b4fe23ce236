package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/cleared-dev/smsledger/internal/model"
)

const schemaVersion = 1

// Indexes mirror the query paths: by date, by direction, by category.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	id             TEXT PRIMARY KEY,
	date           TEXT NOT NULL,
	amount         TEXT NOT NULL,
	direction      TEXT NOT NULL,
	bank           TEXT NOT NULL,
	merchant       TEXT NOT NULL DEFAULT '',
	payment_mode   TEXT NOT NULL,
	category       TEXT NOT NULL,
	category_icon  TEXT NOT NULL DEFAULT '',
	category_color TEXT NOT NULL DEFAULT '',
	raw            TEXT NOT NULL DEFAULT '',
	source         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_direction ON transactions(direction);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category);
`

const selectColumns = `id, date, amount, direction, bank, merchant, payment_mode,
	category, category_icon, category_color, raw, source`

// SQLiteStore keeps records in a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	ver, err := currentSchemaVersion(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("check schema version: %w", err)
	}

	if ver < schemaVersion {
		if err := createSchema(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
		logger.Info("initialised ledger database", "path", path, "schema_version", schemaVersion)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// currentSchemaVersion returns 0 for a fresh database.
func currentSchemaVersion(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_meta'
	`).Scan(&count)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	var ver int
	err = db.QueryRow("SELECT version FROM schema_meta LIMIT 1").Scan(&ver)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return ver, err
}

func createSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaV1); err != nil {
		return fmt.Errorf("create v1 schema: %w", err)
	}
	if _, err := db.Exec("DELETE FROM schema_meta"); err != nil {
		return fmt.Errorf("reset schema version: %w", err)
	}
	if _, err := db.Exec("INSERT INTO schema_meta (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("insert schema version: %w", err)
	}
	return nil
}

// Insert validates rec and upserts it.
func (s *SQLiteStore) Insert(ctx context.Context, rec model.Record) error {
	if err := checkRecord(rec); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO transactions (`+selectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.Date.UTC().Format(dateFormat),
		rec.Amount.StringFixed(2),
		string(rec.Direction),
		string(rec.Bank),
		rec.Merchant,
		string(rec.PaymentMode),
		string(rec.Category),
		rec.CategoryIcon,
		rec.CategoryColor,
		rec.Raw,
		string(rec.Source),
	)
	if err != nil {
		return fmt.Errorf("insert transaction %s: %w", rec.ID, err)
	}

	s.logger.Debug("inserted transaction", "id", rec.ID, "amount", rec.Amount.StringFixed(2))
	return nil
}

// Get returns the record with the given ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (model.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM transactions WHERE id = ?", id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Record{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Record{}, fmt.Errorf("get transaction %s: %w", id, err)
	}
	return rec, nil
}

// List returns all records, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+selectColumns+" FROM transactions ORDER BY date DESC, rowid ASC")
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete removes the record with the given ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	s.logger.Debug("deleted transaction", "id", id)
	return nil
}

// UpdateCategory recategorises a record.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, id string, cat model.Category) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	updated := withCategory(rec, cat)
	if err := checkRecord(updated); err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE transactions SET category = ?, category_icon = ?, category_color = ?
		WHERE id = ?
	`, string(updated.Category), updated.CategoryIcon, updated.CategoryColor, id)
	if err != nil {
		return fmt.Errorf("update category of %s: %w", id, err)
	}
	return nil
}

// Clear removes every record.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (model.Record, error) {
	var (
		rec                                     model.Record
		date, amount                            string
		direction, bank, mode, category, source string
	)
	err := row.Scan(
		&rec.ID, &date, &amount, &direction, &bank, &rec.Merchant, &mode,
		&category, &rec.CategoryIcon, &rec.CategoryColor, &rec.Raw, &source,
	)
	if err != nil {
		return model.Record{}, err
	}

	rec.Date, err = time.Parse(dateFormat, date)
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	rec.Date = rec.Date.UTC()
	rec.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	rec.Direction = model.Direction(direction)
	rec.Bank = model.Bank(bank)
	rec.PaymentMode = model.PaymentMode(mode)
	rec.Category = model.Category(category)
	rec.Source = model.Source(source)
	return rec, nil
}
