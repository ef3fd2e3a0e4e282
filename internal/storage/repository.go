// Package storage provides the SQLite-backed expense store. It implements
// the same whole-collection load/save discipline as the flat-file store:
// Save replaces the table contents in one transaction, Load reads every row
// back in insertion order.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"spendtrack/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load implements store.Store.
func (r *SQLiteRepository) Load(ctx context.Context) (core.Collection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, amount_cents, category, description, date, created_at
		 FROM expenses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	col := core.Collection{}
	for rows.Next() {
		var (
			e         core.Expense
			date      string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.Amount.Cents, &e.Category, &e.Description, &date, &createdAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Date, err = core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("%w: expense %s has date %q", core.ErrCorruptData, e.ID, date)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: expense %s has created_at %q", core.ErrCorruptData, e.ID, createdAt)
		}
		if e.Amount.Cents < 0 {
			return nil, fmt.Errorf("%w: expense %s has negative amount", core.ErrCorruptData, e.ID)
		}
		col = append(col, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	slog.DebugContext(ctx, "Expenses loaded from SQLite", "count", len(col))
	return col, nil
}

// Save implements store.Store. The whole table is replaced in a single
// transaction, mirroring the atomic whole-file rewrite of the JSON store.
func (r *SQLiteRepository) Save(ctx context.Context, col core.Collection) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO expenses (id, amount_cents, category, description, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range col {
		_, err := stmt.ExecContext(ctx,
			e.ID, e.Amount.Cents, e.Category, e.Description,
			e.Date.String(), e.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("insert expense %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.DebugContext(ctx, "Expenses saved to SQLite", "count", len(col))
	return nil
}
