package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/susu3304/cajachica/internal/ledger"

	_ "modernc.org/sqlite"
)

// Store keeps the ledger in a local SQLite file. Amounts are stored as
// decimal strings.
type Store struct {
	db *sql.DB
}

func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// one writer; AddToTotal relies on it
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ReadTotal(ctx context.Context) (decimal.Decimal, error) {
	return readTotal(ctx, s.db)
}

func (s *Store) WriteTotal(ctx context.Context, total decimal.Decimal) error {
	return writeTotal(ctx, s.db, total)
}

// AddToTotal reads and writes inside one transaction on the single connection.
func (s *Store) AddToTotal(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	total, err := readTotal(ctx, tx)
	if err != nil {
		return decimal.Zero, err
	}
	total = total.Add(delta)
	if err := writeTotal(ctx, tx, total); err != nil {
		return decimal.Zero, err
	}
	if err := tx.Commit(); err != nil {
		return decimal.Zero, fmt.Errorf("commit: %w", err)
	}
	return total, nil
}

func (s *Store) AppendTransaction(ctx context.Context, tx ledger.Transaction) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO ledger_transactions (id, amount, description, created_at) VALUES (?, ?, ?, ?)",
		id, tx.Amount.String(), tx.Description, tx.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}
	return id, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, amount, description, created_at FROM ledger_transactions ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	txs := []ledger.Transaction{}
	for rows.Next() {
		var (
			tx        ledger.Transaction
			amount    string
			createdAt int64
		)
		if err := rows.Scan(&tx.ID, &amount, &tx.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if tx.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount of transaction %s: %w", tx.ID, err)
		}
		tx.CreatedAt = time.UnixMilli(createdAt)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func readTotal(ctx context.Context, q querier) (decimal.Decimal, error) {
	var total string
	err := q.QueryRowContext(ctx, "SELECT total FROM ledger_balance WHERE id = 1").Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("select total: %w", err)
	}
	return decimal.NewFromString(total)
}

func writeTotal(ctx context.Context, q querier, total decimal.Decimal) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO ledger_balance (id, total, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET total = excluded.total, updated_at = excluded.updated_at`,
		total.String(),
	)
	if err != nil {
		return fmt.Errorf("upsert total: %w", err)
	}
	return nil
}

var _ ledger.Store = (*Store)(nil)
