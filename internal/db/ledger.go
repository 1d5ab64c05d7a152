package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/susu3304/cajachica/internal/ledger"
)

// Amounts cross the wire as text so NUMERIC keeps its exact value.

func (db *DB) ReadTotal(ctx context.Context) (decimal.Decimal, error) {
	var total string
	err := db.pool.QueryRow(ctx, "SELECT total::text FROM ledger_balance WHERE id = 1").Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(total)
}

func (db *DB) WriteTotal(ctx context.Context, total decimal.Decimal) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO ledger_balance (id, total) VALUES (1, $1::numeric)
		ON CONFLICT (id) DO UPDATE SET total = EXCLUDED.total, updated_at = CURRENT_TIMESTAMP`,
		total.String(),
	)
	return err
}

// AddToTotal is a single upsert, so concurrent increments serialize on the row lock.
func (db *DB) AddToTotal(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
	var total string
	err := db.pool.QueryRow(ctx,
		`INSERT INTO ledger_balance (id, total) VALUES (1, $1::numeric)
		ON CONFLICT (id) DO UPDATE SET total = ledger_balance.total + EXCLUDED.total, updated_at = CURRENT_TIMESTAMP
		RETURNING total::text`,
		delta.String(),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(total)
}

func (db *DB) AppendTransaction(ctx context.Context, tx ledger.Transaction) (string, error) {
	id := uuid.NewString()
	_, err := db.pool.Exec(ctx,
		"INSERT INTO ledger_transactions (id, amount, description, created_at) VALUES ($1, $2::numeric, $3, $4)",
		id, tx.Amount.String(), tx.Description, tx.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (db *DB) ListTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	rows, err := db.pool.Query(ctx,
		"SELECT id, amount::text, description, created_at FROM ledger_transactions ORDER BY seq",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []ledger.Transaction{}
	for rows.Next() {
		var tx ledger.Transaction
		var amount string
		if err := rows.Scan(&tx.ID, &amount, &tx.Description, &tx.CreatedAt); err != nil {
			return nil, err
		}
		if tx.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount of transaction %s: %w", tx.ID, err)
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return txs, nil
}

var _ ledger.Store = (*DB)(nil)
