package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/susu3304/cajachica/internal/events"
	applog "github.com/susu3304/cajachica/internal/log"
)

const (
	DefaultDescription = "(Sin descripción)"
	ResetDescription   = "(Reset)"
	DepositDescription = "(Abono)"
)

// Transaction is one balance-affecting event. ID is assigned by the store.
type Transaction struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Store persists the running total and the append-only transaction log.
type Store interface {
	// ReadTotal returns zero when no total has been written yet.
	ReadTotal(ctx context.Context) (decimal.Decimal, error)
	WriteTotal(ctx context.Context, total decimal.Decimal) error
	// AddToTotal atomically adds delta to the total and returns the new value.
	AddToTotal(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error)
	AppendTransaction(ctx context.Context, tx Transaction) (string, error)
	// ListTransactions returns the log in insertion order.
	ListTransactions(ctx context.Context) ([]Transaction, error)
}

// Ledger implements the balance mutations the bot offers on top of a Store.
type Ledger struct {
	store     Store
	publisher events.Publisher
	log       *applog.Logger
	now       func() time.Time
}

func New(store Store, publisher events.Publisher, logger *applog.Logger) *Ledger {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Ledger{
		store:     store,
		publisher: publisher,
		log:       logger.WithComponent(applog.ComponentLedger),
		now:       time.Now,
	}
}

func (l *Ledger) Total(ctx context.Context) (decimal.Decimal, error) {
	total, err := l.store.ReadTotal(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("read total: %w", err)
	}
	return total, nil
}

// Reset records the reset in the log and then replaces the total, so a failed
// append leaves the balance untouched.
func (l *Ledger) Reset(ctx context.Context, total decimal.Decimal) error {
	if _, err := l.record(ctx, total, ResetDescription); err != nil {
		return err
	}
	if err := l.store.WriteTotal(ctx, total); err != nil {
		return fmt.Errorf("write total: %w", err)
	}
	l.log.InfoContext(ctx, "ledger reset", applog.FieldTotal, total.String())
	return nil
}

// Deposit records the deposit first and then bumps the total.
func (l *Ledger) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if _, err := l.record(ctx, amount, DepositDescription); err != nil {
		return decimal.Zero, err
	}
	total, err := l.store.AddToTotal(ctx, amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("add to total: %w", err)
	}
	return total, nil
}

// Withdraw lowers the total. The matching transaction is written later by
// RecordExpense, once the description is known.
func (l *Ledger) Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	total, err := l.store.AddToTotal(ctx, amount.Neg())
	if err != nil {
		return decimal.Zero, fmt.Errorf("add to total: %w", err)
	}
	return total, nil
}

func (l *Ledger) RecordExpense(ctx context.Context, amount decimal.Decimal, description string) (Transaction, error) {
	return l.record(ctx, amount.Neg(), description)
}

// Transactions never returns a nil slice.
func (l *Ledger) Transactions(ctx context.Context) ([]Transaction, error) {
	txs, err := l.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if txs == nil {
		txs = []Transaction{}
	}
	return txs, nil
}

func (l *Ledger) record(ctx context.Context, amount decimal.Decimal, description string) (Transaction, error) {
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}
	tx := Transaction{
		CreatedAt:   l.now(),
		Amount:      amount,
		Description: description,
	}
	id, err := l.store.AppendTransaction(ctx, tx)
	if err != nil {
		return Transaction{}, fmt.Errorf("append transaction: %w", err)
	}
	tx.ID = id

	event := events.TransactionRecorded{
		ID:          tx.ID,
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
	if err := l.publisher.Publish(ctx, event); err != nil {
		l.log.WarnContext(ctx, "failed to publish transaction event",
			applog.FieldTransaction, tx.ID,
			applog.FieldError, err)
	}
	return tx, nil
}
