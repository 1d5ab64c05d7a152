package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/susu3304/cajachica/internal/ledger"
)

// Store keeps the ledger in process memory. Contents are lost on restart.
type Store struct {
	mu           sync.Mutex
	total        decimal.Decimal
	transactions []ledger.Transaction
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ReadTotal(ctx context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total, nil
}

func (s *Store) WriteTotal(ctx context.Context, total decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total = total
	return nil
}

func (s *Store) AddToTotal(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total = s.total.Add(delta)
	return s.total, nil
}

func (s *Store) AppendTransaction(ctx context.Context, tx ledger.Transaction) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = uuid.NewString()
	s.transactions = append(s.transactions, tx)
	return tx.ID, nil
}

// ListTransactions returns a copy so callers can't modify internal state.
func (s *Store) ListTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]ledger.Transaction, len(s.transactions))
	copy(copied, s.transactions)
	return copied, nil
}

var _ ledger.Store = (*Store)(nil)
