package firebase

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/shopspring/decimal"
	"github.com/susu3304/cajachica/internal/ledger"
	"google.golang.org/api/option"
)

const (
	totalPath        = "/cajachica"
	transactionsPath = "/transactions"
)

// totalNode is the document at /cajachica.
type totalNode struct {
	Total float64 `json:"total"`
}

// transactionNode is one child of /transactions. createdAt is epoch millis.
type transactionNode struct {
	CreatedAt   int64   `json:"createdAt"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Store keeps the ledger in a Firebase Realtime Database.
type Store struct {
	client *db.Client
}

// NewStore connects to the database at databaseURL. Without a credentials
// file the app falls back to Application Default Credentials.
func NewStore(ctx context.Context, databaseURL, credentialsFile string) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase database client: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) ReadTotal(ctx context.Context) (decimal.Decimal, error) {
	var node totalNode
	if err := s.client.NewRef(totalPath).Get(ctx, &node); err != nil {
		return decimal.Zero, fmt.Errorf("get %s: %w", totalPath, err)
	}
	return decimal.NewFromFloat(node.Total), nil
}

func (s *Store) WriteTotal(ctx context.Context, total decimal.Decimal) error {
	if err := s.client.NewRef(totalPath).Set(ctx, totalNode{Total: total.InexactFloat64()}); err != nil {
		return fmt.Errorf("set %s: %w", totalPath, err)
	}
	return nil
}

// AddToTotal runs a database transaction, so concurrent increments are not lost.
func (s *Store) AddToTotal(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
	var next decimal.Decimal
	err := s.client.NewRef(totalPath).Transaction(ctx, func(tn db.TransactionNode) (interface{}, error) {
		var node totalNode
		if err := tn.Unmarshal(&node); err != nil {
			return nil, err
		}
		next = decimal.NewFromFloat(node.Total).Add(delta)
		return totalNode{Total: next.InexactFloat64()}, nil
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("update %s: %w", totalPath, err)
	}
	return next, nil
}

func (s *Store) AppendTransaction(ctx context.Context, tx ledger.Transaction) (string, error) {
	ref, err := s.client.NewRef(transactionsPath).Push(ctx, toNode(tx))
	if err != nil {
		return "", fmt.Errorf("push %s: %w", transactionsPath, err)
	}
	return ref.Key, nil
}

// ListTransactions orders by push key, which is chronological.
func (s *Store) ListTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	nodes, err := s.client.NewRef(transactionsPath).OrderByKey().GetOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", transactionsPath, err)
	}

	txs := make([]ledger.Transaction, 0, len(nodes))
	for _, n := range nodes {
		var node transactionNode
		if err := n.Unmarshal(&node); err != nil {
			return nil, fmt.Errorf("decode transaction %s: %w", n.Key(), err)
		}
		txs = append(txs, fromNode(n.Key(), node))
	}
	return txs, nil
}

func toNode(tx ledger.Transaction) transactionNode {
	return transactionNode{
		CreatedAt:   tx.CreatedAt.UnixMilli(),
		Amount:      tx.Amount.InexactFloat64(),
		Description: tx.Description,
	}
}

func fromNode(key string, node transactionNode) ledger.Transaction {
	return ledger.Transaction{
		ID:          key,
		CreatedAt:   time.UnixMilli(node.CreatedAt),
		Amount:      decimal.NewFromFloat(node.Amount),
		Description: node.Description,
	}
}

var _ ledger.Store = (*Store)(nil)
