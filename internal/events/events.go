// Package events publishes ledger activity to an optional message broker so
// other systems can follow the petty-cash log.
package events

import (
	"context"
	"encoding/json"
	"time"
)

const TypeTransactionRecorded = "transaction.recorded"

// TransactionRecorded is emitted after a transaction is appended to the log.
type TransactionRecorded struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type envelope struct {
	Type       string              `json:"type"`
	OccurredAt time.Time           `json:"occurred_at"`
	Data       TransactionRecorded `json:"data"`
}

type Publisher interface {
	Publish(ctx context.Context, event TransactionRecorded) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, TransactionRecorded) error { return nil }
func (Nop) Close() error                                       { return nil }

func encode(event TransactionRecorded) ([]byte, error) {
	return json.Marshal(envelope{
		Type:       TypeTransactionRecorded,
		OccurredAt: event.CreatedAt,
		Data:       event,
	})
}
