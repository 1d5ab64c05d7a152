package firebase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/susu3304/cajachica/internal/ledger"
)

func TestNodeConversionKeepsLayout(t *testing.T) {
	created := time.UnixMilli(1760529600123)
	tx := ledger.Transaction{
		CreatedAt:   created,
		Amount:      decimal.RequireFromString("-30.25"),
		Description: "taxi",
	}

	node := toNode(tx)
	if node.CreatedAt != 1760529600123 {
		t.Errorf("createdAt = %d, want epoch millis", node.CreatedAt)
	}
	if node.Amount != -30.25 {
		t.Errorf("amount = %v, want -30.25", node.Amount)
	}

	back := fromNode("-Nabc", node)
	if back.ID != "-Nabc" {
		t.Errorf("id = %q, want push key", back.ID)
	}
	if !back.CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want %v", back.CreatedAt, created)
	}
	if !back.Amount.Equal(tx.Amount) || back.Description != "taxi" {
		t.Errorf("round trip lost data: %+v", back)
	}
}
