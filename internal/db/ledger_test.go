package db

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/susu3304/cajachica/internal/ledger"
)

// openTestDB connects to TEST_DATABASE_URL and empties the ledger tables.
func openTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := New(ctx, url)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(database.Close)

	if err := database.RunMigrations(ctx); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	if _, err := database.pool.Exec(ctx, "TRUNCATE ledger_balance, ledger_transactions"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return database
}

func TestLedgerStore(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	total, err := database.ReadTotal(ctx)
	if err != nil || !total.IsZero() {
		t.Fatalf("ReadTotal on empty table = %s, %v", total, err)
	}

	if err := database.WriteTotal(ctx, decimal.RequireFromString("100.25")); err != nil {
		t.Fatalf("WriteTotal: %v", err)
	}
	total, err = database.AddToTotal(ctx, decimal.RequireFromString("-0.25"))
	if err != nil {
		t.Fatalf("AddToTotal: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("total = %s, want 100", total)
	}

	created := time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)
	for _, d := range []string{"first", "second"} {
		if _, err := database.AppendTransaction(ctx, ledger.Transaction{
			CreatedAt:   created,
			Amount:      decimal.RequireFromString("-12.5"),
			Description: d,
		}); err != nil {
			t.Fatalf("AppendTransaction: %v", err)
		}
	}

	txs, err := database.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txs) != 2 || txs[0].Description != "first" || txs[1].Description != "second" {
		t.Fatalf("transactions = %+v", txs)
	}
	if !txs[0].Amount.Equal(decimal.RequireFromString("-12.5")) || !txs[0].CreatedAt.Equal(created) {
		t.Errorf("tx[0] = %+v", txs[0])
	}
}

func TestAddToTotalConcurrent(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := database.AddToTotal(ctx, decimal.NewFromInt(5)); err != nil {
				t.Errorf("AddToTotal: %v", err)
			}
		}()
	}
	wg.Wait()

	total, err := database.ReadTotal(ctx)
	if err != nil {
		t.Fatalf("ReadTotal: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("total = %s, want 100", total)
	}
}
