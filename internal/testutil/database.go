// Package testutil provides shared helpers for tests that need a real
// database.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/arjunmahishi/sms-ledger/internal/storage"
)

// SetupTestDB creates a migrated in-memory SQLite store and registers its
// cleanup on t.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// Transaction builds a valid debit transaction for tests; callers override
// fields as needed.
func Transaction(fingerprint string, observedAt time.Time) *model.Transaction {
	return &model.Transaction{
		ObservedAt:   observedAt,
		Counterparty: "Amazon Retail",
		Category:     "Shopping",
		Fingerprint:  fingerprint,
		Sender:       "VM-HDFCBK",
		Body:         "Rs.2,599.00 debited for POS purchase at AMAZON RETAIL IN",
		SignedAmount: -2599.00,
		Direction:    model.DirectionDebit,
	}
}
