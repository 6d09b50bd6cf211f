package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/common"
	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/arjunmahishi/sms-ledger/internal/service"
	"github.com/arjunmahishi/sms-ledger/internal/storage"
	"github.com/arjunmahishi/sms-ledger/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 4, 12, 14, 30, 0, 0, time.UTC)

func TestSaveAndGetTransactions(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	first := testutil.Transaction("FP-0001", baseTime)
	second := testutil.Transaction("FP-0002", baseTime.Add(time.Hour))
	second.Counterparty = "Swiggy"
	second.Category = "Food"
	second.SignedAmount = -349.50

	require.NoError(t, store.SaveTransaction(ctx, first))
	require.NoError(t, store.SaveTransaction(ctx, second))

	got, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.Equal(t, "FP-0002", got[0].Fingerprint)
	assert.Equal(t, "Swiggy", got[0].Counterparty)
	assert.InDelta(t, -349.50, got[0].SignedAmount, 0.001)
	assert.Equal(t, model.DirectionDebit, got[0].Direction)
	assert.Equal(t, "FP-0001", got[1].Fingerprint)
}

func TestGetTransactions_Filters(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	food := testutil.Transaction("FP-FOOD", baseTime)
	food.Category = "Food"
	shopping := testutil.Transaction("FP-SHOP", baseTime.Add(2*time.Hour))
	credit := testutil.Transaction("FP-CRED", baseTime.Add(3*time.Hour))
	credit.Direction = model.DirectionCredit
	credit.SignedAmount = 1000

	for _, txn := range []*model.Transaction{food, shopping, credit} {
		require.NoError(t, store.SaveTransaction(ctx, txn))
	}

	t.Run("by category", func(t *testing.T) {
		got, err := store.GetTransactions(ctx, service.TransactionFilter{Category: "Food"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "FP-FOOD", got[0].Fingerprint)
	})

	t.Run("by direction", func(t *testing.T) {
		got, err := store.GetTransactions(ctx, service.TransactionFilter{Direction: model.DirectionCredit})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "FP-CRED", got[0].Fingerprint)
	})

	t.Run("by date range", func(t *testing.T) {
		start := baseTime.Add(time.Hour)
		got, err := store.GetTransactions(ctx, service.TransactionFilter{StartDate: &start})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("limit and offset", func(t *testing.T) {
		got, err := store.GetTransactions(ctx, service.TransactionFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "FP-SHOP", got[0].Fingerprint)
	})
}

func TestGetTransactionsSince(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	old := testutil.Transaction("FP-OLD", baseTime.Add(-48*time.Hour))
	recent := testutil.Transaction("FP-NEW", baseTime)
	require.NoError(t, store.SaveTransaction(ctx, old))
	require.NoError(t, store.SaveTransaction(ctx, recent))

	got, err := store.GetTransactionsSince(ctx, baseTime.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "FP-NEW", got[0].Fingerprint)
}

func TestGetTransactionByFingerprint(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	txn := testutil.Transaction("ICIC333456", baseTime)
	txn.Reference = "ICIC333456"
	require.NoError(t, store.SaveTransaction(ctx, txn))

	got, err := store.GetTransactionByFingerprint(ctx, "ICIC333456")
	require.NoError(t, err)
	assert.Equal(t, txn.Body, got.Body)
	assert.Equal(t, "ICIC333456", got.Reference)

	_, err = store.GetTransactionByFingerprint(ctx, "MISSING-FP")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCategorySummary(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	shop1 := testutil.Transaction("FP-S1", baseTime)
	shop2 := testutil.Transaction("FP-S2", baseTime.Add(time.Hour))
	shop2.SignedAmount = -400.50
	food := testutil.Transaction("FP-F1", baseTime.Add(2*time.Hour))
	food.Category = "Food"
	food.SignedAmount = -100
	refund := testutil.Transaction("FP-R1", baseTime.Add(3*time.Hour))
	refund.Direction = model.DirectionCredit
	refund.SignedAmount = 250

	for _, txn := range []*model.Transaction{shop1, shop2, food, refund} {
		require.NoError(t, store.SaveTransaction(ctx, txn))
	}

	summary, err := store.CategorySummary(ctx, baseTime.Add(-time.Hour), baseTime.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, 2, summary["Shopping"].Count)
	assert.InDelta(t, 2999.50, summary["Shopping"].Total, 0.001)
	assert.Equal(t, 1, summary["Food"].Count)
	assert.InDelta(t, 100, summary["Food"].Total, 0.001)

	_, err = store.CategorySummary(ctx, baseTime, baseTime.Add(-time.Hour))
	assert.ErrorIs(t, err, storage.ErrInvalidDateRange)
}

func TestSaveTransaction_Validation(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.Transaction)
	}{
		{name: "missing fingerprint", mutate: func(txn *model.Transaction) { txn.Fingerprint = "" }},
		{name: "missing sender", mutate: func(txn *model.Transaction) { txn.Sender = "" }},
		{name: "zero observation time", mutate: func(txn *model.Transaction) { txn.ObservedAt = time.Time{} }},
		{name: "debit with positive amount", mutate: func(txn *model.Transaction) { txn.SignedAmount = 100 }},
		{name: "unknown direction", mutate: func(txn *model.Transaction) { txn.Direction = "SIDEWAYS" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := testutil.Transaction("FP-BAD", baseTime)
			tt.mutate(txn)
			err := store.SaveTransaction(ctx, txn)
			assert.ErrorIs(t, err, storage.ErrInvalidTransaction)
		})
	}

	t.Run("nil transaction", func(t *testing.T) {
		assert.ErrorIs(t, store.SaveTransaction(ctx, nil), storage.ErrNilParameter)
	})
}
