package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/arjunmahishi/sms-ledger/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDuplicate_ReferenceDominance(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	stored := testutil.Transaction("UTR445566", baseTime)
	stored.Reference = "UTR445566"
	require.NoError(t, store.SaveTransaction(ctx, stored))

	t.Run("equal references match regardless of body", func(t *testing.T) {
		incoming := testutil.Transaction("UTR445566", baseTime.Add(90*time.Second))
		incoming.Reference = "UTR445566"
		incoming.Body = "completely different wording, same transaction"
		incoming.Sender = "AD-ICICIB"

		match, err := store.FindDuplicate(ctx, incoming)
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "reference", match.Rule)
		assert.Equal(t, "UTR445566", match.Existing.Reference)
	})

	t.Run("different references never match", func(t *testing.T) {
		// Identical body, seconds apart: the distinct reference wins.
		incoming := testutil.Transaction("UTR990011", baseTime.Add(10*time.Second))
		incoming.Reference = "UTR990011"
		incoming.Body = stored.Body

		match, err := store.FindDuplicate(ctx, incoming)
		require.NoError(t, err)
		assert.Nil(t, match)
	})
}

func TestFindDuplicate_IdenticalBody(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	stored := testutil.Transaction("FP-1", baseTime)
	require.NoError(t, store.SaveTransaction(ctx, stored))

	t.Run("same body inside two minutes", func(t *testing.T) {
		incoming := testutil.Transaction("FP-2", baseTime.Add(time.Minute))
		match, err := store.FindDuplicate(ctx, incoming)
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "identical-body", match.Rule)
	})

	t.Run("same body past two minutes", func(t *testing.T) {
		incoming := testutil.Transaction("FP-3", baseTime.Add(3*time.Minute))
		match, err := store.FindDuplicate(ctx, incoming)
		require.NoError(t, err)
		assert.Nil(t, match)
	})
}

func TestFindDuplicate_NearMatch(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	stored := testutil.Transaction("FP-A", baseTime)
	require.NoError(t, store.SaveTransaction(ctx, stored))

	base := func(at time.Time) *model.Transaction {
		txn := testutil.Transaction("FP-B", at)
		txn.Body = "different wording of the same debit"
		return txn
	}

	t.Run("same sender amount and counterparty within thirty seconds", func(t *testing.T) {
		incoming := base(baseTime.Add(20 * time.Second))
		incoming.SignedAmount = stored.SignedAmount + 0.005 // inside tolerance

		match, err := store.FindDuplicate(ctx, incoming)
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "near-match", match.Rule)
	})

	t.Run("outside thirty seconds", func(t *testing.T) {
		incoming := base(baseTime.Add(45 * time.Second))
		match, err := store.FindDuplicate(ctx, incoming)
		require.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("amount differs beyond tolerance", func(t *testing.T) {
		incoming := base(baseTime.Add(10 * time.Second))
		incoming.SignedAmount = stored.SignedAmount - 5

		match, err := store.FindDuplicate(ctx, incoming)
		require.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("different counterparty", func(t *testing.T) {
		incoming := base(baseTime.Add(10 * time.Second))
		incoming.Counterparty = "Flipkart"

		match, err := store.FindDuplicate(ctx, incoming)
		require.NoError(t, err)
		assert.Nil(t, match)
	})
}

func TestFindDuplicate_ManualEntriesExempt(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	stored := testutil.Transaction("FP-M1", baseTime)
	stored.Sender = model.ManualEntrySender
	require.NoError(t, store.SaveTransaction(ctx, stored))

	incoming := testutil.Transaction("FP-M2", baseTime.Add(5*time.Second))
	incoming.Sender = model.ManualEntrySender

	match, err := store.FindDuplicate(ctx, incoming)
	require.NoError(t, err)
	assert.Nil(t, match)
}
