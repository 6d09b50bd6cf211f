package storage

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/arjunmahishi/sms-ledger/internal/service"
)

// Matching windows for the persisted duplicate check. These are tighter
// than the in-memory cache window: the cache catches carrier redeliveries,
// while these rules catch the same transaction reported twice, e.g. by a
// bank and a payment app.
const (
	identicalBodyWindow = 2 * time.Minute
	nearMatchWindow     = 30 * time.Second
	amountTolerance     = 0.01
)

// FindDuplicate checks the incoming transaction against persisted history.
// It returns the matched transaction and the rule that matched, or nil
// when the transaction is new.
//
// Reference numbers dominate: two transactions carrying different explicit
// references are never duplicates, no matter how similar they look.
// Manual entries are exempt entirely.
func (s *SQLiteStorage) FindDuplicate(ctx context.Context, txn *model.Transaction) (*service.DuplicateMatch, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTransaction(txn); err != nil {
		return nil, err
	}
	if txn.Sender == model.ManualEntrySender {
		return nil, nil
	}

	candidates, err := s.duplicateCandidates(ctx, txn)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		existing := &candidates[i]
		gap := txn.ObservedAt.Sub(existing.ObservedAt)
		if gap < 0 {
			gap = -gap
		}

		if txn.Reference != "" && existing.Reference != "" {
			if txn.Reference == existing.Reference {
				return &service.DuplicateMatch{Existing: existing, Rule: "reference"}, nil
			}
			continue // distinct references: conclusively different
		}

		if existing.Body == txn.Body && gap <= identicalBodyWindow {
			return &service.DuplicateMatch{Existing: existing, Rule: "identical-body"}, nil
		}

		if txn.Reference == "" && existing.Reference == "" &&
			existing.Sender == txn.Sender &&
			existing.Counterparty == txn.Counterparty &&
			math.Abs(existing.SignedAmount-txn.SignedAmount) <= amountTolerance &&
			gap <= nearMatchWindow {
			return &service.DuplicateMatch{Existing: existing, Rule: "near-match"}, nil
		}
	}

	return nil, nil
}

// duplicateCandidates pulls the rows the duplicate rules could match: any
// row sharing the explicit reference, plus everything observed within the
// widest rule window.
func (s *SQLiteStorage) duplicateCandidates(ctx context.Context, txn *model.Transaction) ([]model.Transaction, error) {
	lo := txn.ObservedAt.Add(-identicalBodyWindow)
	hi := txn.ObservedAt.Add(identicalBodyWindow)

	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE (observed_at BETWEEN ? AND ?)`
	args := []any{lo, hi}

	if txn.Reference != "" {
		query += ` OR (reference != '' AND reference = ?)`
		args = append(args, txn.Reference)
	}
	query += ` ORDER BY observed_at DESC`

	candidates, err := s.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load duplicate candidates: %w", err)
	}
	return candidates, nil
}
