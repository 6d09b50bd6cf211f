package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arjunmahishi/sms-ledger/internal/common"
	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/arjunmahishi/sms-ledger/internal/service"
)

// EnqueueReview parks a transaction for manual review instead of the
// ledger.
func (s *SQLiteStorage) EnqueueReview(ctx context.Context, txn *model.Transaction, reason string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}
	if err := validateString(reason, "reason"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO review_queue (reason, `+transactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reason, txn.Fingerprint, txn.Reference, txn.Sender, txn.Body,
		txn.SignedAmount, string(txn.Direction), txn.Counterparty,
		txn.Category, txn.ObservedAt)
	if err != nil {
		return fmt.Errorf("failed to enqueue review: %w", err)
	}
	return nil
}

// PendingReviews returns unresolved review items, oldest first.
func (s *SQLiteStorage) PendingReviews(ctx context.Context) ([]service.ReviewItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, reason, `+transactionColumns+` FROM review_queue
		WHERE resolved = 0
		ORDER BY observed_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []service.ReviewItem
	for rows.Next() {
		var item service.ReviewItem
		var direction string
		txn := &item.Transaction
		err := rows.Scan(&item.ID, &item.Reason,
			&txn.Fingerprint, &txn.Reference, &txn.Sender, &txn.Body,
			&txn.SignedAmount, &direction, &txn.Counterparty, &txn.Category,
			&txn.ObservedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review item: %w", err)
		}
		txn.Direction = model.Direction(direction)
		items = append(items, item)
	}
	return items, rows.Err()
}

// ResolveReview moves a pending item into the ledger. Non-empty
// counterparty and category override the extracted values. Returns
// common.ErrNotFound when the id does not name a pending item.
func (s *SQLiteStorage) ResolveReview(ctx context.Context, id int64, counterparty, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		SELECT `+transactionColumns+` FROM review_queue
		WHERE id = ? AND resolved = 0`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: pending review %d", common.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to load review item: %w", err)
	}

	if counterparty != "" {
		txn.Counterparty = counterparty
	}
	if category != "" {
		txn.Category = category
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions (`+transactionColumns+`, body_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.Fingerprint, txn.Reference, txn.Sender, txn.Body,
		txn.SignedAmount, string(txn.Direction), txn.Counterparty,
		txn.Category, txn.ObservedAt, txn.BodyHash())
	if err != nil {
		return fmt.Errorf("failed to move review into ledger: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE review_queue SET resolved = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to mark review resolved: %w", err)
	}

	return tx.Commit()
}
