package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/common"
	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/arjunmahishi/sms-ledger/internal/service"
)

const transactionColumns = `fingerprint, reference, sender, body, amount, direction, counterparty, category, observed_at`

// SaveTransaction persists one extracted transaction.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (`+transactionColumns+`, body_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.Fingerprint, txn.Reference, txn.Sender, txn.Body,
		txn.SignedAmount, string(txn.Direction), txn.Counterparty,
		txn.Category, txn.ObservedAt, txn.BodyHash())
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// GetTransactions returns transactions matching the filter, newest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var conditions []string
	var args []any

	if filter.StartDate != nil {
		conditions = append(conditions, "observed_at >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "observed_at <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Direction != "" {
		conditions = append(conditions, "direction = ?")
		args = append(args, string(filter.Direction))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY observed_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	return s.queryTransactions(ctx, query, args...)
}

// GetTransactionsSince returns all transactions observed at or after the
// given time, newest first.
func (s *SQLiteStorage) GetTransactionsSince(ctx context.Context, since time.Time) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryTransactions(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE observed_at >= ?
		ORDER BY observed_at DESC`, since)
}

// GetTransactionByFingerprint returns the most recent transaction with the
// given fingerprint, or common.ErrNotFound.
func (s *SQLiteStorage) GetTransactionByFingerprint(ctx context.Context, fingerprint string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(fingerprint, "fingerprint"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE fingerprint = ?
		ORDER BY observed_at DESC
		LIMIT 1`, fingerprint)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: fingerprint %s", common.ErrNotFound, fingerprint)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// CategorySummary aggregates debit spend per category over the period.
// Totals are positive magnitudes; credits are excluded.
func (s *SQLiteStorage) CategorySummary(ctx context.Context, start, end time.Time) (map[string]service.CategoryTotals, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %v is before %v", ErrInvalidDateRange, end, start)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*), SUM(-amount)
		FROM transactions
		WHERE direction = ? AND observed_at >= ? AND observed_at <= ?
		GROUP BY category`,
		string(model.DirectionDebit), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summary := make(map[string]service.CategoryTotals)
	for rows.Next() {
		var name string
		var totals service.CategoryTotals
		if err := rows.Scan(&name, &totals.Count, &totals.Total); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		summary[name] = totals
	}
	return summary, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var txn model.Transaction
	var direction string
	err := row.Scan(&txn.Fingerprint, &txn.Reference, &txn.Sender, &txn.Body,
		&txn.SignedAmount, &direction, &txn.Counterparty, &txn.Category,
		&txn.ObservedAt)
	if err != nil {
		return nil, err
	}
	txn.Direction = model.Direction(direction)
	return &txn, nil
}

func (s *SQLiteStorage) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	return transactions, rows.Err()
}
