// Package service defines the interfaces for the persistence layer.
package service

import (
	"context"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Direction model.Direction
	Limit     int
	Offset    int
}

// DuplicateMatch describes why a stored transaction was judged a
// duplicate of an incoming one.
type DuplicateMatch struct {
	Existing *model.Transaction
	Rule     string
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Transaction operations
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetTransactionsSince(ctx context.Context, since time.Time) ([]model.Transaction, error)
	GetTransactionByFingerprint(ctx context.Context, fingerprint string) (*model.Transaction, error)

	// Duplicate detection against persisted history
	FindDuplicate(ctx context.Context, txn *model.Transaction) (*DuplicateMatch, error)

	// Reporting
	CategorySummary(ctx context.Context, start, end time.Time) (map[string]CategoryTotals, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// CategoryTotals aggregates spend for one category over a period.
type CategoryTotals struct {
	Count int
	Total float64
}

// ReviewItem is a transaction parked for manual review.
type ReviewItem struct {
	Transaction model.Transaction
	Reason      string
	ID          int64
}

// ReviewQueue holds transactions whose extraction needs a human look
// before they enter the ledger.
type ReviewQueue interface {
	EnqueueReview(ctx context.Context, txn *model.Transaction, reason string) error
	PendingReviews(ctx context.Context) ([]ReviewItem, error)
	// ResolveReview moves a pending item into the ledger, overriding
	// counterparty and category when non-empty.
	ResolveReview(ctx context.Context, id int64, counterparty, category string) error
}
