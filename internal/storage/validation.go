// Package storage provides the SQLite persistence layer for extracted
// transactions.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arjunmahishi/sms-ledger/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidDateRange   = errors.New("start date must be before end date")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a single transaction before persistence.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Fingerprint == "" {
		return fmt.Errorf("%w: missing fingerprint", ErrInvalidTransaction)
	}
	if txn.Sender == "" {
		return fmt.Errorf("%w: missing sender", ErrInvalidTransaction)
	}
	if txn.ObservedAt.IsZero() {
		return fmt.Errorf("%w: missing observation time", ErrInvalidTransaction)
	}

	switch txn.Direction {
	case model.DirectionDebit:
		if txn.SignedAmount > 0 {
			return fmt.Errorf("%w: debit with positive amount", ErrInvalidTransaction)
		}
	case model.DirectionCredit:
		if txn.SignedAmount < 0 {
			return fmt.Errorf("%w: credit with negative amount", ErrInvalidTransaction)
		}
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidTransaction, txn.Direction)
	}

	return nil
}
