package model

import (
	"crypto/sha256"
	"fmt"
	"math"
	"time"
)

// Direction indicates whether money left or entered the account.
type Direction string

const (
	// DirectionDebit means money left the account.
	DirectionDebit Direction = "DEBIT"
	// DirectionCredit means money entered the account.
	DirectionCredit Direction = "CREDIT"
)

// Transaction is the structured record extracted from an accepted message.
// SignedAmount is negative iff Direction is DirectionDebit; the magnitude is
// always the positive parsed amount. Immutable once produced; ownership
// passes to the storage collaborator.
type Transaction struct {
	ObservedAt   time.Time
	Counterparty string
	Category     string
	Fingerprint  string
	Reference    string // explicit reference number, empty when synthesized
	Sender       string
	Body         string
	SignedAmount float64
	Direction    Direction
}

// Amount returns the positive magnitude of the transaction.
func (t *Transaction) Amount() float64 {
	return math.Abs(t.SignedAmount)
}

// BodyHash returns a stable hash of the raw message body, used by the
// persisted duplicate check for byte-identical resends.
func (t *Transaction) BodyHash() string {
	sum := sha256.Sum256([]byte(t.Body))
	return fmt.Sprintf("%x", sum)
}
