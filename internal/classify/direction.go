package classify

import (
	"github.com/arjunmahishi/sms-ledger/internal/common"
	"github.com/arjunmahishi/sms-ledger/internal/model"
)

// Direction decides debit vs credit from the body's vocabulary. Any debit
// word forces a debit, so dual-mention messages resolve to the sender's
// perspective; everything else is a credit.
func Direction(body string) model.Direction {
	if common.ContainsAnyWord(body, debitWords...) {
		return model.DirectionDebit
	}
	return model.DirectionCredit
}

// Sign applies the direction to a positive magnitude: debits are negative.
func Sign(magnitude float64, direction model.Direction) float64 {
	if direction == model.DirectionDebit {
		return -magnitude
	}
	return magnitude
}
