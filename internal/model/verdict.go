package model

// Verdict indicates the outcome of classifying a single message.
// Exactly one verdict is produced per message.
type Verdict string

// Verdict constants.
const (
	// VerdictAccepted means the message describes a monetary transaction.
	VerdictAccepted Verdict = "ACCEPTED"
	// VerdictRejectedOTP means the message is a verification code.
	VerdictRejectedOTP Verdict = "REJECTED_OTP"
	// VerdictRejectedPromotional means the message is marketing copy.
	VerdictRejectedPromotional Verdict = "REJECTED_PROMOTIONAL"
	// VerdictRejectedBalanceOnly means the message only states a balance.
	VerdictRejectedBalanceOnly Verdict = "REJECTED_BALANCE_ONLY"
	// VerdictRejectedCreditOnly means the message reports an inbound credit
	// with no debit mention.
	VerdictRejectedCreditOnly Verdict = "REJECTED_CREDIT_ONLY"
	// VerdictRejectedUnknownSender means the sender is not a trusted
	// financial entity.
	VerdictRejectedUnknownSender Verdict = "REJECTED_UNKNOWN_SENDER"
	// VerdictRejectedNoSignal means no transactional signal was found.
	VerdictRejectedNoSignal Verdict = "REJECTED_NO_SIGNAL"
	// VerdictRejectedDuplicate means the fingerprint was seen recently and
	// the message was suppressed.
	VerdictRejectedDuplicate Verdict = "REJECTED_DUPLICATE"
)

// IsRejection reports whether the verdict discards the message.
func (v Verdict) IsRejection() bool {
	return v != VerdictAccepted
}
