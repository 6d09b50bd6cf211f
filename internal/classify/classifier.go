// Package classify decides whether a message describes a monetary
// transaction. The decision procedure is a strictly ordered cascade of
// named rules; the first rule to produce a verdict wins, which keeps
// precedence auditable and each rule independently testable.
package classify

import (
	"github.com/arjunmahishi/sms-ledger/internal/amount"
	"github.com/arjunmahishi/sms-ledger/internal/common"
	"github.com/arjunmahishi/sms-ledger/internal/dedup"
	"github.com/arjunmahishi/sms-ledger/internal/merchant"
	"github.com/arjunmahishi/sms-ledger/internal/model"
)

// Input carries the pre-computed facts a classification needs.
type Input struct {
	Body          string
	TrustedSender bool
	BankSender    bool
}

// messageContext caches the signals shared across rules so each is
// computed once per message.
type messageContext struct {
	Input
	hasAmount     bool
	hasDebit      bool
	hasCredit     bool
	hasReference  bool
	knownMerchant bool
	lakhsCrores   bool
}

// rule is one step of the cascade: a named predicate that may decide the
// verdict or pass.
type rule struct {
	name string
	eval func(*messageContext) (model.Verdict, bool)
}

// Classifier evaluates the fixed rule sequence. It holds no mutable state
// and is safe for concurrent use.
type Classifier struct {
	rules []rule
}

// NewClassifier creates the classifier with its canonical rule order:
// OTP, promotional, balance-only, credit-only, positive signals.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{name: "otp", eval: otpRule},
			{name: "promotional", eval: promotionalRule},
			{name: "balance-only", eval: balanceOnlyRule},
			{name: "credit-only", eval: creditOnlyRule},
			{name: "positive-signals", eval: positiveSignalsRule},
		},
	}
}

// Classify runs the cascade. Messages that trip no rule at all are
// rejected as carrying no signal.
func (c *Classifier) Classify(in Input) model.Verdict {
	ctx := newMessageContext(in)
	for _, r := range c.rules {
		if verdict, ok := r.eval(ctx); ok {
			return verdict
		}
	}
	return model.VerdictRejectedNoSignal
}

func newMessageContext(in Input) *messageContext {
	body := in.Body
	return &messageContext{
		Input:         in,
		hasAmount:     amount.HasAmountToken(body),
		hasDebit:      common.ContainsAnyWord(body, debitWords...),
		hasCredit:     common.ContainsAnyWord(body, creditWords...),
		hasReference:  dedup.ExtractReference(body) != "",
		knownMerchant: merchant.IsKnown(body),
		lakhsCrores:   amount.InLakhsOrCrores(body),
	}
}

// otpRule rejects verification messages: strong phrases, numeric-code
// shapes, or the broader login/2FA vocabulary.
func otpRule(ctx *messageContext) (model.Verdict, bool) {
	if common.ContainsAnyWord(ctx.Body, otpStrongWords...) {
		return model.VerdictRejectedOTP, true
	}
	for _, re := range otpCodePatterns {
		if re.MatchString(ctx.Body) {
			return model.VerdictRejectedOTP, true
		}
	}
	if common.ContainsAnyWord(ctx.Body, otpBroadWords...) {
		return model.VerdictRejectedOTP, true
	}
	return "", false
}

// promotionalRule rejects marketing copy: direct keyword hits, marketing
// URLs, compound invitation signals, and loan-offer variants.
func promotionalRule(ctx *messageContext) (model.Verdict, bool) {
	if common.ContainsAny(ctx.Body, promoWords...) {
		return model.VerdictRejectedPromotional, true
	}
	if common.ContainsAny(ctx.Body, promoURLFragments...) {
		return model.VerdictRejectedPromotional, true
	}

	// "we invite you" plus a percentage or amount range reads as
	// marketing even without a conclusive keyword.
	if common.ContainsAny(ctx.Body, invitePhrases...) &&
		(percentPattern.MatchString(ctx.Body) || amountRangeRe.MatchString(ctx.Body)) {
		return model.VerdictRejectedPromotional, true
	}

	// Loan offers: loan vocabulary plus lakhs/crores money or an
	// apply-now nudge.
	if common.ContainsAny(ctx.Body, loanOfferWords...) &&
		(ctx.lakhsCrores || common.ContainsAny(ctx.Body, applyWords...)) {
		return model.VerdictRejectedPromotional, true
	}

	return "", false
}

// balanceOnlyRule rejects informational balance statements that carry no
// debit evidence and no transactional amount phrasing.
func balanceOnlyRule(ctx *messageContext) (model.Verdict, bool) {
	if !common.ContainsAny(ctx.Body, balanceMentions...) {
		return "", false
	}
	if ctx.hasDebit || ctx.hasCredit {
		return "", false
	}
	return model.VerdictRejectedBalanceOnly, true
}

// creditOnlyRule rejects pure inbound credits. Dual-mention messages,
// where the sender's account is debited and the recipient is reported as
// credited in the same text, fall through and classify as debits.
func creditOnlyRule(ctx *messageContext) (model.Verdict, bool) {
	if !ctx.hasCredit {
		return "", false
	}
	if ctx.hasDebit {
		return "", false // dual mention: debit wins
	}
	return model.VerdictRejectedCreditOnly, true
}

// positiveSignalsRule accepts when any positive combination holds,
// finishing with the weak trusted-bank-sender fallback.
func positiveSignalsRule(ctx *messageContext) (model.Verdict, bool) {
	switch {
	case ctx.hasDebit && ctx.hasAmount:
		return model.VerdictAccepted, true
	case ctx.hasReference && ctx.hasAmount:
		return model.VerdictAccepted, true
	case merchantPreposition.MatchString(ctx.Body) && ctx.hasAmount:
		return model.VerdictAccepted, true
	case ctx.knownMerchant && (ctx.hasAmount || ctx.hasReference):
		return model.VerdictAccepted, true
	case common.ContainsAnyWord(ctx.Body, cardUsagePhrases...) && ctx.hasAmount:
		return model.VerdictAccepted, true
	}

	// Weak fallback: a trusted bank sender quoting a plausible amount,
	// unless the figure is in lakhs/crores, which smells like an offer.
	if ctx.BankSender && ctx.hasAmount && !ctx.lakhsCrores {
		if _, ok := amount.Extract(ctx.Body); ok {
			return model.VerdictAccepted, true
		}
	}

	return "", false
}
