// Package engine runs the per-message pipeline: sender trust, content
// classification, amount and direction, fingerprinting, receive-time
// duplicate suppression, merchant extraction, and categorization.
package engine

import (
	"log/slog"
	"strings"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/amount"
	"github.com/arjunmahishi/sms-ledger/internal/category"
	"github.com/arjunmahishi/sms-ledger/internal/classify"
	"github.com/arjunmahishi/sms-ledger/internal/dedup"
	"github.com/arjunmahishi/sms-ledger/internal/merchant"
	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/arjunmahishi/sms-ledger/internal/sender"
)

// Engine evaluates one message at a time and is safe for concurrent use;
// the only mutable state is the duplicate cache, which locks internally.
type Engine struct {
	senders    *sender.Classifier
	classifier *classify.Classifier
	cache      *dedup.Cache
}

// Config holds configuration options for the engine.
type Config struct {
	// CacheWindow is how long a fingerprint suppresses repeats of the
	// same message. Non-positive falls back to the default.
	CacheWindow time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{CacheWindow: dedup.DefaultWindow}
}

// Result is the outcome of classifying one message. Transaction is set
// only when the verdict is accepted.
type Result struct {
	Transaction *model.Transaction
	Verdict     model.Verdict
}

// New creates an engine with the default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(config Config) *Engine {
	return &Engine{
		senders:    sender.NewClassifier(),
		classifier: classify.NewClassifier(),
		cache:      dedup.NewCache(config.CacheWindow),
	}
}

// Classify runs the full pipeline on one message.
//
// Manual entries skip the sender check and duplicate suppression: the
// user typed them on purpose, so repeats are intentional.
func (e *Engine) Classify(msg model.Message) Result {
	body := strings.TrimSpace(msg.Body)
	if body == "" || strings.TrimSpace(msg.Sender) == "" {
		return rejected(model.VerdictRejectedNoSignal)
	}

	manual := msg.IsManualEntry()
	if !manual && !e.senders.IsTrusted(msg.Sender) {
		slog.Debug("rejected untrusted sender", "sender", msg.Sender)
		return rejected(model.VerdictRejectedUnknownSender)
	}

	verdict := e.classifier.Classify(classify.Input{
		Body:          body,
		TrustedSender: true,
		BankSender:    e.senders.IsBank(msg.Sender),
	})
	if verdict != model.VerdictAccepted {
		return rejected(verdict)
	}

	amt, ok := amount.Extract(body)
	if !ok {
		return rejected(model.VerdictRejectedNoSignal)
	}

	direction := classify.Direction(body)
	fingerprint := dedup.Fingerprint(body, amt, msg.ReceivedAt)

	if !manual && e.cache.CheckAndRecord(fingerprint, msg.ReceivedAt) {
		slog.Debug("suppressed duplicate message",
			"sender", msg.Sender,
			"fingerprint", fingerprint)
		return rejected(model.VerdictRejectedDuplicate)
	}

	counterparty := merchant.Extract(msg.Sender, body)

	return Result{
		Verdict: model.VerdictAccepted,
		Transaction: &model.Transaction{
			ObservedAt:   msg.ReceivedAt,
			Sender:       msg.Sender,
			Body:         msg.Body,
			SignedAmount: classify.Sign(amt, direction),
			Direction:    direction,
			Reference:    dedup.ExtractReference(body),
			Fingerprint:  fingerprint,
			Counterparty: counterparty,
			Category:     category.Categorize(counterparty),
		},
	}
}

// CacheStats reports duplicate-cache activity for diagnostics.
func (e *Engine) CacheStats() dedup.CacheStats {
	return e.cache.Stats()
}

func rejected(v model.Verdict) Result {
	return Result{Verdict: v}
}
