package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/arjunmahishi/sms-ledger/internal/category"
	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 4, 12, 14, 30, 0, 0, time.UTC)

func TestEngine_AcceptedMessages(t *testing.T) {
	e := New()

	t.Run("card purchase with known merchant", func(t *testing.T) {
		res := e.Classify(model.Message{
			ReceivedAt: baseTime,
			Sender:     "VM-HDFCBK",
			Body:       "Rs.2,599.00 has been debited from a/c no. XX7290 on 12-04-23 for POS purchase at AMAZON RETAIL IN. Avl bal: Rs.45,321.56",
		})
		require.Equal(t, model.VerdictAccepted, res.Verdict)
		require.NotNil(t, res.Transaction)

		tx := res.Transaction
		assert.InDelta(t, -2599.00, tx.SignedAmount, 0.001)
		assert.Equal(t, model.DirectionDebit, tx.Direction)
		assert.Equal(t, "Amazon Retail", tx.Counterparty)
		assert.Equal(t, category.Shopping, tx.Category)
		assert.Empty(t, tx.Reference, "no explicit reference on this message")
		assert.NotEmpty(t, tx.Fingerprint)
		assert.Equal(t, baseTime, tx.ObservedAt)
	})

	t.Run("upi payment with explicit reference", func(t *testing.T) {
		res := e.Classify(model.Message{
			ReceivedAt: baseTime,
			Sender:     "AD-ICICIB",
			Body:       "Rs.100.00 debited from A/c no. XX5678 on 15-Feb-24 using UPI-RAZORUPIIN. UPI Ref ICIC333456. Balance: Rs.24,560.98",
		})
		require.Equal(t, model.VerdictAccepted, res.Verdict)
		require.NotNil(t, res.Transaction)

		tx := res.Transaction
		assert.InDelta(t, -100.00, tx.SignedAmount, 0.001)
		assert.Equal(t, model.DirectionDebit, tx.Direction)
		assert.Equal(t, "Razorpay", tx.Counterparty)
		assert.Equal(t, "ICIC333456", tx.Reference)
		assert.Equal(t, "ICIC333456", tx.Fingerprint, "explicit reference is the fingerprint")
	})
}

func TestEngine_Rejections(t *testing.T) {
	e := New()

	tests := []struct {
		name   string
		sender string
		body   string
		want   model.Verdict
	}{
		{
			name:   "blank body",
			sender: "VM-HDFCBK",
			body:   "   ",
			want:   model.VerdictRejectedNoSignal,
		},
		{
			name:   "blank sender",
			sender: "",
			body:   "Rs.100 debited from your account",
			want:   model.VerdictRejectedNoSignal,
		},
		{
			name:   "unknown sender even with transactional text",
			sender: "DM-FABDEALS",
			body:   "Rs.2,599.00 debited from a/c XX7290 for purchase",
			want:   model.VerdictRejectedUnknownSender,
		},
		{
			name:   "otp from trusted sender",
			sender: "VM-HDFCBK",
			body:   "Your OTP for login is 482910. Do not share.",
			want:   model.VerdictRejectedOTP,
		},
		{
			name:   "promotional from trusted sender",
			sender: "VM-HDFCBK",
			body:   "Maintain an average monthly balance of Rs.10,000 to enjoy exclusive benefits",
			want:   model.VerdictRejectedPromotional,
		},
		{
			name:   "balance statement",
			sender: "VM-HDFCBK",
			body:   "Your A/c balance is Rs.5,230.50 as on 04-05-24",
			want:   model.VerdictRejectedBalanceOnly,
		},
		{
			name:   "pure credit",
			sender: "AD-ICICIB",
			body:   "Rs.5,000.00 credited to your A/c XX1234 by NEFT",
			want:   model.VerdictRejectedCreditOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Classify(model.Message{ReceivedAt: baseTime, Sender: tt.sender, Body: tt.body})
			assert.Equal(t, tt.want, res.Verdict)
			assert.Nil(t, res.Transaction)
			assert.True(t, res.Verdict.IsRejection())
		})
	}
}

func TestEngine_DuplicateSuppression(t *testing.T) {
	e := New()
	msg := model.Message{
		ReceivedAt: baseTime,
		Sender:     "AD-ICICIB",
		Body:       "Rs.100.00 debited from A/c no. XX5678 on 15-Feb-24 using UPI-RAZORUPIIN. UPI Ref ICIC333456.",
	}

	first := e.Classify(msg)
	require.Equal(t, model.VerdictAccepted, first.Verdict)

	// Same message again inside the window: suppressed.
	msg.ReceivedAt = baseTime.Add(5 * time.Minute)
	second := e.Classify(msg)
	assert.Equal(t, model.VerdictRejectedDuplicate, second.Verdict)
	assert.Nil(t, second.Transaction)

	// Past the window the fingerprint has aged out.
	msg.ReceivedAt = baseTime.Add(31 * time.Minute)
	third := e.Classify(msg)
	assert.Equal(t, model.VerdictAccepted, third.Verdict)

	stats := e.CacheStats()
	assert.Equal(t, uint64(1), stats.Hits)
}

func TestEngine_ManualEntryBypassesDeduplication(t *testing.T) {
	e := New()
	msg := model.Message{
		ReceivedAt: baseTime,
		Sender:     model.ManualEntrySender,
		Body:       "Paid Rs.500 for house cleaning",
	}

	for i := 0; i < 3; i++ {
		res := e.Classify(msg)
		require.Equal(t, model.VerdictAccepted, res.Verdict, "manual entry %d", i)
		assert.InDelta(t, -500.0, res.Transaction.SignedAmount, 0.001)
	}
}

func TestEngine_SignMatchesDirection(t *testing.T) {
	e := New()

	bodies := []string{
		"Rs.250.00 debited from A/c XX1 for UPI txn. Ref 445566778899",
		"Rs.1,200.00 spent on Card XX9921 at BIG BAZAAR. Ref 556677889900",
		"INR 75.50 paid to Swiggy via UPI. Ref 667788990011",
	}

	for i, body := range bodies {
		msg := model.Message{
			ReceivedAt: baseTime.Add(time.Duration(i) * time.Hour),
			Sender:     "VM-HDFCBK",
			Body:       body,
		}
		res := e.Classify(msg)
		require.Equal(t, model.VerdictAccepted, res.Verdict, body)

		tx := res.Transaction
		assert.Positive(t, tx.Amount())
		negative := tx.SignedAmount < 0
		assert.Equal(t, tx.Direction == model.DirectionDebit, negative, body)
	}
}

func TestEngine_DistinctUnreferencedMessagesAreNotDuplicates(t *testing.T) {
	e := New()

	for i := 0; i < 5; i++ {
		body := fmt.Sprintf("Rs.%d0.00 debited from a/c XX7290 for purchase", i+1)
		res := e.Classify(model.Message{
			ReceivedAt: baseTime.Add(time.Duration(i) * time.Second),
			Sender:     "VM-HDFCBK",
			Body:       body,
		})
		assert.Equal(t, model.VerdictAccepted, res.Verdict, body)
	}
	assert.Zero(t, e.CacheStats().Hits)
}
