package classify

import (
	"testing"

	"github.com/arjunmahishi/sms-ledger/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassify_OTP(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		body string
	}{
		{name: "plain otp", body: "Your OTP for login is 482910. Do not share."},
		{name: "verification code", body: "Use verification code 123456 to continue"},
		{name: "auth code", body: "Your auth code is 998877"},
		{name: "numeric code shape", body: "482910 is your one time password"},
		{name: "digit code shape", body: "Enter the 6-digit code sent to your phone"},
		{name: "broad vocabulary", body: "Your passcode 4521 expires in 5 minutes"},
		{
			name: "otp wins even with amount present",
			body: "OTP 482910 to authorise payment of Rs.2,000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, model.VerdictRejectedOTP, c.Classify(Input{Body: tt.body, TrustedSender: true, BankSender: true}))
		})
	}
}

func TestClassify_Promotional(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "average balance marketing despite currency amount",
			body: "Maintain an average monthly balance of Rs.10,000 to enjoy exclusive benefits",
		},
		{name: "direct offer keyword", body: "Flat 20% discount on your next recharge"},
		{name: "marketing url", body: "Shop today https://deals.example.com and save big"},
		{
			name: "compound invitation signal",
			body: "We invite you to our premium program. Earn up to 5% on deposits of Rs.10,000 - Rs.50,000",
		},
		{
			name: "loan offer in lakhs",
			body: "Get cash upto Rs.5 lakhs in 10 minutes. No paperwork needed",
		},
		{
			name: "loan offer with apply nudge",
			body: "Personal loan at lowest rates. Apply today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, model.VerdictRejectedPromotional, c.Classify(Input{Body: tt.body, TrustedSender: true, BankSender: true}))
		})
	}
}

func TestClassify_BalanceOnly(t *testing.T) {
	c := NewClassifier()

	got := c.Classify(Input{
		Body:          "Your A/c balance is Rs.5,230.50 as on 04-05-24",
		TrustedSender: true,
		BankSender:    true,
	})
	assert.Equal(t, model.VerdictRejectedBalanceOnly, got)
}

func TestClassify_CreditOnly(t *testing.T) {
	c := NewClassifier()

	t.Run("pure credit is rejected", func(t *testing.T) {
		got := c.Classify(Input{
			Body:          "Rs.5,000.00 credited to your A/c XX1234 by NEFT",
			TrustedSender: true,
			BankSender:    true,
		})
		assert.Equal(t, model.VerdictRejectedCreditOnly, got)
	})

	t.Run("dual mention counts as debit", func(t *testing.T) {
		got := c.Classify(Input{
			Body:          "Rs.1,200.00 debited from A/c XX1234 and credited to Ramesh Kumar",
			TrustedSender: true,
			BankSender:    true,
		})
		assert.Equal(t, model.VerdictAccepted, got)
	})
}

func TestClassify_PositiveSignals(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		in   Input
		want model.Verdict
	}{
		{
			name: "debit keyword plus amount",
			in:   Input{Body: "Rs.2,599.00 has been debited from a/c no. XX7290 on 12-04-23 for POS purchase at AMAZON RETAIL IN. Avl bal: Rs.45,321.56", TrustedSender: true, BankSender: true},
			want: model.VerdictAccepted,
		},
		{
			name: "reference plus amount",
			in:   Input{Body: "Rs.100.00 debited from A/c no. XX5678 on 15-Feb-24 using UPI-RAZORUPIIN. UPI Ref ICIC333456. Balance: Rs.24,560.98", TrustedSender: true, BankSender: true},
			want: model.VerdictAccepted,
		},
		{
			name: "card usage plus amount",
			in:   Input{Body: "Rs.450.00 spent on Card XX9921 at the outlet", TrustedSender: true, BankSender: true},
			want: model.VerdictAccepted,
		},
		{
			name: "bank sender fallback with plausible amount",
			in:   Input{Body: "Rs.325.00 transaction completed on your account", TrustedSender: true, BankSender: true},
			want: model.VerdictAccepted,
		},
		{
			name: "no signal at all",
			in:   Input{Body: "Dear customer, please visit our branch for KYC", TrustedSender: true, BankSender: false},
			want: model.VerdictRejectedNoSignal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.in))
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		body string
		want model.Direction
	}{
		{name: "debited", body: "Rs.100 debited from your account", want: model.DirectionDebit},
		{name: "spent", body: "Rs.100 spent on your card", want: model.DirectionDebit},
		{name: "dr suffix", body: "A/c XX1: 100.00 DR", want: model.DirectionDebit},
		{name: "credited", body: "Rs.100 credited to your account", want: model.DirectionCredit},
		{name: "dual mention resolves to debit", body: "Rs.100 debited and credited to payee", want: model.DirectionDebit},
		{name: "dr must not match inside address", body: "Visit our address for details, amount credited", want: model.DirectionCredit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Direction(tt.body))
		})
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, -250.0, Sign(250, model.DirectionDebit))
	assert.Equal(t, 250.0, Sign(250, model.DirectionCredit))
}
