package dedup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractReference(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "explicit ref form",
			body: "Rs.100.00 debited. UPI Ref ICIC333456. Balance: Rs.24,560.98",
			want: "ICIC333456",
		},
		{
			name: "ref no with colon",
			body: "Transfer complete. Ref No: 400123456789",
			want: "400123456789",
		},
		{
			name: "labelled transaction id",
			body: "Payment done. Txn ID AXI99887766 recorded",
			want: "AXI99887766",
		},
		{
			name: "UTR form",
			body: "NEFT processed UTR SBIN524123456789",
			want: "SBIN524123456789",
		},
		{
			name: "UPI rail notation",
			body: "Paid via UPI/P2A/404512345678 to merchant",
			want: "404512345678",
		},
		{
			name: "generic number label",
			body: "Confirmation number: 86753091",
			want: "86753091",
		},
		{
			name: "no reference present",
			body: "Rs.2,599.00 has been debited for POS purchase at AMAZON RETAIL IN",
			want: "",
		},
		{
			name: "too short to be a reference",
			body: "Ref 12345 only",
			want: "",
		},
		{
			name: "date-shaped capture is skipped",
			body: "Ref 20230412 means nothing",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractReference(tt.body))
		})
	}
}

func TestFingerprint_PrefersReference(t *testing.T) {
	at := time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC)
	fp := Fingerprint("Rs.100 debited. Ref ABC123456", 100, at)
	assert.Equal(t, "ABC123456", fp)
}

func TestSynthesize(t *testing.T) {
	at := time.Date(2024, 2, 15, 10, 30, 12, 0, time.UTC)

	t.Run("body date token anchors the fingerprint", func(t *testing.T) {
		a := Synthesize("Rs.100 debited on 15-Feb-24 at the store", 100, at)
		b := Synthesize("Rs.100 debited on 15-Feb-24 at the store", 100, at.Add(5*time.Minute))
		assert.Equal(t, a, b, "identical bodies with embedded dates collapse regardless of receive time")
	})

	t.Run("receive-minute granularity without date token", func(t *testing.T) {
		a := Synthesize("Rs.100 debited at the store", 100, at)
		b := Synthesize("Rs.100 debited at the store", 100, at.Add(20*time.Second))
		c := Synthesize("Rs.100 debited at the store", 100, at.Add(3*time.Minute))
		assert.Equal(t, a, b, "same minute collapses")
		assert.NotEqual(t, a, c, "different minutes stay distinct")
	})

	t.Run("different bodies never collide", func(t *testing.T) {
		a := Synthesize("Rs.100 debited at store one", 100, at)
		b := Synthesize("Rs.100 debited at store two", 100, at)
		assert.NotEqual(t, a, b)
	})
}
