package sender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_IsTrusted(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name   string
		sender string
		want   bool
	}{
		{
			name:   "bare bank code",
			sender: "HDFCBK",
			want:   true,
		},
		{
			name:   "bank code with DLT route prefix",
			sender: "VM-HDFCBK",
			want:   true,
		},
		{
			name:   "bank code with prefix and suffix",
			sender: "AD-ICICIB-S",
			want:   true,
		},
		{
			name:   "payment app code",
			sender: "PAYTM",
			want:   true,
		},
		{
			name:   "payment app with prefix",
			sender: "VK-PHONPE",
			want:   true,
		},
		{
			name:   "short bank code as substring",
			sender: "SBIN0001",
			want:   true,
		},
		{
			name:   "lowercase sender id",
			sender: "vm-hdfcbk",
			want:   true,
		},
		{
			name:   "random phone number",
			sender: "+919876543210",
			want:   false,
		},
		{
			name:   "unrelated sender",
			sender: "SWIGGY",
			want:   false,
		},
		{
			name:   "empty sender",
			sender: "",
			want:   false,
		},
		{
			name:   "long code must not match as substring",
			sender: "XICICIBX",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsTrusted(tt.sender))
		})
	}
}

func TestClassifier_IsBankVsPaymentApp(t *testing.T) {
	c := NewClassifier()

	assert.True(t, c.IsBank("VM-HDFCBK"))
	assert.False(t, c.IsPaymentApp("VM-HDFCBK"))

	assert.True(t, c.IsPaymentApp("VK-PAYTM"))
	assert.False(t, c.IsBank("VK-PAYTM"))
}
