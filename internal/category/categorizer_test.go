package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name         string
		counterparty string
		want         string
	}{
		{name: "food delivery", counterparty: "Swiggy", want: Food},
		{name: "grocery", counterparty: "BigBasket", want: Food},
		{name: "ride hailing", counterparty: "Uber India", want: Transport},
		{name: "fuel", counterparty: "HPCL Petrol Pump", want: Transport},
		{name: "e-commerce", counterparty: "Amazon Retail", want: Shopping},
		{name: "telecom", counterparty: "Airtel Postpaid", want: Bills},
		{name: "electricity board", counterparty: "BESCOM", want: Bills},
		{name: "streaming", counterparty: "Netflix", want: Entertainment},
		{name: "pharmacy", counterparty: "Apollo Pharmacy", want: Healthcare},
		{name: "person name defaults", counterparty: "Ramesh Kumar", want: Other},
		{name: "empty name defaults", counterparty: "", want: Other},
		{name: "case insensitive", counterparty: "ZOMATO", want: Food},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.counterparty))
		})
	}
}

// "Uber Eats" style names hit whichever category comes first in the fixed
// evaluation order; Food precedes Transport.
func TestCategorize_OrderIsFixed(t *testing.T) {
	assert.Equal(t, Food, Categorize("Swiggy Instamart"))
	assert.Equal(t, []string{Food, Transport, Shopping, Bills, Entertainment, Healthcare, Other}, Names())
}

func TestKeywords(t *testing.T) {
	assert.Contains(t, Keywords(Food), "swiggy")
	assert.Nil(t, Keywords(Other))
	assert.Nil(t, Keywords("nope"))
}
