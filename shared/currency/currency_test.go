package currency_test

import (
	"reception/shared/currency"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "zero", amount: 0, expected: "₹0.00"},
		{name: "thousands", amount: 4000, expected: "₹4,000.00"},
		{name: "lakh grouping", amount: 123456.5, expected: "₹1,23,456.50"},
		{name: "negative", amount: -250, expected: "-₹250.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, currency.Format(tt.amount))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		numeric  bool
	}{
		{input: "4000", expected: 4000, numeric: true},
		{input: " 1,500.75 ", expected: 1500.75, numeric: true},
		{input: "₹250", expected: 250, numeric: true},
		{input: "", expected: 0, numeric: false},
		{input: "abc", expected: 0, numeric: false},
		{input: "NaN", expected: 0, numeric: false},
		{input: "-20", expected: -20, numeric: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, currency.ParseAmount(tt.input))
			assert.Equal(t, tt.numeric, currency.IsNumeric(tt.input))
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 4000.0, currency.Remaining(10000, 6000))
	assert.Equal(t, 0.0, currency.Remaining(10000, 12000))
	assert.Equal(t, 0.1, currency.Remaining(0.3, 0.2))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var out struct {
		Total currency.Amount `json:"total_amount"`
		Paid  currency.Amount `json:"paid_amount"`
		Due   currency.Amount `json:"due"`
	}

	err := json.Unmarshal([]byte(`{"total_amount":"10000.00","paid_amount":6000,"due":null}`), &out)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, out.Total.Float())
	assert.Equal(t, 6000.0, out.Paid.Float())
	assert.Equal(t, 0.0, out.Due.Float())
	assert.Equal(t, "₹4,000.00", currency.Amount(4000).String())
}
