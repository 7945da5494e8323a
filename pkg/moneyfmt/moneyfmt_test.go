package moneyfmt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGroup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"under a thousand", "999", "999"},
		{"thousands", "56789", "56,789"},
		{"lakhs", "123456", "1,23,456"},
		{"crores", "123456789", "12,34,56,789"},
		{"negative", "-1234567", "-12,34,567"},
		{"fraction preserved", "1234567.89", "12,34,567.89"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Group(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "₹1,50,000", Rupees(decimal.NewFromInt(150000)))
	assert.Equal(t, "₹1,00,000", Rupees(decimal.RequireFromString("99999.50")))
}
