package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DebitWithMerchant(t *testing.T) {
	cand, ok := Parse("Rs. 1,250.50 debited at Starbucks on 01-01")
	require.True(t, ok)
	assert.True(t, cand.Amount.Equal(decimal.RequireFromString("1250.50")))
	assert.False(t, cand.IsCredit)
	assert.Equal(t, "Starbucks", cand.Merchant)
}

func TestParse_Misses(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"otp message", "Your OTP is 4521"},
		{"empty", ""},
		{"currency marker without numeral", "Pay via Rs today"},
		{"marker at end", "Amount due in INR"},
		{"no currency marker", "1,250.50 debited at Starbucks"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.text)
			assert.False(t, ok)
		})
	}
}

func TestParse_Amounts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "Rs 500 debited", "500"},
		{"rs with dot", "Rs. 99.99 spent", "99.99"},
		{"inr marker", "INR 2500 debited from a/c", "2500"},
		{"rupee sign", "₹1200 sent via UPI", "1200"},
		{"thousands separators", "Rs. 1,25,000 debited", "125000"},
		{"separators with decimals", "Rs 12,345.67 debited", "12345.67"},
		{"case insensitive marker", "rs. 40 debited", "40"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand, ok := Parse(tt.text)
			require.True(t, ok)
			assert.True(t, cand.Amount.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", cand.Amount, tt.want)
		})
	}
}

func TestParse_MultipleDecimalPoints(t *testing.T) {
	// Malformed numerals must not fault; the match simply stops at the
	// valid prefix.
	cand, ok := Parse("Rs. 12.34.56 debited")
	require.True(t, ok)
	assert.True(t, cand.Amount.Equal(decimal.RequireFromString("12.34")))
}

func TestParse_Direction(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		credit bool
	}{
		{"debited", "Rs 100 debited from your account", false},
		{"credited", "Rs 100 credited to your account", true},
		{"received", "You have Received Rs 100 from Asha", true},
		{"neither defaults to debit", "Rs 100 paid at Amazon", false},
		{"credited uppercase", "RS 100 CREDITED", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand, ok := Parse(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.credit, cand.IsCredit)
		})
	}
}

func TestParse_MerchantHint(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"token after at", "Rs 100 debited at Amazon via UPI", "Amazon"},
		{"token title cased", "Rs 100 debited at starbucks", "Starbucks"},
		{"trailing punctuation stripped", "Rs 100 debited at Zomato.", "Zomato"},
		{"debit fallback", "Rs 100 debited from a/c XX12", "Bank UPI"},
		{"credit fallback", "Rs 100 credited to a/c XX12", "Bank Alert"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand, ok := Parse(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, cand.Merchant)
		})
	}
}

func TestParse_IsPure(t *testing.T) {
	const text = "Rs. 1,250.50 debited at Starbucks on 01-01"
	first, ok := Parse(text)
	require.True(t, ok)
	second, ok := Parse(text)
	require.True(t, ok)
	assert.Equal(t, first, second)
}
