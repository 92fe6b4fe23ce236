package smsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Rs. 1,200.50 debited", "1200.50"},
		{"Rs.1,200.00 debited from a/c", "1200.00"},
		{"INR 500 credited", "500.00"},
		{"₹2,499 spent on card", "2499.00"},
		{"rs.75.5 paid", "75.50"},
		{"Rs 1,00,000 received via NEFT", "100000.00"},
		{"Avl bal INR24,800.00", "24800.00"},
	}
	for _, tt := range tests {
		got, ok := ExtractAmount(tt.text)
		assert.True(t, ok, "ExtractAmount(%q)", tt.text)
		assert.Equal(t, tt.want, got.StringFixed(2), "ExtractAmount(%q)", tt.text)
	}
}

func TestExtractAmount_FirstMatchWins(t *testing.T) {
	got, ok := ExtractAmount("Rs.1,200.00 debited. Avl bal Rs.24,800.00")
	assert.True(t, ok)
	assert.Equal(t, "1200.00", got.StringFixed(2))
}

func TestExtractAmount_NoMatch(t *testing.T) {
	for _, text := range []string{
		"",
		"your account was debited",
		"1200.00 debited from a/c",
		"USD 40 spent",
		"Rs 0.00 debited",
		"Rs ,,, debited",
		"Rs.0 debited, later Rs.50 debited",
	} {
		_, ok := ExtractAmount(text)
		assert.False(t, ok, "ExtractAmount(%q)", text)
	}
}
