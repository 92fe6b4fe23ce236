package smsparse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountRe matches a currency marker followed by a number that may carry
// thousands separators and up to two decimal digits.
var amountRe = regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*([\d,]+(?:\.\d{1,2})?)`)

// ExtractAmount returns the first currency-marked amount in text.
// It reports false when there is none or when the value is not positive.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	m := amountRe.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}
