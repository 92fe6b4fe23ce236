package smsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/smsledger/internal/model"
)

func TestClassifyPaymentMode(t *testing.T) {
	tests := []struct {
		text string
		want model.PaymentMode
	}{
		{"Rs.100 paid via UPI", model.PaymentModeUPI},
		{"NEFT of Rs.5000 credited", model.PaymentModeNEFT},
		{"IMPS transfer of Rs.50", model.PaymentModeIMPS},
		{"RTGS Rs.5,00,000 credited", model.PaymentModeRTGS},
		{"Rs.2000 withdrawn at ATM", model.PaymentModeATM},
		{"POS txn of Rs.450", model.PaymentModeCardSwipe},
		{"Rs.450 spent on debit card", model.PaymentModeCardSwipe},
		{"Rs.99 paid through NetBanking", model.PaymentModeNetBanking},
		{"Rs.99 paid through net-banking", model.PaymentModeNetBanking},
		{"EMI of Rs.2,000 due", model.PaymentModeEMI},
		{"Rs.100 debited", model.PaymentModeOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyPaymentMode(tt.text), "ClassifyPaymentMode(%q)", tt.text)
	}
}

func TestClassifyPaymentMode_FirstRuleWins(t *testing.T) {
	assert.Equal(t, model.PaymentModeUPI, ClassifyPaymentMode("card linked UPI payment"))
	assert.Equal(t, model.PaymentModeNEFT, ClassifyPaymentMode("EMI paid by NEFT"))
	assert.Len(t, ModeRules(), len(model.PaymentModes)-1)
}
