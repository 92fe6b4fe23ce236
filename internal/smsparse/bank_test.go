package smsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/smsledger/internal/model"
)

func TestIdentifyBank(t *testing.T) {
	tests := []struct {
		text string
		want model.Bank
	}{
		{"HDFC Bank: Rs.100 debited", model.BankHDFC},
		{"icici bank acct XX12 debited", model.BankICICI},
		{"Your SBI a/c credited", model.BankSBI},
		{"State Bank alert: Rs.10 debited", model.BankSBI},
		{"Axis Bank card used", model.BankAxis},
		{"Kotak: Rs.5 sent", model.BankKotak},
		{"Punjab National Bank alert", model.BankPNB},
		{"YES BANK: spent", model.BankYes},
		{"yesbank upi", model.BankYes},
		{"PhonePe payment", model.BankPhonePe},
		{"Bank of Baroda a/c", model.BankBaroda},
		{"Canara Bank a/c", model.BankCanara},
		{"Union Bank of India", model.BankUnion},
		{"IndusInd Bank card", model.BankIndusInd},
		{"IDFC FIRST Bank", model.BankIDFC},
		{"Federal Bank a/c", model.BankFederal},
		{"Rs.100 debited from a/c XX12", model.BankOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IdentifyBank(tt.text), "IdentifyBank(%q)", tt.text)
	}
}

func TestIdentifyBank_TableOrderWins(t *testing.T) {
	// SBI appears first in the text but HDFC is earlier in the table.
	assert.Equal(t, model.BankHDFC, IdentifyBank("Transfer from SBI a/c to HDFC a/c"))
	assert.Equal(t, model.BankICICI, IdentifyBank("ICICI card bill paid from State Bank"))
	// The short PAYTM pattern outranks the longer UNION BANK one.
	assert.Equal(t, model.BankPaytm, IdentifyBank("Union Bank a/c credited via Paytm"))
}

func TestBankRules_ReturnsCopy(t *testing.T) {
	rules := BankRules()
	rules[0].Bank = model.BankOther
	assert.Equal(t, model.BankHDFC, IdentifyBank("HDFC"))
	assert.Len(t, rules, len(model.Banks)-1)
}
