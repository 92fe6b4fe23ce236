package smsparse

import (
	"regexp"

	"github.com/cleared-dev/smsledger/internal/model"
)

// BankRule maps a pattern to the canonical bank it identifies.
type BankRule struct {
	Pattern *regexp.Regexp
	Bank    model.Bank
}

// bankRules is evaluated top to bottom; earlier rules take priority.
var bankRules = []BankRule{
	{regexp.MustCompile(`(?i)HDFC`), model.BankHDFC},
	{regexp.MustCompile(`(?i)ICICI`), model.BankICICI},
	{regexp.MustCompile(`(?i)SBI|State Bank`), model.BankSBI},
	{regexp.MustCompile(`(?i)AXIS`), model.BankAxis},
	{regexp.MustCompile(`(?i)KOTAK`), model.BankKotak},
	{regexp.MustCompile(`(?i)PNB|Punjab National`), model.BankPNB},
	{regexp.MustCompile(`(?i)YES.?BANK`), model.BankYes},
	{regexp.MustCompile(`(?i)PAYTM`), model.BankPaytm},
	{regexp.MustCompile(`(?i)PHONEPE`), model.BankPhonePe},
	{regexp.MustCompile(`(?i)Bank of Baroda|BOB`), model.BankBaroda},
	{regexp.MustCompile(`(?i)CANARA`), model.BankCanara},
	{regexp.MustCompile(`(?i)UNION BANK`), model.BankUnion},
	{regexp.MustCompile(`(?i)INDUSIND`), model.BankIndusInd},
	{regexp.MustCompile(`(?i)IDFC`), model.BankIDFC},
	{regexp.MustCompile(`(?i)FEDERAL`), model.BankFederal},
}

// BankRules returns a copy of the bank table in priority order.
func BankRules() []BankRule {
	return append([]BankRule(nil), bankRules...)
}

// IdentifyBank returns the bank named by the first matching rule, or BankOther.
func IdentifyBank(text string) model.Bank {
	for _, r := range bankRules {
		if r.Pattern.MatchString(text) {
			return r.Bank
		}
	}
	return model.BankOther
}
