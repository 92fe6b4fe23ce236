package smsparse

import (
	"regexp"

	"github.com/cleared-dev/smsledger/internal/model"
)

// ModeRule maps a pattern to a payment mode.
type ModeRule struct {
	Pattern *regexp.Regexp
	Mode    model.PaymentMode
}

var modeRules = []ModeRule{
	{regexp.MustCompile(`(?i)UPI`), model.PaymentModeUPI},
	{regexp.MustCompile(`(?i)NEFT`), model.PaymentModeNEFT},
	{regexp.MustCompile(`(?i)IMPS`), model.PaymentModeIMPS},
	{regexp.MustCompile(`(?i)RTGS`), model.PaymentModeRTGS},
	{regexp.MustCompile(`(?i)ATM`), model.PaymentModeATM},
	{regexp.MustCompile(`(?i)card|pos|swipe`), model.PaymentModeCardSwipe},
	{regexp.MustCompile(`(?i)net.?banking`), model.PaymentModeNetBanking},
	{regexp.MustCompile(`(?i)EMI`), model.PaymentModeEMI},
}

// ModeRules returns a copy of the payment-mode table in priority order.
func ModeRules() []ModeRule {
	return append([]ModeRule(nil), modeRules...)
}

// ClassifyPaymentMode returns the first matching payment mode, or PaymentModeOther.
func ClassifyPaymentMode(text string) model.PaymentMode {
	for _, r := range modeRules {
		if r.Pattern.MatchString(text) {
			return r.Mode
		}
	}
	return model.PaymentModeOther
}
