package smsparse

import (
	"regexp"
	"strings"
)

var (
	// "to VPA swiggy@upi" or "VPA swiggy@upi"
	vpaRe = regexp.MustCompile(`(?i)(?:to\s+VPA|VPA)\s+([\w.\-@]+)`)
	// "at BIG BAZAAR"; the name must be upper case, 3-30 characters.
	atMerchantRe = regexp.MustCompile(`\bat\s+([A-Z][A-Z0-9 &\-']{2,29})`)
	// "to Ravi Kumar", "towards A/C of Ravi Kumar"
	toPayeeRe = regexp.MustCompile(`(?i)\b(?:to|towards)\s+(?:A/C\s+of\s+)?([A-Z][A-Za-z ]{2,25})`)
)

// merchantExtractors are tried in order; the first non-empty result wins.
var merchantExtractors = []func(string) string{
	merchantFromVPA,
	merchantFromPattern(atMerchantRe),
	merchantFromPattern(toPayeeRe),
}

// ExtractMerchant returns the counterparty named in text, or "".
func ExtractMerchant(text string) string {
	for _, extract := range merchantExtractors {
		if name := extract(text); name != "" {
			return name
		}
	}
	return ""
}

// merchantFromVPA takes the local part of a payment handle and turns dots
// into spaces. Repeated spaces are left as they are.
func merchantFromVPA(text string) string {
	m := vpaRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	local, _, _ := strings.Cut(m[1], "@")
	return strings.TrimSpace(strings.ReplaceAll(local, ".", " "))
}

func merchantFromPattern(re *regexp.Regexp) func(string) string {
	return func(text string) string {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return ""
		}
		return strings.TrimSpace(m[1])
	}
}
