package smsparse

import (
	"strings"

	"github.com/cleared-dev/smsledger/internal/model"
)

var (
	incomingKeywords = []string{"credited", "credit", "received", "deposited", "refund", "cashback", "added"}
	outgoingKeywords = []string{"debited", "debit", "spent", "withdrawn", "paid", "purchase", "sent", "deducted"}
)

// ClassifyDirection decides whether text describes money coming in or going out.
// The earliest keyword wins; equal positions and no keyword at all both
// resolve to outgoing.
func ClassifyDirection(text string) model.Direction {
	lower := strings.ToLower(text)
	return directionAt(firstIndex(lower, incomingKeywords), firstIndex(lower, outgoingKeywords))
}

// directionAt resolves keyword positions (-1 = absent) to a direction.
func directionAt(in, out int) model.Direction {
	if in != -1 && (out == -1 || in < out) {
		return model.DirectionIncoming
	}
	return model.DirectionOutgoing
}

// firstIndex returns the lowest index at which any keyword occurs, or -1.
func firstIndex(s string, keywords []string) int {
	best := -1
	for _, kw := range keywords {
		if idx := strings.Index(s, kw); idx != -1 && (best == -1 || idx < best) {
			best = idx
		}
	}
	return best
}
