// Package smsparse extracts structured transactions from bank SMS text.
//
// Every field has its own extractor backed by an ordered rule table. Only the
// amount is mandatory; all other fields fall back to an explicit default.
package smsparse

import (
	"errors"
	"strings"
	"time"

	"github.com/cleared-dev/smsledger/internal/model"
)

// ErrNoAmount is returned when the message holds no positive currency amount.
// Its text is suitable for showing to the person who pasted the message.
var ErrNoAmount = errors.New("no transaction found: make sure the SMS has an amount like Rs.1,200 and words like debited/credited")

// Parser extracts transactions. The zero value uses the wall clock.
type Parser struct {
	// Now supplies "today" when a message carries no usable date.
	Now func() time.Time
}

// New returns a Parser that reads the wall clock.
func New() *Parser {
	return &Parser{Now: time.Now}
}

// Parse extracts a transaction from text using the wall clock.
func Parse(text string) (model.ParsedTransaction, error) {
	return New().Parse(text)
}

// Parse extracts a transaction from text. It fails only with ErrNoAmount.
func (p *Parser) Parse(text string) (model.ParsedTransaction, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ParsedTransaction{}, ErrNoAmount
	}

	amount, ok := ExtractAmount(text)
	if !ok {
		return model.ParsedTransaction{}, ErrNoAmount
	}

	dir := ClassifyDirection(text)
	merchant := ExtractMerchant(text)

	return model.ParsedTransaction{
		Direction:   dir,
		Amount:      amount,
		Bank:        IdentifyBank(text),
		Merchant:    merchant,
		PaymentMode: ClassifyPaymentMode(text),
		Date:        ExtractDate(text, p.now()),
		Category:    ClassifyCategory(text, merchant, dir),
	}, nil
}

func (p *Parser) now() time.Time {
	if p == nil || p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
