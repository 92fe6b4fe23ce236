package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Source records how a transaction entered the ledger.
type Source string

const (
	SourceSMS     Source = "SMS_PARSE"
	SourceReceipt Source = "RECEIPT_PARSE"
	SourceManual  Source = "MANUAL"
)

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	return s == SourceSMS || s == SourceReceipt || s == SourceManual
}

// DefaultMerchant is stored when a record is saved without a merchant.
const DefaultMerchant = "Manual Entry"

// Record is a transaction as stored in the ledger.
type Record struct {
	ID            string
	Date          time.Time // local noon of the transaction day, UTC
	Amount        decimal.Decimal
	Direction     Direction
	Bank          Bank
	Merchant      string
	PaymentMode   PaymentMode
	Category      Category
	CategoryIcon  string
	CategoryColor string
	Raw           string
	Source        Source
}

// NewRecord promotes a parsed (and possibly hand-corrected) transaction to a
// storable record. Incoming transactions are always filed under Income.
func NewRecord(id string, tx ParsedTransaction, raw string, source Source) Record {
	cat := tx.Category
	if tx.Direction == DirectionIncoming {
		cat = CategoryIncome
	}
	style := cat.Style()

	merchant := strings.TrimSpace(tx.Merchant)
	if merchant == "" {
		merchant = DefaultMerchant
	}

	y, m, d := tx.Date.Date()
	return Record{
		ID:            id,
		Date:          time.Date(y, m, d, 12, 0, 0, 0, time.UTC),
		Amount:        tx.Amount,
		Direction:     tx.Direction,
		Bank:          tx.Bank,
		Merchant:      merchant,
		PaymentMode:   tx.PaymentMode,
		Category:      cat,
		CategoryIcon:  style.Icon,
		CategoryColor: style.Color,
		Raw:           raw,
		Source:        source,
	}
}

// Day returns the record's date formatted as YYYY-MM-DD.
func (r Record) Day() string {
	return r.Date.Format(time.DateOnly)
}

// MonthKey returns the record's month formatted as YYYY-MM.
func (r Record) MonthKey() string {
	return r.Date.Format("2006-01")
}

// ParseBank matches a canonical bank name case-insensitively.
func ParseBank(s string) (Bank, bool) {
	for _, b := range Banks {
		if strings.EqualFold(string(b), strings.TrimSpace(s)) {
			return b, true
		}
	}
	return "", false
}

// ParsePaymentMode matches a payment mode name case-insensitively,
// ignoring spaces so "CardSwipe" and "Card Swipe" are equivalent.
func ParsePaymentMode(s string) (PaymentMode, bool) {
	want := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	for _, m := range PaymentModes {
		if strings.EqualFold(strings.ReplaceAll(string(m), " ", ""), want) {
			return m, true
		}
	}
	return "", false
}
