package smsparse

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/smsledger/internal/model"
)

func fixedParser(now time.Time) *Parser {
	return &Parser{Now: func() time.Time { return now }}
}

func TestParse_HDFCUPIDebit(t *testing.T) {
	text := "HDFC Bank: Rs.1,200.00 debited from a/c **1234 on 15-01-26 to VPA swiggy@upi. Avl bal Rs.24,800.00"

	got, err := fixedParser(fixedNow).Parse(text)
	require.NoError(t, err)

	assert.Equal(t, model.DirectionOutgoing, got.Direction)
	assert.Equal(t, "1200.00", got.Amount.StringFixed(2))
	assert.Equal(t, model.BankHDFC, got.Bank)
	assert.Equal(t, "swiggy", got.Merchant)
	assert.Equal(t, model.PaymentModeUPI, got.PaymentMode)
	assert.Equal(t, day(2026, time.January, 15), got.Date)
	assert.Equal(t, model.CategoryFood, got.Category)
}

func TestParse_SalaryCredit(t *testing.T) {
	text := "Rs.50,000.00 credited to your A/c XX4321 by NEFT from ACME CORP on 01-04-2025. -SBI"

	got, err := fixedParser(fixedNow).Parse(text)
	require.NoError(t, err)

	assert.Equal(t, model.DirectionIncoming, got.Direction)
	assert.Equal(t, "50000.00", got.Amount.StringFixed(2))
	assert.Equal(t, model.BankSBI, got.Bank)
	assert.Equal(t, model.PaymentModeNEFT, got.PaymentMode)
	assert.Equal(t, day(2025, time.April, 1), got.Date)
	assert.Equal(t, model.CategoryIncome, got.Category)
}

func TestParse_CardSpendDefaultsDate(t *testing.T) {
	text := "You've spent Rs.7394 On AXIS Bank card xx0000 At DECATHLON"

	got, err := fixedParser(fixedNow).Parse(text)
	require.NoError(t, err)

	assert.Equal(t, model.DirectionOutgoing, got.Direction)
	assert.Equal(t, model.BankAxis, got.Bank)
	assert.Equal(t, model.PaymentModeCardSwipe, got.PaymentMode)
	assert.Equal(t, today, got.Date)
	assert.Equal(t, model.CategoryOther, got.Category)
}

func TestParse_NoAmount(t *testing.T) {
	for _, text := range []string{
		"",
		"   \n\t",
		"Your a/c XX12 was debited on 15-01-26",
		"credited 500 to your account",
		"Rs.0.00 debited",
	} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrNoAmount, "Parse(%q)", text)
	}
}

func TestParse_DoesNotNeedDirectionKeyword(t *testing.T) {
	got, err := fixedParser(fixedNow).Parse("INR 99 at CAFE COFFEE DAY")
	require.NoError(t, err)
	assert.Equal(t, model.DirectionOutgoing, got.Direction)
	assert.Equal(t, "CAFE COFFEE DAY", got.Merchant)
	assert.Equal(t, model.CategoryFood, got.Category)
}

func TestParse_Idempotent(t *testing.T) {
	text := "ICICI: Rs.450 spent at DOMINOS on 03-02-2025"
	p := fixedParser(fixedNow)

	first, err := p.Parse(text)
	require.NoError(t, err)
	second, err := p.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParse_OnlyFallbackDateDependsOnClock(t *testing.T) {
	text := "Rs.450 spent at DOMINOS"
	later := fixedNow.Add(48 * time.Hour)

	a, err := fixedParser(fixedNow).Parse(text)
	require.NoError(t, err)
	b, err := fixedParser(later).Parse(text)
	require.NoError(t, err)

	assert.NotEqual(t, a.Date, b.Date)
	a.Date, b.Date = time.Time{}, time.Time{}
	assert.Equal(t, a, b)
}

func TestParse_ZeroValueParserUsesWallClock(t *testing.T) {
	var p Parser
	got, err := p.Parse("Rs.10 debited")
	require.NoError(t, err)
	y, m, d := time.Now().Date()
	assert.Equal(t, time.Date(y, m, d, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestParse_Concurrent(t *testing.T) {
	text := "HDFC Bank: Rs.1,200.00 debited from a/c **1234 on 15-01-26 to VPA swiggy@upi."
	want, err := Parse(text)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]model.ParsedTransaction, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Parse(text)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
