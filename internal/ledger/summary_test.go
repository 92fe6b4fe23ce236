package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/smsledger/internal/model"
)

func sampleRecords() []model.Record {
	return []model.Record{
		outgoing("f1", noon(2025, 6, 29), "100", model.CategoryFood),
		outgoing("f2", noon(2025, 6, 1), "50.50", model.CategoryFood),
		outgoing("t1", noon(2025, 6, 15), "300", model.CategoryTransport),
		outgoing("s1", noon(2025, 5, 1), "20", model.CategoryShopping),
		incoming("i1", noon(2025, 6, 20), "1000"),
		incoming("i2", noon(2025, 4, 3), "75"),
	}
}

func TestMonth(t *testing.T) {
	got := Month(sampleRecords(), 2025, time.June)
	assert.Len(t, got, 4)
	assert.Empty(t, Month(sampleRecords(), 2024, time.June))
}

func TestOnDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 00:30 on the 15th in IST is still the 14th in UTC.
	day := time.Date(2025, 6, 15, 0, 30, 0, 0, ist)
	got := OnDay(sampleRecords(), day)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
}

func TestBetween(t *testing.T) {
	got := Between(sampleRecords(), noon(2025, 6, 1), noon(2025, 6, 20))
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{"f2", "t1", "i1"}, ids)
}

func TestCategorySummary(t *testing.T) {
	now := time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC)
	got := CategorySummary(sampleRecords(), 30, now)

	require.Len(t, got, 2)
	assert.Equal(t, model.CategoryTransport, got[0].Category)
	assert.True(t, got[0].Total.Equal(dec("300")))
	assert.Equal(t, 1, got[0].Count)

	assert.Equal(t, model.CategoryFood, got[1].Category)
	assert.True(t, got[1].Total.Equal(dec("150.50")))
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, "🍔", got[1].Icon)
}

func TestCategorySummary_FillsMissingStyle(t *testing.T) {
	rec := outgoing("x", noon(2025, 6, 29), "10", model.CategoryCash)
	rec.CategoryIcon, rec.CategoryColor = "", ""
	got := CategorySummary([]model.Record{rec}, 7, noon(2025, 6, 30))
	require.Len(t, got, 1)
	assert.Equal(t, "💵", got[0].Icon)
	assert.Equal(t, "#6b7280", got[0].Color)
}

func TestMonthlyTotals(t *testing.T) {
	got := MonthlyTotals(sampleRecords(), 0)
	require.Len(t, got, 3)
	assert.Equal(t, "2025-06", got[0].Period)
	assert.True(t, got[0].Credit.Equal(dec("1000")))
	assert.True(t, got[0].Debit.Equal(dec("450.50")))
	assert.Equal(t, 4, got[0].Count)
	assert.True(t, got[0].Net().Equal(dec("549.50")))
	assert.Equal(t, "2025-05", got[1].Period)
	assert.Equal(t, "2025-04", got[2].Period)

	limited := MonthlyTotals(sampleRecords(), 2)
	require.Len(t, limited, 2)
	assert.Equal(t, "2025-05", limited[1].Period)
}

func TestDailyTotals(t *testing.T) {
	got := DailyTotals(sampleRecords())
	require.Len(t, got, 6)
	assert.Equal(t, "2025-06-29", got[0].Period)
	assert.Equal(t, "2025-04-03", got[5].Period)
}
