package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/smsledger/internal/model"
)

// CategoryTotal is the spend in one category over a window.
type CategoryTotal struct {
	Category model.Category
	Icon     string
	Color    string
	Total    decimal.Decimal
	Count    int
}

// PeriodTotal holds credit and debit totals for a month or a day.
type PeriodTotal struct {
	// Period is YYYY-MM for monthly totals and YYYY-MM-DD for daily ones.
	Period string
	Credit decimal.Decimal
	Debit  decimal.Decimal
	Count  int
}

// Net returns credit minus debit.
func (p PeriodTotal) Net() decimal.Decimal {
	return p.Credit.Sub(p.Debit)
}

// Month returns the records dated in the given calendar month.
func Month(records []model.Record, year int, month time.Month) []model.Record {
	var out []model.Record
	for _, r := range records {
		y, m, _ := r.Date.Date()
		if y == year && m == month {
			out = append(out, r)
		}
	}
	return out
}

// OnDay returns the records dated on day's calendar date, read in day's
// own location.
func OnDay(records []model.Record, day time.Time) []model.Record {
	want := day.Format(time.DateOnly)
	var out []model.Record
	for _, r := range records {
		if r.Day() == want {
			out = append(out, r)
		}
	}
	return out
}

// Between returns records dated from..to inclusive, by calendar day.
func Between(records []model.Record, from, to time.Time) []model.Record {
	lo, hi := from.Format(time.DateOnly), to.Format(time.DateOnly)
	var out []model.Record
	for _, r := range records {
		if d := r.Day(); d >= lo && d <= hi {
			out = append(out, r)
		}
	}
	return out
}

// CategorySummary totals outgoing records dated within the last days days
// of now, grouped by category and sorted by total descending.
func CategorySummary(records []model.Record, days int, now time.Time) []CategoryTotal {
	since := now.Add(-time.Duration(days) * 24 * time.Hour)

	byCat := map[model.Category]*CategoryTotal{}
	var order []model.Category
	for _, r := range records {
		if r.Direction != model.DirectionOutgoing || r.Date.Before(since) {
			continue
		}
		cat := r.Category
		if cat == "" {
			cat = model.CategoryOther
		}
		ct, ok := byCat[cat]
		if !ok {
			ct = &CategoryTotal{Category: cat, Icon: r.CategoryIcon, Color: r.CategoryColor}
			if ct.Icon == "" {
				style := cat.Style()
				ct.Icon, ct.Color = style.Icon, style.Color
			}
			byCat[cat] = ct
			order = append(order, cat)
		}
		ct.Total = ct.Total.Add(r.Amount)
		ct.Count++
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, *byCat[cat])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// MonthlyTotals groups records by YYYY-MM, newest month first, and keeps at
// most n months. n <= 0 keeps all of them.
func MonthlyTotals(records []model.Record, n int) []PeriodTotal {
	return periodTotals(records, model.Record.MonthKey, n)
}

// DailyTotals groups records by calendar day, newest first.
func DailyTotals(records []model.Record) []PeriodTotal {
	return periodTotals(records, model.Record.Day, 0)
}

func periodTotals(records []model.Record, key func(model.Record) string, n int) []PeriodTotal {
	byKey := map[string]*PeriodTotal{}
	for _, r := range records {
		k := key(r)
		pt, ok := byKey[k]
		if !ok {
			pt = &PeriodTotal{Period: k}
			byKey[k] = pt
		}
		switch r.Direction {
		case model.DirectionIncoming:
			pt.Credit = pt.Credit.Add(r.Amount)
		case model.DirectionOutgoing:
			pt.Debit = pt.Debit.Add(r.Amount)
		}
		pt.Count++
	}

	out := make([]PeriodTotal, 0, len(byKey))
	for _, pt := range byKey {
		out = append(out, *pt)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Period > out[j].Period
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
