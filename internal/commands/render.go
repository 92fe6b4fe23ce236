package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/smsledger/internal/model"
)

var (
	colorCredit = lipgloss.Color("#22c55e")
	colorDebit  = lipgloss.Color("#ef4444")
	colorMuted  = lipgloss.Color("#7f849c")

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// newTable returns a bordered table with the house header style.
// colour, when set, overrides the style of individual body cells.
func newTable(colour func(row, col int) lipgloss.Style, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if colour != nil {
				return colour(row, col)
			}
			return cellStyle
		})
}

func directionStyle(d model.Direction) lipgloss.Style {
	if d == model.DirectionIncoming {
		return cellStyle.Foreground(colorCredit)
	}
	return cellStyle.Foreground(colorDebit)
}

// signedAmount renders "+₹1,200.00" for incoming and "-₹1,200.00" otherwise.
func signedAmount(amount decimal.Decimal, d model.Direction) string {
	if d == model.DirectionIncoming {
		return "+" + rupees(amount)
	}
	return "-" + rupees(amount)
}

// rupees formats amount with the rupee sign and Indian digit grouping
// (last three digits, then pairs): 1234567.5 -> ₹12,34,567.50.
func rupees(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	whole, frac, _ := strings.Cut(amount.StringFixed(2), ".")

	var groups []string
	if len(whole) > 3 {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		groups = append(groups, tail)
	} else {
		groups = []string{whole}
	}
	return sign + "₹" + strings.Join(groups, ",") + "." + frac
}

func categoryLabel(icon string, cat model.Category) string {
	if icon == "" {
		icon = cat.Style().Icon
	}
	return icon + " " + string(cat)
}

// recordsTable renders records one per row.
func recordsTable(records []model.Record) string {
	t := newTable(func(row, col int) lipgloss.Style {
		if col == 2 {
			return directionStyle(records[row].Direction)
		}
		return cellStyle
	}, "Date", "Type", "Amount", "Merchant", "Category", "Bank", "Mode", "ID")

	for _, r := range records {
		t.Row(
			r.Day(),
			string(r.Direction),
			signedAmount(r.Amount, r.Direction),
			r.Merchant,
			categoryLabel(r.CategoryIcon, r.Category),
			string(r.Bank),
			string(r.PaymentMode),
			r.ID,
		)
	}
	return t.String()
}
