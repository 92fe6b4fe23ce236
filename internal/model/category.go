package model

import "strings"

// Category is a spending classification used for budgeting and reports.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryShopping      Category = "Shopping"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryUtilities     Category = "Utilities"
	CategoryEMI           Category = "EMI"
	CategorySubscriptions Category = "Subscriptions"
	CategoryCash          Category = "Cash"
	CategoryIncome        Category = "Income"
	CategoryOther         Category = "Other"
)

// CategoryStyle is the display metadata stored alongside a record.
type CategoryStyle struct {
	Icon  string
	Color string
}

var categoryStyles = map[Category]CategoryStyle{
	CategoryFood:          {Icon: "🍔", Color: "#f97316"},
	CategoryShopping:      {Icon: "🛍️", Color: "#8b5cf6"},
	CategoryTransport:     {Icon: "🚗", Color: "#0ea5e9"},
	CategorySubscriptions: {Icon: "📺", Color: "#ec4899"},
	CategoryHealthcare:    {Icon: "🏥", Color: "#10b981"},
	CategoryUtilities:     {Icon: "💡", Color: "#f59e0b"},
	CategoryIncome:        {Icon: "💼", Color: "#22c55e"},
	CategoryCash:          {Icon: "💵", Color: "#6b7280"},
	CategoryEducation:     {Icon: "📚", Color: "#a855f7"},
	CategoryEntertainment: {Icon: "🎬", Color: "#f43f5e"},
	CategoryEMI:           {Icon: "🏦", Color: "#64748b"},
	CategoryOther:         {Icon: "📌", Color: "#9ca3af"},
}

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood, CategoryShopping, CategoryTransport, CategorySubscriptions,
	CategoryHealthcare, CategoryUtilities, CategoryIncome, CategoryCash,
	CategoryEducation, CategoryEntertainment, CategoryEMI, CategoryOther,
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	_, ok := categoryStyles[c]
	return ok
}

// Style returns the icon and colour for c, falling back to Other's.
func (c Category) Style() CategoryStyle {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return categoryStyles[CategoryOther]
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}
