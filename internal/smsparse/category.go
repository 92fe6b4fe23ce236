package smsparse

import (
	"regexp"

	"github.com/cleared-dev/smsledger/internal/model"
)

// CategoryRule maps a pattern to a spending category.
type CategoryRule struct {
	Pattern  *regexp.Regexp
	Category model.Category
}

var categoryRules = []CategoryRule{
	{regexp.MustCompile(`(?i)swiggy|zomato|food|restaurant|cafe|dominos|mcdonald|pizza|biryani`), model.CategoryFood},
	{regexp.MustCompile(`(?i)amazon|flipkart|myntra|shop|store|mart|mall|retail|meesho|ajio`), model.CategoryShopping},
	{regexp.MustCompile(`(?i)uber|ola|rapido|irctc|bus|metro|auto|petrol|fuel|parking|train|flight`), model.CategoryTransport},
	{regexp.MustCompile(`(?i)netflix|prime|hotstar|spotify|game|cinema|movie|pvr|inox`), model.CategoryEntertainment},
	{regexp.MustCompile(`(?i)hospital|clinic|pharmacy|medical|doctor|health|apollo`), model.CategoryHealthcare},
	{regexp.MustCompile(`(?i)school|college|university|tuition|course|fee|exam`), model.CategoryEducation},
	{regexp.MustCompile(`(?i)electricity|water|gas|internet|airtel|jio|recharge|bill`), model.CategoryUtilities},
	{regexp.MustCompile(`(?i)emi|loan|equated|mortgage|installment`), model.CategoryEMI},
}

// CategoryRules returns a copy of the category table in priority order.
func CategoryRules() []CategoryRule {
	return append([]CategoryRule(nil), categoryRules...)
}

// ClassifyCategory files an outgoing transaction by the first rule matching
// either the raw text or the merchant. Incoming transactions are always Income.
func ClassifyCategory(text, merchant string, dir model.Direction) model.Category {
	if dir == model.DirectionIncoming {
		return model.CategoryIncome
	}
	for _, r := range categoryRules {
		if r.Pattern.MatchString(text) || (merchant != "" && r.Pattern.MatchString(merchant)) {
			return r.Category
		}
	}
	return model.CategoryOther
}
