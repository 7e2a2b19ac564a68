// Package models defines the core data types of the expense tracker.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category names form a closed set. Every finalized expense carries exactly
// one of these values.
const (
	CategoryFood          = "Food"
	CategoryGroceries     = "Groceries"
	CategoryTransport     = "Transport"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills"
	CategoryHealth        = "Health"
	CategoryOther         = "Other"
)

// CategoryScanOrder is the fixed priority sequence used to resolve free text
// to a single category. The first keyword found in the text, by this order
// (not by position in the text), wins.
var CategoryScanOrder = []string{
	CategoryFood,
	CategoryGroceries,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryBills,
	CategoryHealth,
	CategoryOther,
}

// Expense is a finalized record in the expense log. Records are immutable
// after creation; the log supports only append and remove-by-id.
type Expense struct {
	ID          string          `json:"id" csv:"id"`
	Amount      decimal.Decimal `json:"amount" csv:"amount"`
	Category    string          `json:"category" csv:"category"`
	Description string          `json:"description" csv:"description"`
	Date        time.Time       `json:"date" csv:"date"`
}

// DraftExpense is an unconfirmed expense candidate, produced either by manual
// form input or by the voice command parser. It becomes an Expense only on
// explicit confirmation, when the amount is coerced to a number and the
// creation date is stamped.
type DraftExpense struct {
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// IsValid reports whether the draft carries enough data to be confirmed.
// A draft without an amount or category is silently dropped by callers.
func (d DraftExpense) IsValid() bool {
	return strings.TrimSpace(d.Amount) != "" && strings.TrimSpace(d.Category) != ""
}

// CoerceCategory maps free text to one of the enumerated categories by
// scanning for category keywords in the fixed scan order and capitalizing the
// first match. Text that matches nothing resolves to Other.
func CoerceCategory(text string) string {
	lower := strings.ToLower(text)
	for _, category := range CategoryScanOrder {
		if strings.Contains(lower, strings.ToLower(category)) {
			return category
		}
	}
	return CategoryOther
}

// IsKnownCategory reports whether name is exactly one of the enumerated
// category values.
func IsKnownCategory(name string) bool {
	for _, category := range CategoryScanOrder {
		if category == name {
			return true
		}
	}
	return false
}

// ParseAmount converts a string to a decimal amount, returning zero for
// unparseable input. Use ParseAmountStrict when the caller needs to reject
// bad input instead.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmountStrict converts a string to a decimal amount.
func ParseAmountStrict(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}
