// Package aggregate computes summaries over an expense log. All functions are
// pure: they recompute from the full log on every call and never cache.
package aggregate

import (
	"time"

	"github.com/YashG504/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// monthKeyFormat renders a date as its short month name ("Jan"). Months from
// different years share a bucket; the log is short-lived enough that this is
// the intended grouping, not an oversight.
const monthKeyFormat = "Jan"

// CategorySum is one category's share of the log.
type CategorySum struct {
	Category string
	Total    decimal.Decimal
}

// MonthSum is one calendar month's share of the log.
type MonthSum struct {
	Month string
	Total decimal.Decimal
}

// Total sums all expense amounts. An empty log totals zero.
func Total(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

// Remaining is the budget minus total spend. It goes negative when the log
// exceeds the budget; nothing clamps it.
func Remaining(budget decimal.Decimal, expenses []models.Expense) decimal.Decimal {
	return budget.Sub(Total(expenses))
}

// PercentUsed is the spend as a percentage of the budget. With a zero budget
// the division has no finite answer, so the result is non-finite (infinity,
// or NaN when the log is also empty); callers that render the value guard for
// that.
func PercentUsed(budget decimal.Decimal, expenses []models.Expense) float64 {
	total, _ := Total(expenses).Float64()
	ceiling, _ := budget.Float64()
	return total / ceiling * 100
}

// CategoryTotal sums the amounts of expenses in the given category.
func CategoryTotal(expenses []models.Expense, category string) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		if expense.Category == category {
			total = total.Add(expense.Amount)
		}
	}
	return total
}

// ByCategory groups the log by category. Buckets appear in the order their
// category first appears in the log.
func ByCategory(expenses []models.Expense) []CategorySum {
	totals := map[string]decimal.Decimal{}
	var order []string
	for _, expense := range expenses {
		if _, ok := totals[expense.Category]; !ok {
			order = append(order, expense.Category)
		}
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
	}

	sums := make([]CategorySum, 0, len(order))
	for _, category := range order {
		sums = append(sums, CategorySum{Category: category, Total: totals[category]})
	}
	return sums
}

// MonthTotal sums the amounts of expenses dated in the given month, regardless
// of year.
func MonthTotal(expenses []models.Expense, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		if expense.Date.Month() == month {
			total = total.Add(expense.Amount)
		}
	}
	return total
}

// ByMonth groups the log by short month name. Buckets appear in the order
// their month first appears in the log.
func ByMonth(expenses []models.Expense) []MonthSum {
	totals := map[string]decimal.Decimal{}
	var order []string
	for _, expense := range expenses {
		key := expense.Date.Format(monthKeyFormat)
		if _, ok := totals[key]; !ok {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(expense.Amount)
	}

	sums := make([]MonthSum, 0, len(order))
	for _, month := range order {
		sums = append(sums, MonthSum{Month: month, Total: totals[month]})
	}
	return sums
}
