// Package ledger owns the expense log, the single source of truth for all
// summaries. The log is append/delete only; records are never edited in
// place. Every mutation is written through to the key-value store, and a
// failed write is logged but never rolls back the in-memory state.
package ledger

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/YashG504/expense-tracker/internal/kvstore"
	"github.com/YashG504/expense-tracker/internal/logging"
	"github.com/YashG504/expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the authoritative ordered expense log plus the budget ceiling and
// the theme preference. All access goes through its methods; callers never
// mutate the log directly.
type Ledger struct {
	expenses []models.Expense
	budget   decimal.Decimal
	darkMode bool

	store  kvstore.Store
	logger logging.Logger
	now    func() time.Time
}

// New creates an empty ledger backed by the given store. Call Load to hydrate
// persisted state.
func New(store kvstore.Store, logger logging.Logger) *Ledger {
	return &Ledger{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Load hydrates the ledger from the key-value store. Missing keys yield
// defaults; malformed stored content is logged and falls back to defaults
// rather than failing.
func (l *Ledger) Load() {
	if raw, ok := l.store.Get(kvstore.KeyExpenses); ok {
		var records []models.Expense
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			l.logger.WithError(err).Warn("Stored expenses are corrupt, starting with empty log")
		} else {
			l.ReplaceAll(records)
		}
	}

	if raw, ok := l.store.Get(kvstore.KeyBudget); ok {
		budget, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			l.logger.WithError(err).Warn("Stored budget is corrupt, using zero")
		} else {
			l.budget = budget
		}
	}

	if raw, ok := l.store.Get(kvstore.KeyDarkMode); ok {
		l.darkMode, _ = strconv.ParseBool(raw)
	}

	l.logger.WithFields(
		logging.Field{Key: "expenses", Value: len(l.expenses)},
		logging.Field{Key: "budget", Value: l.budget.String()},
	).Debug("Ledger hydrated")
}

// Append finalizes a draft into a record: the amount is coerced to a number,
// the category is normalized to the enumerated set, an empty description
// defaults to the category name, and a fresh id and the current date are
// stamped. The record is appended to the end of the log, preserving all
// existing records and their order.
func (l *Ledger) Append(draft models.DraftExpense) (models.Expense, error) {
	amount, err := models.ParseAmountStrict(draft.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	category := draft.Category
	if !models.IsKnownCategory(category) {
		category = models.CoerceCategory(category)
	}

	description := strings.TrimSpace(draft.Description)
	if description == "" {
		description = category
	}

	expense := models.Expense{
		ID:          uuid.New().String(),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        l.now(),
	}

	l.expenses = append(l.expenses, expense)
	l.persistExpenses()

	l.logger.WithFields(
		logging.Field{Key: "id", Value: expense.ID},
		logging.Field{Key: "amount", Value: expense.Amount.String()},
		logging.Field{Key: "category", Value: expense.Category},
	).Info("Expense recorded")

	return expense, nil
}

// RemoveByID removes the record with the given id, preserving the order of
// the remaining records. Removing an absent id is a no-op, not an error.
func (l *Ledger) RemoveByID(id string) bool {
	for i, expense := range l.expenses {
		if expense.ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			l.persistExpenses()
			l.logger.WithField("id", id).Info("Expense removed")
			return true
		}
	}
	l.logger.WithField("id", id).Debug("Expense not found, nothing removed")
	return false
}

// ReplaceAll bulk-overwrites the log. It bypasses id assignment and is meant
// for hydration from persisted state only.
func (l *Ledger) ReplaceAll(records []models.Expense) {
	l.expenses = make([]models.Expense, len(records))
	copy(l.expenses, records)
}

// Expenses returns a copy of the log in insertion order.
func (l *Ledger) Expenses() []models.Expense {
	out := make([]models.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Budget returns the current budget ceiling.
func (l *Ledger) Budget() decimal.Decimal {
	return l.budget
}

// SetBudget updates the budget ceiling and persists it.
func (l *Ledger) SetBudget(budget decimal.Decimal) {
	l.budget = budget
	if err := l.store.Set(kvstore.KeyBudget, budget.String()); err != nil {
		l.logger.WithError(err).Warn("Failed to persist budget")
	}
}

// DarkMode returns the stored theme preference. The preference is carried for
// rendering collaborators; nothing in the core depends on it.
func (l *Ledger) DarkMode() bool {
	return l.darkMode
}

// SetDarkMode updates the theme preference and persists it.
func (l *Ledger) SetDarkMode(enabled bool) {
	l.darkMode = enabled
	if err := l.store.Set(kvstore.KeyDarkMode, strconv.FormatBool(enabled)); err != nil {
		l.logger.WithError(err).Warn("Failed to persist theme preference")
	}
}

// persistExpenses serializes the log to the key-value store. Failures are
// logged and swallowed: the in-memory log stays consistent and the
// application keeps running.
func (l *Ledger) persistExpenses() {
	data, err := json.Marshal(l.expenses)
	if err != nil {
		l.logger.WithError(err).Warn("Failed to serialize expense log")
		return
	}
	if err := l.store.Set(kvstore.KeyExpenses, string(data)); err != nil {
		l.logger.WithError(err).Warn("Failed to persist expense log")
	}
}
