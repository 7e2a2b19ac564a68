package voice

import (
	"testing"

	"github.com/YashG504/expense-tracker/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected models.DraftExpense
		ok       bool
	}{
		{
			name:  "amount with category and description",
			input: "add 45.50 dollars for groceries shopping",
			expected: models.DraftExpense{
				Amount:      "45.50",
				Category:    models.CategoryGroceries,
				Description: "shopping",
			},
			ok: true,
		},
		{
			name:  "bare amount falls back to Other everywhere",
			input: "20 bucks",
			expected: models.DraftExpense{
				Amount:      "20",
				Category:    models.CategoryOther,
				Description: models.CategoryOther,
			},
			ok: true,
		},
		{
			name:  "dollar symbol as unit marker",
			input: "spent 12$ on bus transport",
			expected: models.DraftExpense{
				Amount:      "12",
				Category:    models.CategoryTransport,
				Description: "on bus",
			},
			ok: true,
		},
		{
			name:  "singular buck",
			input: "1 buck for food",
			expected: models.DraftExpense{
				Amount:      "1",
				Category:    models.CategoryFood,
				Description: models.CategoryFood,
			},
			ok: true,
		},
		{
			name:  "scan order wins over text position",
			input: "add 30 dollars bills before food",
			expected: models.DraftExpense{
				Amount:      "30",
				Category:    models.CategoryFood,
				Description: "bills before",
			},
			ok: true,
		},
		{
			name:  "leftmost amount token wins",
			input: "add 5 dollars then 9 dollars for health",
			expected: models.DraftExpense{
				Amount:      "5",
				Category:    models.CategoryHealth,
				Description: "then 9 dollars",
			},
			ok: true,
		},
		{
			name:  "filler words stripped case-insensitively",
			input: "ADD 8.25 DOLLARS SPENT FOR entertainment",
			expected: models.DraftExpense{
				Amount:      "8.25",
				Category:    models.CategoryEntertainment,
				Description: models.CategoryEntertainment,
			},
			ok: true,
		},
		{
			name:  "filler inside a longer word survives",
			input: "7 dollars format fee bills",
			expected: models.DraftExpense{
				Amount:      "7",
				Category:    models.CategoryBills,
				Description: "format fee",
			},
			ok: true,
		},
		{
			name:  "no unit marker means no match",
			input: "add 45.50 for groceries",
			ok:    false,
		},
		{
			name:  "no number means no match",
			input: "add some dollars for food",
			ok:    false,
		},
		{
			name:  "empty transcript",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, ok := Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, draft)
			} else {
				assert.Zero(t, draft)
			}
		})
	}
}

func TestParse_AmountStringIsExact(t *testing.T) {
	// The extracted amount string preserves the spoken precision.
	draft, ok := Parse("19.99 dollars shopping")
	assert.True(t, ok)
	assert.Equal(t, "19.99", draft.Amount)

	draft, ok = Parse("100 dollars shopping")
	assert.True(t, ok)
	assert.Equal(t, "100", draft.Amount)
}

func TestParse_IsDeterministic(t *testing.T) {
	input := "add 45.50 dollars for groceries shopping"
	first, ok := Parse(input)
	assert.True(t, ok)
	for i := 0; i < 5; i++ {
		next, ok := Parse(input)
		assert.True(t, ok)
		assert.Equal(t, first, next)
	}
}
