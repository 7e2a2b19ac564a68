// Package voice turns free-text speech transcripts into draft expenses.
//
// Parsing is a pure function of the transcript: no side effects, no state.
// A transcript with no amount token produces no draft at all.
package voice

import (
	"regexp"
	"strings"

	"github.com/YashG504/expense-tracker/internal/models"
)

// amountPattern matches a decimal number, optionally with exactly two
// fractional digits, followed by optional whitespace and a unit marker.
// Only the leftmost match is used; additional amounts in the transcript are
// treated as ordinary words.
var amountPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d{2})?)\s*(?:dollars?|bucks?|\$)`)

// fillerPattern strips command words that carry no meaning for the
// description ("add 20 bucks for coffee" -> "coffee").
var fillerPattern = regexp.MustCompile(`(?i)\b(add|for|spent|expense)\b`)

// Parse extracts a draft expense from a transcript. It returns false when the
// transcript contains no amount token, in which case no partial draft is
// produced.
func Parse(transcript string) (models.DraftExpense, bool) {
	loc := amountPattern.FindStringSubmatchIndex(transcript)
	if loc == nil {
		return models.DraftExpense{}, false
	}

	// loc[0]:loc[1] is the full "<number> <marker>" token, loc[2]:loc[3] the
	// bare number.
	amount := transcript[loc[2]:loc[3]]
	category, keyword := scanCategory(transcript)

	description := transcript[:loc[0]] + transcript[loc[1]:]
	description = fillerPattern.ReplaceAllString(description, "")
	if keyword != "" {
		description = keywordPattern(keyword).ReplaceAllString(description, "")
	}
	description = strings.Join(strings.Fields(description), " ")
	if description == "" {
		description = category
	}

	return models.DraftExpense{
		Amount:      amount,
		Category:    category,
		Description: description,
	}, true
}

// scanCategory resolves the transcript to a category by the fixed keyword
// scan order. The first keyword present anywhere in the text wins, regardless
// of where it appears; the matched keyword is returned so the caller can
// strip it from the description. No match resolves to Other with an empty
// keyword.
func scanCategory(transcript string) (category, keyword string) {
	lower := strings.ToLower(transcript)
	for _, name := range models.CategoryScanOrder {
		kw := strings.ToLower(name)
		if strings.Contains(lower, kw) {
			return name, kw
		}
	}
	return models.CategoryOther, ""
}

func keywordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}
