package categories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YashG504/expense-tracker/internal/logging"
	"github.com/YashG504/expense-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSynonyms(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolver_BuiltinRules(t *testing.T) {
	r := NewResolver(logging.NewMockLogger())

	assert.Equal(t, models.CategoryGroceries, r.Resolve("weekly groceries run"))
	assert.Equal(t, models.CategoryFood, r.Resolve("FOOD court"))
	assert.Equal(t, models.CategoryOther, r.Resolve("mystery purchase"))
	assert.Equal(t, models.CategoryOther, r.Resolve(""))
}

func TestResolver_ScanOrderWins(t *testing.T) {
	r := NewResolver(logging.NewMockLogger())

	// Bills appears first in the text but Food comes first in the scan order.
	assert.Equal(t, models.CategoryFood, r.Resolve("bills and food"))
}

func TestLoadResolver_Synonyms(t *testing.T) {
	path := writeSynonyms(t, `
categories:
  - name: Transport
    keywords: [uber, taxi]
  - name: Food
    keywords: ["  Coffee  "]
`)
	r := LoadResolver(path, logging.NewMockLogger())

	assert.Equal(t, models.CategoryTransport, r.Resolve("UBER downtown"))
	assert.Equal(t, models.CategoryFood, r.Resolve("morning coffee"))
}

func TestLoadResolver_BuiltinBeatsSynonym(t *testing.T) {
	path := writeSynonyms(t, `
categories:
  - name: Transport
    keywords: [uber]
`)
	r := LoadResolver(path, logging.NewMockLogger())

	// A category name in the text always wins over a loaded synonym.
	assert.Equal(t, models.CategoryBills, r.Resolve("uber bills"))
}

func TestLoadResolver_UnknownCategorySkipped(t *testing.T) {
	path := writeSynonyms(t, `
categories:
  - name: Crypto
    keywords: [bitcoin]
`)
	logger := logging.NewMockLogger()
	r := LoadResolver(path, logger)

	assert.Equal(t, models.CategoryOther, r.Resolve("bitcoin dip"))
	assert.True(t, logger.HasEntry("WARN", "Skipping synonyms for unknown category"))
}

func TestLoadResolver_MissingFileFallsBack(t *testing.T) {
	logger := logging.NewMockLogger()
	r := LoadResolver(filepath.Join(t.TempDir(), "absent.yaml"), logger)

	assert.Equal(t, models.CategoryFood, r.Resolve("food"))
	assert.Empty(t, logger.EntriesByLevel("WARN"), "a missing file is not worth a warning")
}

func TestLoadResolver_CorruptFileFallsBack(t *testing.T) {
	path := writeSynonyms(t, "categories: [not: {valid")
	logger := logging.NewMockLogger()
	r := LoadResolver(path, logger)

	assert.Equal(t, models.CategoryOther, r.Resolve("uber"))
	assert.NotEmpty(t, logger.EntriesByLevel("WARN"))
}
