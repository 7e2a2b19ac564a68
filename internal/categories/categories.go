// Package categories resolves free text to an expense category. The built-in
// rules match the enumerated category names themselves; an optional
// categories.yaml adds synonym keywords per category for manual entry
// ("uber" -> Transport). The synonym file never affects voice parsing, which
// deliberately stays keyed on the category names alone.
package categories

import (
	"os"
	"strings"

	"github.com/YashG504/expense-tracker/internal/logging"
	"github.com/YashG504/expense-tracker/internal/models"

	"gopkg.in/yaml.v3"
)

// synonymsFile is the on-disk shape of categories.yaml:
//
//	categories:
//	  - name: Transport
//	    keywords: [uber, taxi, fuel]
type synonymsFile struct {
	Categories []categoryEntry `yaml:"categories"`
}

type categoryEntry struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// synonym is one loaded keyword rule. Rules are kept in file order so
// resolution is deterministic when several keywords match.
type synonym struct {
	keyword  string
	category string
}

// Resolver maps free text to one of the enumerated categories.
type Resolver struct {
	synonyms []synonym
	logger   logging.Logger
}

// NewResolver creates a resolver with only the built-in rules.
func NewResolver(logger logging.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// LoadResolver creates a resolver and merges synonyms from the YAML file at
// path. A missing or unreadable file is logged and yields the built-in rules
// only; entries naming an unknown category are skipped.
func LoadResolver(path string, logger logging.Logger) *Resolver {
	r := NewResolver(logger)
	if path == "" {
		return r
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).WithField("path", path).
				Warn("Failed to read categories file, using built-in rules")
		}
		return r
	}

	var file synonymsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		logger.WithError(err).WithField("path", path).
			Warn("Categories file is not valid YAML, using built-in rules")
		return r
	}

	loaded := 0
	for _, entry := range file.Categories {
		if !models.IsKnownCategory(entry.Name) {
			logger.WithField("category", entry.Name).
				Warn("Skipping synonyms for unknown category")
			continue
		}
		for _, keyword := range entry.Keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword == "" {
				continue
			}
			r.synonyms = append(r.synonyms, synonym{keyword: keyword, category: entry.Name})
			loaded++
		}
	}
	logger.WithFields(
		logging.Field{Key: "path", Value: path},
		logging.Field{Key: "keywords", Value: loaded},
	).Debug("Category synonyms loaded")
	return r
}

// Resolve maps text to a category. Built-in category names are checked first
// in the fixed scan order, then loaded synonyms; text matching nothing
// resolves to Other.
func (r *Resolver) Resolve(text string) string {
	lower := strings.ToLower(text)
	for _, category := range models.CategoryScanOrder {
		if strings.Contains(lower, strings.ToLower(category)) {
			return category
		}
	}
	for _, s := range r.synonyms {
		if strings.Contains(lower, s.keyword) {
			return s.category
		}
	}
	return models.CategoryOther
}
