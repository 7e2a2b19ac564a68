// Package report renders the expense log into shareable formats.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/YashG504/expense-tracker/internal/aggregate"
	"github.com/YashG504/expense-tracker/internal/logging"
	"github.com/YashG504/expense-tracker/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Report is a point-in-time snapshot of the log with its summary figures.
type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Budget      decimal.Decimal  `json:"budget"`
	Total       decimal.Decimal  `json:"total"`
	Remaining   decimal.Decimal  `json:"remaining"`
	Expenses    []models.Expense `json:"expenses"`
}

// Generator renders reports in the supported formats.
type Generator struct {
	logger logging.Logger
	now    func() time.Time
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{logger: logger, now: time.Now}
}

// Build assembles a snapshot of the given log and budget.
func (g *Generator) Build(budget decimal.Decimal, expenses []models.Expense) Report {
	return Report{
		GeneratedAt: g.now(),
		Budget:      budget,
		Total:       aggregate.Total(expenses),
		Remaining:   aggregate.Remaining(budget, expenses),
		Expenses:    expenses,
	}
}

// Render serializes the report in the given format.
func (g *Generator) Render(report Report, format string) ([]byte, error) {
	switch format {
	case FormatText:
		return g.renderText(report), nil
	case FormatJSON:
		return g.renderJSON(report)
	case FormatCSV:
		return g.renderCSV(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// renderText produces the human-readable summary: the headline figures, the
// per-category breakdown, then every record.
func (g *Generator) renderText(report Report) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "Expense report, %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Budget:    %s\n", report.Budget.StringFixed(2))
	fmt.Fprintf(&b, "Spent:     %s\n", report.Total.StringFixed(2))
	fmt.Fprintf(&b, "Remaining: %s\n", report.Remaining.StringFixed(2))

	if sums := aggregate.ByCategory(report.Expenses); len(sums) > 0 {
		b.WriteString("\nBy category:\n")
		for _, sum := range sums {
			fmt.Fprintf(&b, "  %-14s %s\n", sum.Category, sum.Total.StringFixed(2))
		}
	}

	if len(report.Expenses) > 0 {
		b.WriteString("\nExpenses:\n")
		for _, expense := range report.Expenses {
			fmt.Fprintf(&b, "  %s  %-14s %8s  %s\n",
				expense.Date.Format("2006-01-02"),
				expense.Category,
				expense.Amount.StringFixed(2),
				expense.Description)
		}
	}

	return []byte(b.String())
}

func (g *Generator) renderJSON(report Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

// renderCSV emits one row per expense. The summary figures have no place in a
// flat table and are left to the other formats.
func (g *Generator) renderCSV(report Report) ([]byte, error) {
	expenses := report.Expenses
	if expenses == nil {
		expenses = []models.Expense{}
	}
	data, err := gocsv.MarshalString(&expenses)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return []byte(data), nil
}
