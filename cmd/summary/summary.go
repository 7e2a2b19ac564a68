// Package summary contains the command for printing spending summaries.
package summary

import (
	"math"

	"github.com/YashG504/expense-tracker/cmd/root"
	"github.com/YashG504/expense-tracker/internal/aggregate"

	"github.com/spf13/cobra"
)

var byMonth bool

// Cmd is the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize spending against the budget",
	RunE:  runSummary,
}

func init() {
	Cmd.Flags().BoolVarP(&byMonth, "by-month", "m", false, "Group totals by month instead of category")
}

func runSummary(cmd *cobra.Command, args []string) error {
	ledger := root.Application.Ledger()
	expenses := ledger.Expenses()
	budget := ledger.Budget()

	cmd.Printf("Budget:    %s\n", budget.StringFixed(2))
	cmd.Printf("Spent:     %s\n", aggregate.Total(expenses).StringFixed(2))
	cmd.Printf("Remaining: %s\n", aggregate.Remaining(budget, expenses).StringFixed(2))

	// With no budget set the percentage is not a finite number; printing
	// "Inf%" helps nobody.
	percent := aggregate.PercentUsed(budget, expenses)
	if math.IsInf(percent, 0) || math.IsNaN(percent) {
		cmd.Println("Used:      - (no budget set)")
	} else {
		cmd.Printf("Used:      %.1f%%\n", percent)
	}

	if byMonth {
		for _, sum := range aggregate.ByMonth(expenses) {
			cmd.Printf("  %-14s %s\n", sum.Month, sum.Total.StringFixed(2))
		}
		return nil
	}

	for _, sum := range aggregate.ByCategory(expenses) {
		cmd.Printf("  %-14s %s\n", sum.Category, sum.Total.StringFixed(2))
	}
	return nil
}
