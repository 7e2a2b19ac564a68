// Package budget contains the command for viewing and setting the budget
// ceiling.
package budget

import (
	"fmt"

	"github.com/YashG504/expense-tracker/cmd/root"
	"github.com/YashG504/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

// Cmd is the budget command.
var Cmd = &cobra.Command{
	Use:   "budget [amount]",
	Short: "Show or set the budget ceiling",
	Long: `Show the current budget ceiling, or set a new one when an amount is given.
The ceiling is a plain number the summaries compare spending against; changing
it never touches recorded expenses.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBudget,
}

func runBudget(cmd *cobra.Command, args []string) error {
	ledger := root.Application.Ledger()

	if len(args) == 0 {
		cmd.Printf("Budget: %s\n", ledger.Budget().StringFixed(2))
		return nil
	}

	amount, err := models.ParseAmountStrict(args[0])
	if err != nil {
		return fmt.Errorf("invalid budget amount %q: %w", args[0], err)
	}

	ledger.SetBudget(amount)
	cmd.Printf("Budget set to %s\n", amount.StringFixed(2))
	return nil
}
