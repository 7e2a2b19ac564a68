// Package add contains the command for recording an expense by hand.
package add

import (
	"fmt"

	"github.com/YashG504/expense-tracker/cmd/root"
	"github.com/YashG504/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

var (
	amount      string
	category    string
	description string

	// Cmd is the add command.
	Cmd = &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Long: `Record an expense in the log. The category is free text and is resolved to
one of the known categories; anything unrecognized lands in Other.`,
		RunE: runAdd,
	}
)

func init() {
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount spent, e.g. 12.50")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Expense category")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "What the money went to")
}

func runAdd(cmd *cobra.Command, args []string) error {
	draft := models.DraftExpense{
		Amount:      amount,
		Category:    category,
		Description: description,
	}

	// An incomplete draft is dropped without an error, matching the
	// confirm-or-discard lifecycle of voice drafts.
	if !draft.IsValid() {
		root.Log.Debug("Draft is missing an amount or category, nothing recorded")
		return nil
	}

	if !models.IsKnownCategory(draft.Category) {
		draft.Category = root.Application.Categories().Resolve(draft.Category)
	}

	expense, err := root.Application.Ledger().Append(draft)
	if err != nil {
		return fmt.Errorf("failed to record expense: %w", err)
	}

	cmd.Printf("Recorded %s for %s (%s), id %s\n",
		expense.Amount.StringFixed(2), expense.Category, expense.Description, expense.ID)
	return nil
}
