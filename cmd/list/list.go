// Package list contains the command for printing the expense log.
package list

import (
	"github.com/YashG504/expense-tracker/cmd/root"

	"github.com/spf13/cobra"
)

var category string

// Cmd is the list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	RunE:  runList,
}

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only show this category")
}

func runList(cmd *cobra.Command, args []string) error {
	expenses := root.Application.Ledger().Expenses()
	if len(expenses) == 0 {
		cmd.Println("No expenses recorded.")
		return nil
	}

	for _, expense := range expenses {
		if category != "" && expense.Category != category {
			continue
		}
		cmd.Printf("%s  %s  %-14s %8s  %s\n",
			expense.ID,
			expense.Date.Format("2006-01-02"),
			expense.Category,
			expense.Amount.StringFixed(2),
			expense.Description)
	}
	return nil
}
