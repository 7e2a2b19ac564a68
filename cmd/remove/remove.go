// Package remove contains the command for deleting an expense from the log.
package remove

import (
	"github.com/YashG504/expense-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd is the remove command.
var Cmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an expense by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := args[0]
	if root.Application.Ledger().RemoveByID(id) {
		cmd.Printf("Removed expense %s\n", id)
	} else {
		cmd.Printf("No expense with id %s\n", id)
	}
	return nil
}
