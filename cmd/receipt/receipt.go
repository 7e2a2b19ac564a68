// Package receipt contains the placeholder command for receipt scanning.
package receipt

import (
	"github.com/YashG504/expense-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd is the receipt command.
var Cmd = &cobra.Command{
	Use:   "receipt <image>",
	Short: "Scan a receipt (coming soon)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println(root.Application.Receipts().Acknowledge(args[0]))
		return nil
	},
}
