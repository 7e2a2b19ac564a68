// Package theme contains the command for the persisted display preference.
package theme

import (
	"fmt"
	"strconv"

	"github.com/YashG504/expense-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd is the theme command.
var Cmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Show or set the display theme",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	ledger := root.Application.Ledger()

	if len(args) == 0 {
		cmd.Printf("Theme: %s\n", themeName(ledger.DarkMode()))
		return nil
	}

	switch args[0] {
	case "dark":
		ledger.SetDarkMode(true)
	case "light":
		ledger.SetDarkMode(false)
	default:
		// Accept booleans too for scripted use.
		enabled, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("unknown theme %q, want dark or light", args[0])
		}
		ledger.SetDarkMode(enabled)
	}

	cmd.Printf("Theme set to %s\n", themeName(ledger.DarkMode()))
	return nil
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
