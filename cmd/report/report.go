// Package report contains the command for exporting expense reports.
package report

import (
	"fmt"
	"os"

	"github.com/YashG504/expense-tracker/cmd/root"

	"github.com/spf13/cobra"
)

var (
	format string
	output string

	// Cmd is the report command.
	Cmd = &cobra.Command{
		Use:   "report",
		Short: "Export the expense log as a report",
		Long: `Export a snapshot of the log with its summary figures. Text is for reading,
JSON keeps the full structure, CSV is one row per expense for spreadsheets.`,
		RunE: runReport,
	}
)

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: text, json or csv (default from config)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
	if format == "" {
		format = root.Application.Config().Report.Format
	}

	ledger := root.Application.Ledger()
	generator := root.Application.Reports()

	data, err := generator.Render(generator.Build(ledger.Budget(), ledger.Expenses()), format)
	if err != nil {
		return err
	}

	if output == "" {
		cmd.Print(string(data))
		return nil
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	cmd.Printf("Report written to %s\n", output)
	return nil
}
