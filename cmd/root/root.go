// Package root contains the root command for the application.
package root

import (
	"github.com/YashG504/expense-tracker/internal/app"
	"github.com/YashG504/expense-tracker/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Application is the wired dependency container, available to every
	// subcommand after PersistentPreRunE.
	Application *app.App

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "A personal expense tracker with budgets, summaries and voice entry.",
		Long: `expense-tracker keeps a local log of your spending against a monthly budget.
Expenses can be entered by hand or spoken ("add 20 bucks for coffee"), summarized
by category or month, and exported as text, JSON or CSV reports.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-tracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}

			Application, err = app.New(cfg)
			return err
		},
	}
)
