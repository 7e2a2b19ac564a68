package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/YashG504/expense-tracker/cmd/add"
	"github.com/YashG504/expense-tracker/cmd/budget"
	"github.com/YashG504/expense-tracker/cmd/list"
	"github.com/YashG504/expense-tracker/cmd/receipt"
	"github.com/YashG504/expense-tracker/cmd/remove"
	"github.com/YashG504/expense-tracker/cmd/report"
	"github.com/YashG504/expense-tracker/cmd/root"
	"github.com/YashG504/expense-tracker/cmd/summary"
	"github.com/YashG504/expense-tracker/cmd/theme"
	"github.com/YashG504/expense-tracker/cmd/voice"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first, then pin the global log
	// level before any logger is created.
	loadEnvSilently()
	configureLogLevelDirectly()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(voice.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(receipt.Cmd)
	root.Cmd.AddCommand(theme.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before any logging happens.
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
