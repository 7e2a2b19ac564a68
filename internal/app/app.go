// Package app provides dependency injection for the expense tracker. It
// centralizes the creation and wiring of all application dependencies, making
// them explicit and testable.
package app

import (
	"fmt"

	"github.com/YashG504/expense-tracker/internal/categories"
	"github.com/YashG504/expense-tracker/internal/config"
	"github.com/YashG504/expense-tracker/internal/kvstore"
	"github.com/YashG504/expense-tracker/internal/ledger"
	"github.com/YashG504/expense-tracker/internal/logging"
	"github.com/YashG504/expense-tracker/internal/receipt"
	"github.com/YashG504/expense-tracker/internal/report"
)

// App holds all application dependencies and provides methods to access them.
// It is immutable after creation: fields are private and reached only through
// getters, so nothing can rewire a dependency after initialization.
type App struct {
	config   *config.Config
	logger   logging.Logger
	store    kvstore.Store
	ledger   *ledger.Ledger
	resolver *categories.Resolver
	reports  *report.Generator
	receipts *receipt.Scanner
}

// New creates and wires all application dependencies. The ledger comes back
// hydrated from the state file.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))

	store, err := kvstore.OpenFileStore(kvstore.DefaultPath(cfg.Data.Directory), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	ldg := ledger.New(store, logger)
	ldg.Load()

	return &App{
		config:   cfg,
		logger:   logger,
		store:    store,
		ledger:   ldg,
		resolver: categories.LoadResolver(cfg.Categories.File, logger),
		reports:  report.NewGenerator(logger),
		receipts: receipt.NewScanner(logger),
	}, nil
}

// Config returns the application configuration.
func (a *App) Config() *config.Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() logging.Logger { return a.logger }

// Store returns the key-value state store.
func (a *App) Store() kvstore.Store { return a.store }

// Ledger returns the hydrated expense ledger.
func (a *App) Ledger() *ledger.Ledger { return a.ledger }

// Categories returns the category resolver used for manual entry.
func (a *App) Categories() *categories.Resolver { return a.resolver }

// Reports returns the report generator.
func (a *App) Reports() *report.Generator { return a.reports }

// Receipts returns the receipt scanner.
func (a *App) Receipts() *receipt.Scanner { return a.receipts }
