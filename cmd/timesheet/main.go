package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/timesheet/internal/cli"
	"github.com/alexanderramin/timesheet/internal/clockwork"
	"github.com/alexanderramin/timesheet/internal/config"
	"github.com/alexanderramin/timesheet/internal/db"
	"github.com/alexanderramin/timesheet/internal/jira"
	"github.com/alexanderramin/timesheet/internal/repository"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := cli.NewRootCmd(newApp)
	return rootCmd.Execute()
}

// newApp loads the configuration and wires the database, external clients
// and services. Called by the root command after flag parsing so the
// --config value is known.
func newApp(configPath string) (*cli.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	database, err := db.OpenDB(cfg.DB.Name)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Use-case telemetry goes to stderr when enabled; stdout stays
	// reserved for the report output.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("TIMESHEET_LOG") == "1" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	entryRepo := repository.NewSQLiteTimeEntryRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	clockworkClient := clockwork.NewClient(cfg.Clockwork, cfg.Jira.AccountID)
	jiraClient := jira.NewClient(cfg.Jira)

	return &cli.App{
		Sync:    service.NewSyncService(clockworkClient, jiraClient, uow, observer),
		Reports: service.NewReportService(entryRepo, observer),
		Entries: service.NewEntryService(entryRepo, observer),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		Close: database.Close,
	}, nil
}
