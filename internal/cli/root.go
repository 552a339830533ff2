package cli

import (
	"fmt"

	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the service interfaces used by CLI commands.
type App struct {
	Sync    service.SyncService
	Reports service.ReportService
	Entries service.EntryService

	// IsInteractive reports whether stdin is a terminal; the create
	// command uses it to decide whether to open the entry form.
	IsInteractive func() bool

	// Close releases the underlying database handle.
	Close func() error
}

// AppFactory builds an App once the global --config flag has been parsed.
// Commands receive the constructed App through the shared holder.
type AppFactory func(configPath string) (*App, error)

type appHolder struct {
	app *App
}

// NewRootCmd creates the top-level "timesheet" command. Running it with
// no subcommand shows the latest view with horizon 0.
func NewRootCmd(newApp AppFactory) *cobra.Command {
	var configPath string
	holder := &appHolder{}

	root := &cobra.Command{
		Use:          "timesheet",
		Short:        "Reconcile Clockwork and Jira time entries into a local timesheet",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the propagated failure
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(configPath)
			if err != nil {
				return err
			}
			holder.app = app
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if holder.app != nil && holder.app.Close != nil {
				return holder.app.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return printLatest(cmd, holder.app, 0)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "timesheet.ini", "the configuration file")

	root.AddCommand(
		newSyncCmd(holder),
		newReportCmd(holder),
		newLatestCmd(holder),
		newCreateCmd(holder),
		newRemoveCmd(holder),
	)

	return root
}

// addHorizonFlag registers the shared --horizon flag with a per-command
// default.
func addHorizonFlag(flags *pflag.FlagSet, p *int, def int, usage string) {
	flags.IntVar(p, "horizon", def, usage)
}

// printLatest renders the latest view for the given horizon. It is the
// default command output and the trailing display of every mutation.
func printLatest(cmd *cobra.Command, app *App, horizon int) error {
	resp, err := app.Reports.Latest(cmd.Context(), contract.ReportRequest{Horizon: horizon})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLatest(resp))
	return nil
}
