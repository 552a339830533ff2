package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/spf13/cobra"
)

func newCreateCmd(holder *appHolder) *cobra.Command {
	var ticket, day string

	cmd := &cobra.Command{
		Use:   "create <project> <minutes> <description>",
		Short: "Create a time entry manually",
		Long: "Create a time entry manually. With no arguments on an interactive\n" +
			"terminal, opens a form collecting the same fields.",
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := holder.app

			req := contract.CreateEntryRequest{Ticket: ticket, Day: day}
			switch {
			case len(args) == 0 && app.IsInteractive != nil && app.IsInteractive():
				if err := runCreateForm(&req); err != nil {
					return err
				}
			case len(args) == 3:
				minutes, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("parsing minutes %q: %w", args[1], err)
				}
				req.Project = args[0]
				req.Minutes = minutes
				req.Description = args[2]
			default:
				return fmt.Errorf("requires <project> <minutes> <description> arguments")
			}

			if _, err := app.Entries.Create(cmd.Context(), req); err != nil {
				return err
			}
			return printLatest(cmd, app, 0)
		},
	}

	cmd.Flags().StringVar(&ticket, "ticket", "", "the ticket this is reported on (usually empty: ticketed work is logged on the ticket)")
	cmd.Flags().StringVar(&day, "day", "", "the day on which this entry should be stored, defaults to today")

	return cmd
}

func newRemoveCmd(holder *appHolder) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the latest created time entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := holder.app.Entries.RemoveLast(cmd.Context()); err != nil {
				return err
			}
			return printLatest(cmd, holder.app, 0)
		},
	}
}
