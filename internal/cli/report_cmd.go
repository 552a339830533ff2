package cli

import (
	"fmt"

	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/spf13/cobra"
)

func newReportCmd(holder *appHolder) *cobra.Command {
	var horizon int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report hours worked per project and per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := holder.app.Reports.Report(cmd.Context(), contract.ReportRequest{Horizon: horizon})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(resp))
			return nil
		},
	}

	addHorizonFlag(cmd.Flags(), &horizon, 3, "how many days to go back")

	return cmd
}

func newLatestCmd(holder *appHolder) *cobra.Command {
	var horizon int

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the latest time entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printLatest(cmd, holder.app, horizon)
		},
	}

	addHorizonFlag(cmd.Flags(), &horizon, 0, "how many days to go back")

	return cmd
}
