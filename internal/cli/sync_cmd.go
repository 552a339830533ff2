package cli

import (
	"fmt"

	"github.com/alexanderramin/timesheet/internal/cli/formatter"
	"github.com/alexanderramin/timesheet/internal/contract"
	"github.com/spf13/cobra"
)

func newSyncCmd(holder *appHolder) *cobra.Command {
	var horizon int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Download entries from Clockwork and Jira into the local timesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := holder.app.Sync.Sync(cmd.Context(), contract.SyncRequest{Horizon: horizon})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSyncSummary(res))
			return nil
		},
	}

	addHorizonFlag(cmd.Flags(), &horizon, 1, "how many days to go back when synchronizing time entries")

	return cmd
}
