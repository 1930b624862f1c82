package commands

import (
	"github.com/spf13/cobra"

	"shopadmin/internal/view"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the pending shopkeepers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			return view.Dashboard(cmd.OutOrStdout(), appCtx.Panel.Snapshot())
		},
	}
}
