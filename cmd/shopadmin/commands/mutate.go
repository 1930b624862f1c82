package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shopadmin/internal/domain"
)

func acceptCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "accept [id...]",
		Short: "Verify the given shopkeepers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelection(cmd, args, all, func(ctx context.Context) error {
				return appCtx.Panel.Accept(ctx)
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "select every pending shopkeeper")
	return cmd
}

func deleteCmd() *cobra.Command {
	var all, yes bool
	cmd := &cobra.Command{
		Use:   "delete [id...]",
		Short: "Delete the given shopkeepers after confirmation",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := newPrompter(cmd)
			in.auto = yes
			return runSelection(cmd, args, all, func(ctx context.Context) error {
				return appCtx.Panel.Delete(ctx, in)
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "select every pending shopkeeper")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// runSelection restores the session, selects ids (or everything) and runs
// action, printing the resulting status message.
func runSelection(cmd *cobra.Command, ids []string, all bool, action func(context.Context) error) error {
	if all && len(ids) > 0 {
		return fmt.Errorf("pass ids or --all, not both")
	}
	if err := requireSession(cmd); err != nil {
		return err
	}
	p := appCtx.Panel
	if all && p.Snapshot().TotalPending() > 0 {
		p.ToggleSelectAll()
	}
	for _, id := range ids {
		if err := p.Toggle(domain.ShopkeeperID(id)); err != nil {
			return err
		}
	}

	err := action(cmd.Context())
	switch {
	case errors.Is(err, domain.ErrDeclined):
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return nil
	case errors.Is(err, domain.ErrActionInProgress), errors.Is(err, domain.ErrNotAuthenticated):
		return err
	}
	printMessage(cmd)
	if err != nil {
		return errReported{err}
	}
	return nil
}
