package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shopadmin/internal/app"
	"shopadmin/internal/domain"
)

var appCtx *app.Wire

// Execute runs the CLI with process stdio, cancelling on SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := execute(ctx, newRootCmd())
	if err != nil && !isReported(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// execute runs root and releases the app context on every path. Cobra skips
// PersistentPostRun when RunE fails.
func execute(ctx context.Context, root *cobra.Command) error {
	appCtx = nil
	err := root.ExecuteContext(ctx)
	if appCtx != nil {
		appCtx.Close()
	}
	return err
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "shopadmin",
		Short:         "Approve or delete pending shopkeeper registrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(v, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}
	app.AddFlags(root.PersistentFlags())

	root.AddCommand(
		loginCmd(),
		logoutCmd(),
		statusCmd(),
		listCmd(),
		acceptCmd(),
		deleteCmd(),
		panelCmd(),
	)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})
	return root
}

// errReported marks an error whose message was already printed as a panel
// status message, so Execute only sets the exit status.
type errReported struct{ err error }

func (e errReported) Error() string { return e.err.Error() }
func (e errReported) Unwrap() error { return e.err }

// requireSession restores the saved session and fetches the list.
func requireSession(cmd *cobra.Command) error {
	p := appCtx.Panel
	err := p.Restore(cmd.Context())
	if p.Phase() != domain.Authenticated {
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: run `shopadmin login` first", domain.ErrNotAuthenticated)
	}
	if err != nil {
		printMessage(cmd)
		return errReported{err}
	}
	return nil
}

func printMessage(cmd *cobra.Command) {
	if msg := appCtx.Panel.Message(); msg != "" {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
}

func isReported(err error) bool {
	var r errReported
	return errors.As(err, &r)
}
