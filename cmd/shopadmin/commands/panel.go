package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"shopadmin/internal/domain"
	"shopadmin/internal/view"
)

const panelHelp = `Commands:
  show              redraw the dashboard
  refresh           fetch the pending list again
  toggle <id>...    select or deselect shopkeepers
  all               select all, or deselect all when everything is selected
  accept            verify the selected shopkeepers
  delete            delete the selected shopkeepers (asks first)
  dismiss           clear the status message
  login             sign in again
  logout            end the session
  help              show this help
  quit              leave the panel`

func panelCmd() *cobra.Command {
	var banner bool
	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Interactive admin panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if banner {
				fmt.Fprintln(out, figure.NewFigure("shopadmin", "", true).String())
			}
			in := newPrompter(cmd)
			p := appCtx.Panel
			// A failed restore fetch leaves its message on the dashboard.
			if err := p.Restore(cmd.Context()); err != nil && p.Phase() != domain.Authenticated {
				return err
			}

			for {
				if err := render(out); err != nil {
					return err
				}
				label := "> "
				if p.Phase() != domain.Authenticated {
					label = "login? [Y/n/quit] "
				}
				line, err := in.Line(label)
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				quit, err := dispatch(cmd, in, line)
				if err != nil {
					fmt.Fprintln(out, "Error:", err)
				}
				if quit {
					return nil
				}
			}
		},
	}
	cmd.Flags().BoolVar(&banner, "banner", true, "print the banner on start")
	return cmd
}

func render(w io.Writer) error {
	snap := appCtx.Panel.Snapshot()
	if !snap.Authenticated() {
		return view.Login(w, snap.Message)
	}
	return view.Dashboard(w, snap)
}

// dispatch runs one panel command line. Outcome messages land in the panel
// state and show up on the next render.
func dispatch(cmd *cobra.Command, in *prompter, line string) (quit bool, err error) {
	p := appCtx.Panel
	ctx := cmd.Context()
	fields := strings.Fields(line)
	verb := ""
	if len(fields) > 0 {
		verb = strings.ToLower(fields[0])
	}

	if p.Phase() != domain.Authenticated {
		switch verb {
		case "", "y", "yes", "login":
			creds, err := readCredentials(in, "", "")
			if err != nil {
				return false, err
			}
			return false, ignoreReported(p.Login(ctx, creds))
		case "q", "quit", "exit", "n", "no":
			return true, nil
		case "help":
			fmt.Fprintln(cmd.OutOrStdout(), panelHelp)
			return false, nil
		}
		return false, fmt.Errorf("%w: log in first", domain.ErrNotAuthenticated)
	}

	switch verb {
	case "", "show":
	case "refresh", "r":
		return false, ignoreReported(p.Refresh(ctx))
	case "toggle", "t":
		if len(fields) < 2 {
			return false, fmt.Errorf("usage: toggle <id>...")
		}
		for _, id := range fields[1:] {
			if err := p.Toggle(domain.ShopkeeperID(id)); err != nil {
				return false, err
			}
		}
	case "all", "a":
		p.ToggleSelectAll()
	case "accept":
		return false, ignoreReported(p.Accept(ctx))
	case "delete":
		err := p.Delete(ctx, in)
		if errors.Is(err, domain.ErrDeclined) {
			return false, nil
		}
		return false, ignoreReported(err)
	case "dismiss":
		p.DismissMessage()
	case "login":
		creds, err := readCredentials(in, "", "")
		if err != nil {
			return false, err
		}
		return false, ignoreReported(p.Login(ctx, creds))
	case "logout":
		return false, p.Logout()
	case "help", "?":
		fmt.Fprintln(cmd.OutOrStdout(), panelHelp)
	case "quit", "q", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (try help)", verb)
	}
	return false, nil
}

// ignoreReported drops errors the panel already turned into a status message.
// Only guard and session errors reach the operator directly.
func ignoreReported(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrActionInProgress), errors.Is(err, domain.ErrNotAuthenticated):
		return err
	}
	return nil
}
