package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shopadmin/internal/domain"
	"shopadmin/internal/view"
)

func loginCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := newPrompter(cmd)
			creds, err := readCredentials(in, username, password)
			if err != nil {
				return err
			}
			return login(cmd, creds)
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username (prompted when empty)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (prompted when empty)")
	return cmd
}

func readCredentials(in *prompter, username, password string) (domain.Credentials, error) {
	var err error
	if username == "" {
		if username, err = in.Line("Username: "); err != nil {
			return domain.Credentials{}, fmt.Errorf("read username: %w", err)
		}
	}
	if password == "" {
		if password, err = in.Secret("Password: "); err != nil {
			return domain.Credentials{}, fmt.Errorf("read password: %w", err)
		}
	}
	return domain.Credentials{Username: username, Password: password}, nil
}

func login(cmd *cobra.Command, creds domain.Credentials) error {
	p := appCtx.Panel
	err := p.Login(cmd.Context(), creds)
	if errors.Is(err, domain.ErrActionInProgress) {
		return err
	}
	if err != nil {
		_ = view.Login(cmd.OutOrStdout(), p.Message())
		return errReported{err}
	}
	printMessage(cmd)
	return nil
}
