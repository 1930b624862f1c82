package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"shopadmin/internal/domain"
	"shopadmin/internal/panel"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is saved",
		Long: "Show whether a session token is saved. The token is read from local storage only;\n" +
			"no request is sent. When the token is a JWT its subject and expiry are shown\n" +
			"without verifying the signature.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Backend: %s\n", appCtx.Config.Backend)

			tok, ok, err := appCtx.Store.Get(panel.TokenKey)
			if err != nil {
				return err
			}
			if !ok || tok == "" {
				fmt.Fprintf(out, "Session: %s\n", domain.Anonymous)
				return nil
			}
			fmt.Fprintf(out, "Session: %s\n", domain.Authenticated)
			describeToken(out, tok, time.Now())
			return nil
		},
	}
}

// describeToken prints JWT claims when tok parses as one. Opaque tokens print
// nothing further.
func describeToken(w io.Writer, tok string, now time.Time) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		fmt.Fprintf(w, "Subject: %s\n", sub)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	state := "valid"
	if now.After(exp.Time) {
		state = "expired"
	}
	fmt.Fprintf(w, "Expires: %s (%s)\n", exp.Time.Local().Format(time.RFC1123), state)
}
