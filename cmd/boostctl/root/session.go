package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or end the persisted session",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the signed-in user",
			RunE: func(cmd *cobra.Command, args []string) error {
				e, cleanup, err := openApp(cmd.Context())
				if err != nil {
					return err
				}
				defer cleanup()

				out := cmd.OutOrStdout()
				rec := e.app.Session.Current()
				if rec == nil {
					fmt.Fprintln(out, mutedStyle.Render("not signed in"))
					return nil
				}
				fmt.Fprintln(out, heading("Session"))
				fmt.Fprintln(out, labelValue("ID", rec.ID))
				fmt.Fprintln(out, labelValue("Name", rec.Name))
				fmt.Fprintln(out, labelValue("Email", rec.Email))
				if rec.Username != "" {
					fmt.Fprintln(out, labelValue("Username", rec.Username))
				}
				if e.tokens != nil {
					// Only tokens minted by the mock authenticator can be read.
					if claims, err := e.tokens.Validate(e.app.Session.Token()); err == nil && claims.ExpiresAt != nil {
						fmt.Fprintln(out, labelValue("Token expires", claims.ExpiresAt.Format(time.RFC3339)))
					} else {
						fmt.Fprintln(out, labelValue("Token", warnStyle.Render("invalid or expired")))
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Sign out and delete the persisted session",
			RunE: func(cmd *cobra.Command, args []string) error {
				e, cleanup, err := openApp(cmd.Context())
				if err != nil {
					return err
				}
				defer cleanup()

				if err := e.app.Session.Logout(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), goodStyle.Render("signed out"))
				return nil
			},
		},
	)
	return cmd
}
