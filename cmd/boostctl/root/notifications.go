package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List or clear notifications",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List notifications, newest first",
			RunE: func(cmd *cobra.Command, args []string) error {
				e, cleanup, err := openApp(cmd.Context())
				if err != nil {
					return err
				}
				defer cleanup()

				out := cmd.OutOrStdout()
				items := e.app.Notifications.List()
				if len(items) == 0 {
					fmt.Fprintln(out, mutedStyle.Render("no notifications"))
					return nil
				}
				fmt.Fprintln(out, heading("Notifications"))
				for _, n := range items {
					when := time.UnixMilli(n.Timestamp).Format(time.DateTime)
					fmt.Fprintf(out, "- %s %s: %s %s\n", severityText(string(n.Severity)), n.Title, n.Message, mutedStyle.Render(when))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every notification",
			RunE: func(cmd *cobra.Command, args []string) error {
				e, cleanup, err := openApp(cmd.Context())
				if err != nil {
					return err
				}
				defer cleanup()

				if err := e.app.Notifications.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), goodStyle.Render("notifications cleared"))
				return nil
			},
		},
	)
	return cmd
}
