package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"socialboot/internal/follow"
)

func newFollowersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "followers",
		Short: "Browse suggested users and follow them",
	}
	cmd.AddCommand(
		newFollowersListCmd(),
		newFollowChangeCmd("follow", "Follow a suggested user", func(e *env) func(context.Context, string) error { return e.app.Follow }),
		newFollowChangeCmd("unfollow", "Unfollow a suggested user", func(e *env) func(context.Context, string) error { return e.app.Unfollow }),
	)
	return cmd
}

func newFollowersListCmd() *cobra.Command {
	var filter follow.Filter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List suggested users",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			printFollowers(cmd, e.app.Following.List(filter), e.app.Following.Count())
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "search name or username")
	cmd.Flags().BoolVar(&filter.FollowsYou, "follows-you", false, "only users who follow you")
	return cmd
}

func newFollowChangeCmd(use, short string, pick func(*env) func(context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			if err := pick(e)(cmd.Context(), args[0]); err != nil {
				return err
			}
			printFollowers(cmd, e.app.Following.List(follow.Filter{}), e.app.Following.Count())
			return nil
		},
	}
}

func printFollowers(cmd *cobra.Command, users []follow.User, following int) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, heading("Suggested users"))
	for _, u := range users {
		state := mutedStyle.Render("not following")
		if u.IsFollowing {
			state = goodStyle.Render("following")
		}
		back := ""
		if u.FollowsYou {
			back = "  " + warnStyle.Render("follows you")
		}
		fmt.Fprintf(out, "- [%s] %s %s  %s%s\n", u.ID, u.Name, mutedStyle.Render(u.Username), state, back)
	}
	fmt.Fprintln(out, labelValue("Following", following))
}
