package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"socialboot/internal/task"
	"socialboot/pkg/format"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks and move their progress",
	}
	cmd.AddCommand(newTasksListCmd(), newTasksProgressCmd())
	return cmd
}

func newTasksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			printTasks(cmd, e.app.Tasks.List())
			return nil
		},
	}
}

func newTasksProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <category> <delta>",
		Short: "Add delta to every task of a category (upload-reels, get-followers)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <category> <delta>")
			}
			if !task.Category(args[0]).IsValid() {
				return fmt.Errorf("unknown category %q", args[0])
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("delta must be an integer: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, _ := strconv.Atoi(args[1])
			e, cleanup, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := e.app.Tasks.UpdateProgress(cmd.Context(), task.Category(args[0]), delta); err != nil {
				return err
			}
			printTasks(cmd, e.app.Tasks.List())
			return nil
		},
	}
}

func printTasks(cmd *cobra.Command, tasks []task.Task) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, heading("Tasks"))
	for _, t := range tasks {
		status := mutedStyle.Render("in progress")
		switch {
		case t.Completed:
			status = goodStyle.Render("completed")
		case t.GoalReached():
			status = warnStyle.Render("ready to claim")
		}
		fmt.Fprintf(out, "- [%s] %s  %d/%d (%d%%)  %s  %s\n",
			t.ID, t.Title, t.Progress, t.Goal, t.Percent(),
			goldStyle.Render(format.Number(t.Reward)+" coins"), status)
	}
}
