package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	var (
		in        services.TaskInput
		createdAt string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd, opts)
			if err != nil {
				return err
			}

			if createdAt != "" {
				t, err := validators.ParseCreatedAt(createdAt)
				if err != nil {
					return err
				}
				in.CreatedAt = &t
			}

			task, err := a.taskService.CreateTask(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Task '%s' added (id %d)\n", task.Name, task.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&in.Name, "name", "", "task name")
	flags.StringVar(&in.Description, "description", "", "task description")
	flags.StringVar(&in.State, "state", "", "planned, in-progress or done (default planned)")
	flags.StringVar(&in.Category, "category", "", "school, work or personal")
	flags.StringVar(&in.CreatedBy, "created-by", "", "author of the task")
	flags.StringVar(&createdAt, "created-at", "", "RFC 3339 timestamp or YYYY-MM-DD date (default now)")

	return cmd
}
