package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func newDoneCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return apperrors.ErrInvalidTaskID
			}

			a, err := bootstrap(cmd, opts)
			if err != nil {
				return err
			}

			if err := a.taskService.CompleteTask(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked as done\n", id)
			return nil
		},
	}
}
