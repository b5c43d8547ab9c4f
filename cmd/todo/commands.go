package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yash7800/Todo/internal/domain"
	"github.com/yash7800/Todo/internal/ui"
)

func listCmd(api func() (ui.API, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := api()
			if err != nil {
				return err
			}

			todos, err := c.ListTodos(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", ui.MsgLoadFailed, err)
			}

			out := cmd.OutOrStdout()
			if len(todos) == 0 {
				fmt.Fprintln(out, "(no todos yet)")
				return nil
			}
			for _, t := range todos {
				fmt.Fprintf(out, "%d. %s\n", t.ID, t.Text)
			}
			return nil
		},
	}
}

func addCmd(api func() (ui.API, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if domain.IsBlank(text) {
				return errors.New(ui.MsgEmptyDraft)
			}

			c, err := api()
			if err != nil {
				return err
			}

			todo, err := c.CreateTodo(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("%s: %w", ui.MsgAddFailed, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d. %s)\n", ui.MsgAdded, todo.ID, todo.Text)
			return nil
		},
	}
}

func rmCmd(api func() (ui.API, error)) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c, err := api()
			if err != nil {
				return err
			}

			if err := c.DeleteTodo(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s: %w", ui.MsgDeleteFailed, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.MsgDeleted)
			return nil
		},
	}
}

func summarizeCmd(api func() (ui.API, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize",
		Short: "Summarize pending todos and post the summary to Slack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := api()
			if err != nil {
				return err
			}

			summary, err := c.Summarize(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", ui.MsgSummaryFailed, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.MsgSummarySent)
			fmt.Fprintln(out, summary)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid todo id %q", s)
	}
	return id, nil
}
