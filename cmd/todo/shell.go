package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yash7800/Todo/internal/ui"
)

const shellHelp = `Type a todo and press Enter to add it.
Commands: /rm <id>, /sum, /refresh, /help, /quit`

func shellCmd(api func() (ui.API, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive todo list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := api()
			if err != nil {
				return err
			}
			return runShell(cmd.Context(), ui.NewView(c), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell reads commands from in until EOF, /quit or ctx is done, and
// redraws the view after each one.
func runShell(ctx context.Context, view *ui.View, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, shellHelp)

	view.Load(ctx)
	if err := view.Render(out); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")

		switch command {
		case "/quit", "/exit":
			return nil
		case "/help":
			fmt.Fprintln(out, shellHelp)
			continue
		case "/refresh":
			view.Load(ctx)
		case "/sum":
			view.Summarize(ctx)
		case "/rm":
			id, err := parseID(arg)
			if err != nil {
				fmt.Fprintln(out, "usage: /rm <id>")
				continue
			}
			view.Delete(ctx, id)
		default:
			view.SetDraft(line)
			view.HandleKey(ctx, ui.KeyEnter)
		}

		if err := view.Render(out); err != nil {
			return err
		}
	}

	return scanner.Err()
}
