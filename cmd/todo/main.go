// Package main implements the todo terminal client. It talks to the todo
// server over HTTP and offers one-shot commands plus an interactive shell.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yash7800/Todo/internal/client"
	"github.com/yash7800/Todo/internal/config"
	"github.com/yash7800/Todo/internal/ui"
)

// Version is set at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(connect).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// apiFactory returns the API used by the commands. apiURL overrides the
// configured server address when not empty.
type apiFactory func(apiURL string) (ui.API, error)

func connect(apiURL string) (ui.API, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, fmt.Errorf("failed to load client configuration: %w", err)
	}
	if apiURL == "" {
		apiURL = cfg.APIURL
	}
	return client.New(apiURL, &http.Client{Timeout: cfg.Timeout()}), nil
}

func newRootCmd(factory apiFactory) *cobra.Command {
	var apiURL string

	rootCmd := &cobra.Command{
		Use:           "todo",
		Short:         "Manage todos and send summaries to Slack",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Todo server address (default from TODO_API_URL)")

	api := func() (ui.API, error) {
		return factory(apiURL)
	}

	rootCmd.AddCommand(listCmd(api))
	rootCmd.AddCommand(addCmd(api))
	rootCmd.AddCommand(rmCmd(api))
	rootCmd.AddCommand(summarizeCmd(api))
	rootCmd.AddCommand(shellCmd(api))

	return rootCmd
}
