// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package cli implements the add-todo command: every argument is todo text,
// joined with spaces and submitted once to the configured webhook.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"quick-todo/internal/buildinfo"
	"quick-todo/internal/config"
	"quick-todo/internal/logger"
	"quick-todo/internal/webhook"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const clientID = "quick-todo"

var (
	statusColor  = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	tipColor     = color.New(color.FgYellow)
	dimColor     = color.New(color.Faint)
)

// Deps holds the collaborators of the root command. Zero values are replaced
// with the real implementations.
type Deps struct {
	// ConfigPath overrides the config file location (empty uses the default)
	ConfigPath string

	// Submitter replaces the webhook client built from the config
	Submitter webhook.Submitter

	// Now supplies the timestamp printed on success
	Now func() time.Time
}

// NewRootCmd builds the add-todo command. Flag parsing is disabled: the
// command has no flags and every token, including ones starting with "-",
// is part of the todo.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &cobra.Command{
		Use:   "add-todo <todo text...>",
		Short: "Send a todo to your inbox",
		Long: `Sends one todo to the configured webhook and waits for Enter before exiting.

All arguments are joined with spaces, so quoting is optional.
The endpoint and secret are read from the quick-todo config file (see 'todoctl config').`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if wantsUsage(args) {
				printUsage(out)
				return nil
			}

			submitter := deps.Submitter
			if submitter == nil {
				client, err := newClient(deps.ConfigPath)
				if err != nil {
					errorColor.Fprintf(out, "❌ Configuration error: %v\n", err)
					logger.Error("cannot build webhook client", "error", err)
					waitForEnter(cmd.InOrStdin(), out)
					return nil
				}
				submitter = client
			}

			addTodo(cmd.Context(), out, submitter, strings.Join(args, " "), deps.Now)
			waitForEnter(cmd.InOrStdin(), out)
			return nil
		},
	}
}

// RunCLI executes add-todo against os.Args and exits non-zero only when cobra
// itself fails.
func RunCLI() {
	logger.InitLogger("add-todo", false)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := NewRootCmd(Deps{}).ExecuteContext(ctx); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(configPath string) (*webhook.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return webhook.NewClient(webhook.Options{
		Endpoint:  cfg.Endpoint,
		Secret:    cfg.Secret,
		Source:    webhook.SourceCLI,
		UserAgent: buildinfo.UserAgent(clientID),
	})
}

func wantsUsage(args []string) bool {
	if len(args) == 0 {
		return true
	}
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}

func printUsage(w io.Writer) {
	statusColor.Fprintln(w, "🚀 Quick Todo Adder")
	fmt.Fprintln(w, `Usage: add-todo "Your todo item here"`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, `  add-todo "Buy groceries"`)
	fmt.Fprintln(w, `  add-todo Call dentist for appointment`)
	fmt.Fprintln(w, `  add-todo "Review project proposal by Friday"`)
	fmt.Fprintln(w)
	dimColor.Fprintln(w, "Configure the endpoint with: todoctl config set-endpoint <url>")
}
