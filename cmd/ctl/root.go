// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ctl implements todoctl, the companion tool for the quick-todo
// clients: it edits their configuration and runs a local mock webhook.
package ctl

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"quick-todo/internal/config"
	"quick-todo/internal/logger"
	"quick-todo/internal/prefs"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

// options are shared by all subcommands.
type options struct {
	configPath string
}

// paths returns the config file and the prefs file it sits next to. Without
// --config both are the per-user defaults.
func (o *options) paths() (cfgPath, prefsPath string, err error) {
	if strings.TrimSpace(o.configPath) == "" {
		if cfgPath, err = config.DefaultConfigPath(); err != nil {
			return "", "", err
		}
		if prefsPath, err = prefs.DefaultPath(); err != nil {
			return "", "", err
		}
		return cfgPath, prefsPath, nil
	}

	cfgPath, err = config.ResolvePath(strings.TrimSpace(o.configPath))
	if err != nil {
		return "", "", err
	}
	return cfgPath, filepath.Join(filepath.Dir(cfgPath), "prefs.toml"), nil
}

// NewRootCmd builds the todoctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "todoctl",
		Short: "Manage the quick-todo clients",
		Long: `todoctl configures the add-todo and todo-gui clients and runs a local
mock of the todo webhook for development.

Configuration lives in <user config dir>/quick-todo/config.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <user config dir>/quick-todo/config.yaml)")

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newMockWebhookCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs todoctl against os.Args.
func Execute() error {
	logger.InitLogger("todoctl", false)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
