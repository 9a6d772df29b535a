// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ctl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"quick-todo/internal/config"
	"quick-todo/internal/prefs"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the client configuration",
	}

	configCmd.AddCommand(
		newConfigShowCmd(opts),
		newConfigPathCmd(opts),
		newConfigSetEndpointCmd(opts),
		newConfigSetSecretCmd(opts),
		newConfigClearSecretCmd(opts),
		newConfigSetThemeCmd(opts),
	)
	return configCmd
}

func newConfigShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (secret masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, prefsPath, err := opts.paths()
			if err != nil {
				return err
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			p := prefs.Load(prefsPath)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n", cfgPath)
			fmt.Fprintf(out, "Endpoint:    %s\n", identifierColor.Sprint(cfg.Endpoint))
			fmt.Fprintf(out, "Secret:      %s\n", cfg.MaskedSecret())
			fmt.Fprintf(out, "Theme:       %s\n", p.Theme)
			return nil
		},
	}
}

func newConfigPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config and preferences file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, prefsPath, err := opts.paths()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfgPath)
			fmt.Fprintln(cmd.OutOrStdout(), prefsPath)
			return nil
		},
	}
}

func newConfigSetEndpointCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "set-endpoint <url>",
		Short:   "Set the webhook URL the clients post to",
		Example: "  todoctl config set-endpoint https://example.com/api/webhook/todos",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := strings.TrimSpace(args[0])
			if err := config.ValidateEndpoint(endpoint); err != nil {
				return err
			}
			err := updateConfig(opts, func(cfg *config.Config) { cfg.Endpoint = endpoint })
			if err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "Endpoint set to: %s\n", endpoint)
			return nil
		},
	}
}

func newConfigSetSecretCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set-secret [secret]",
		Short: "Set the bearer secret sent with every submission",
		Long: `Sets the bearer secret. Without an argument the secret is read from
standard input; on a terminal it is prompted for without echo, which keeps it
out of the shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var secret string
			if len(args) == 1 {
				secret = args[0]
			} else {
				read, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				secret = read
			}
			secret = strings.TrimSpace(secret)
			if secret == "" {
				return errors.New("secret is empty; use 'todoctl config clear-secret' to remove it")
			}

			if err := updateConfig(opts, func(cfg *config.Config) { cfg.Secret = secret }); err != nil {
				return err
			}
			successColor.Fprintln(cmd.OutOrStdout(), "Secret saved.")
			return nil
		},
	}
}

func newConfigClearSecretCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-secret",
		Short: "Stop sending an Authorization header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := updateConfig(opts, func(cfg *config.Config) { cfg.Secret = "" }); err != nil {
				return err
			}
			successColor.Fprintln(cmd.OutOrStdout(), "Secret removed.")
			return nil
		},
	}
}

func newConfigSetThemeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:               "set-theme <name>",
		Short:             "Set the todo-gui colour theme (" + strings.Join(prefs.Themes, ", ") + ")",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: themeCompletionFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, prefsPath, err := opts.paths()
			if err != nil {
				return err
			}
			p := prefs.Load(prefsPath)
			p.Theme = args[0]
			if err := prefs.Save(prefsPath, p); err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "Theme set to: %s\n", strings.ToLower(strings.TrimSpace(args[0])))
			return nil
		},
	}
}

// updateConfig loads the config, applies change and writes it back.
func updateConfig(opts *options, change func(*config.Config)) error {
	cfgPath, _, err := opts.paths()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	change(&cfg)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}
	return nil
}

// readSecret prompts without echo when in is a terminal and otherwise reads
// one line.
func readSecret(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Webhook secret: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return line, nil
}
