// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ctl

import (
	"fmt"
	"net"
	"strings"

	"quick-todo/internal/api"

	"github.com/spf13/cobra"
)

func newMockWebhookCmd() *cobra.Command {
	var (
		addr   string
		secret string
	)

	cmd := &cobra.Command{
		Use:   "mock-webhook",
		Short: "Run a local webhook that accepts todos",
		Long: `Starts an HTTP server that behaves like the production todo webhook.

POST /api/webhook/todos stores a todo in memory and answers like the real
route; GET on the same path lists what has been received. Point the clients at
it with: todoctl config set-endpoint http://localhost:3000/api/webhook/todos`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}

			host := ln.Addr().String()
			if strings.HasPrefix(addr, ":") {
				host = "localhost" + addr
			}
			statusColor.Fprintf(cmd.OutOrStdout(), "Mock webhook listening on http://%s%s\n", host, api.TodosPath)
			if secret != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Bearer authentication is required.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop.")

			handler := api.NewRouter(api.NewHandler(&api.Store{}, secret))
			return api.Serve(cmd.Context(), ln, handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":3000", "address to listen on")
	cmd.Flags().StringVar(&secret, "secret", "", "require this bearer secret")
	return cmd
}
