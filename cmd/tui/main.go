// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package tui starts the interactive todo window.
package tui

import (
	"fmt"
	"os"
	"quick-todo/internal/buildinfo"
	"quick-todo/internal/config"
	"quick-todo/internal/logger"
	"quick-todo/internal/prefs"
	"quick-todo/internal/ui"
	"quick-todo/internal/webhook"

	tea "github.com/charmbracelet/bubbletea"
)

const clientID = "quick-todo-gui"

// RunTUI initializes and runs the Bubble Tea todo window.
func RunTUI() {
	logger.InitLogger("todo-gui", true)

	cfg, err := config.Load("")
	if err != nil {
		logger.Error("cannot load config", "error", err)
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	client, err := webhook.NewClient(webhook.Options{
		Endpoint:  cfg.Endpoint,
		Secret:    cfg.Secret,
		Source:    webhook.SourceGUI,
		UserAgent: buildinfo.UserAgent(clientID),
	})
	if err != nil {
		logger.Error("cannot build webhook client", "error", err)
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	m := ui.New(ui.Options{
		Submitter: client,
		Theme:     prefs.Load("").Theme,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("todo window exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
