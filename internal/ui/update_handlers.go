// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"context"
	"quick-todo/internal/logger"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Update Handlers ---

func (m *Model) handleKeys(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.Quit) {
		return m.closeWindow()
	}

	// A dialog is modal: it swallows everything but its dismiss keys.
	if m.dialog != nil {
		if key.Matches(msg, m.keymap.Dismiss) {
			m.dialog = nil
			m.setFocus(focusText)
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keymap.Close):
		return m.closeWindow()
	case key.Matches(msg, m.keymap.Clear):
		m.clearText()
		return nil
	case key.Matches(msg, m.keymap.Tab):
		m.focusNext()
		return nil
	case key.Matches(msg, m.keymap.ShiftTab):
		m.focusPrev()
		return nil
	case key.Matches(msg, m.keymap.Submit):
		return m.activate()
	}

	if m.focus != focusText {
		return nil
	}
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return cmd
}

// activate performs the action of the focused control.
func (m *Model) activate() tea.Cmd {
	switch m.focus {
	case focusText, focusAdd:
		return m.submit()
	case focusClear:
		m.clearText()
		return nil
	case focusClose:
		return m.closeWindow()
	}
	return nil
}

// submit starts a background submission of the trimmed text. It does nothing
// while another submission is in flight.
func (m *Model) submit() tea.Cmd {
	if m.state != StateIdle {
		return nil
	}

	content := m.trimmedContent()
	if content == "" {
		m.openDialog(DialogWarning, "Empty Todo", "Please enter a todo item!")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.seq++
	m.cancel = cancel
	m.state = StateSubmitting
	m.status = statusSubmitting
	m.statusTone = toneBusy
	logger.Debug("submission started", "seq", m.seq, "length", len(content))

	return tea.Batch(
		submitCmd(ctx, m.submitter, m.seq, content),
		m.spinner.Tick,
	)
}

func (m *Model) clearText() {
	m.textarea.Reset()
	m.setFocus(focusText)
}

// closeWindow quits immediately. An in-flight submission is cancelled and its
// result, should it still arrive, is ignored.
func (m *Model) closeWindow() tea.Cmd {
	m.closed = true
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	return tea.Quit
}

func (m *Model) openDialog(kind DialogKind, title, message string) {
	m.dialog = &Dialog{Kind: kind, Title: title, Message: message}
}
