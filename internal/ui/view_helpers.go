// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- View Helpers ---

func (m *Model) View() string {
	if m.closed {
		return ""
	}
	frame := m.renderFrame()
	if m.width <= 0 || m.height <= 0 {
		return frame
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

// renderFrame draws the fixed-size window. An open dialog replaces the body.
func (m *Model) renderFrame() string {
	inner := frameWidth - 4

	var body string
	if m.dialog != nil {
		body = lipgloss.Place(inner, frameHeight-4, lipgloss.Center, lipgloss.Center, m.renderDialog())
	} else {
		body = m.renderBody()
	}
	return m.styles.frame.Render(body)
}

func (m *Model) renderBody() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("🚀 Quick Todo Adder"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.label.Render("What needs to be done?"))
	b.WriteString("\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")
	b.WriteString(m.styles.tones[m.statusTone].Render(m.status))
	b.WriteString("\n")
	if m.state == StateSubmitting {
		b.WriteString(m.spinner.View() + " " + m.styles.help.Render("sending..."))
	}
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *Model) renderButtons() string {
	labels := []struct {
		target focusTarget
		text   string
	}{
		{focusAdd, "✅ Add Todo"},
		{focusClear, "🗑️ Clear"},
		{focusClose, "❌ Close"},
	}

	rendered := make([]string, 0, len(labels))
	for _, l := range labels {
		style := m.styles.button
		switch {
		case l.target == focusAdd && !m.SubmitEnabled():
			style = m.styles.buttonDisabled
		case m.focus == l.target:
			style = m.styles.buttonFocused
		}
		rendered = append(rendered, style.Render("[ "+l.text+" ]"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderHelp() string {
	bindings := []struct{ keys, desc string }{
		{m.keymap.Submit.Help().Key, m.keymap.Submit.Help().Desc},
		{m.keymap.Newline.Help().Key, m.keymap.Newline.Help().Desc},
		{m.keymap.Tab.Help().Key, m.keymap.Tab.Help().Desc},
		{m.keymap.Clear.Help().Key, m.keymap.Clear.Help().Desc},
		{m.keymap.Close.Help().Key, m.keymap.Close.Help().Desc},
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		parts = append(parts, kb.keys+" "+kb.desc)
	}
	return m.styles.help.Render(strings.Join(parts, " | "))
}

func (m *Model) renderDialog() string {
	d := m.dialog
	style := m.styles.dialog.BorderForeground(m.styles.dialogBorders[d.Kind])

	var b strings.Builder
	b.WriteString(m.styles.dialogTitle.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")
	b.WriteString(m.styles.help.Render("[ OK ]  " + m.keymap.Dismiss.Help().Key))
	return style.Render(b.String())
}
