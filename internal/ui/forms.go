// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

// newTextArea builds the todo input. Enter is left to the window so it can
// submit; line breaks use the Newline binding instead.
func newTextArea(keymap KeyMap) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "What needs to be done?"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(frameWidth - 6)
	ta.SetHeight(textRows)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys(keymap.Newline.Keys()...))
	ta.Focus()
	return ta
}

// setFocus moves the tab ring to target and keeps the text area's cursor in
// sync with it.
func (m *Model) setFocus(target focusTarget) {
	m.focus = target
	if target == focusText {
		m.textarea.Focus()
	} else {
		m.textarea.Blur()
	}
}

func (m *Model) focusNext() {
	m.setFocus((m.focus + 1) % focusCount)
}

func (m *Model) focusPrev() {
	m.setFocus((m.focus + focusCount - 1) % focusCount)
}
