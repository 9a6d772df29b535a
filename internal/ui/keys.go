// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the todo window.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the window.
type KeyMap struct {
	Submit   key.Binding // Activate the focused control
	Newline  key.Binding // Insert a line break in the text area
	Tab      key.Binding // Next control
	ShiftTab key.Binding // Previous control
	Clear    key.Binding // Empty the text area
	Close    key.Binding // Close the window
	Quit     key.Binding // Always quits
	Dismiss  key.Binding // Close the open dialog
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add"),
	),
	Newline: key.NewBinding(
		key.WithKeys("alt+enter", "ctrl+j"),
		key.WithHelp("alt+enter", "new line"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter/esc", "ok"),
	),
}
