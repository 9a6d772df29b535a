// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// State is the submission state of the window.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// DialogKind selects the look of a modal dialog.
type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogWarning
	DialogError
)

// focusTarget is one stop of the tab ring.
type focusTarget int

const (
	focusText focusTarget = iota
	focusAdd
	focusClear
	focusClose
	focusCount
)

// statusTone picks the colour of the status line.
type statusTone int

const (
	toneReady statusTone = iota
	toneBusy
	toneSuccess
	toneFailure
)

const (
	frameWidth  = 64 // outer width of the window, border included
	frameHeight = 18 // outer height of the window, border included
	textRows    = 4

	statusReady      = "Ready to add todos!"
	statusSubmitting = "Adding todo..."
)
