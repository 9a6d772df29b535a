// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive todo window: a multi-line text area,
// Add/Clear/Close actions, a status line and a busy indicator. Submissions
// run as background commands and report back through messages, so all state
// is owned by the Bubble Tea event loop.
package ui

import (
	"context"
	"quick-todo/internal/webhook"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a new window.
type Options struct {
	Submitter webhook.Submitter
	Theme     string           // classic, neon or mono
	Now       func() time.Time // clock for the status line, defaults to time.Now
}

// Dialog is a modal message shown over the window.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
}

// Model is the Bubble Tea model of the todo window.
type Model struct {
	submitter webhook.Submitter
	keymap    KeyMap
	styles    styles
	now       func() time.Time

	textarea textarea.Model
	spinner  spinner.Model
	focus    focusTarget

	state      State
	seq        int // id of the newest submission
	cancel     context.CancelFunc
	status     string
	statusTone statusTone
	dialog     *Dialog
	closed     bool

	width  int
	height int
}

// New returns a window in the idle state with the text area focused.
func New(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	st := newStyles(opts.Theme)

	return &Model{
		submitter: opts.Submitter,
		keymap:    DefaultKeyMap,
		styles:    st,
		now:       opts.Now,
		textarea:  newTextArea(DefaultKeyMap),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(st.spinner)),
		focus:     focusText,
		state:     StateIdle,
		status:    statusReady,
	}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The frame keeps its size; only the centring changes.
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKeys(msg)

	case submitFinishedMsg:
		m.handleSubmitFinished(msg)
		return m, nil

	case spinner.TickMsg:
		if m.state != StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == focusText && m.dialog == nil {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	return m, nil
}

// State reports whether a submission is in flight.
func (m *Model) State() State { return m.state }

// SubmitEnabled reports whether the Add action can start a submission.
func (m *Model) SubmitEnabled() bool { return m.state == StateIdle }

// Content returns the current text of the input, untrimmed.
func (m *Model) Content() string { return m.textarea.Value() }

// Status returns the text of the status line.
func (m *Model) Status() string { return m.status }

// Dialog returns the open dialog, if any.
func (m *Model) Dialog() (Dialog, bool) {
	if m.dialog == nil {
		return Dialog{}, false
	}
	return *m.dialog, true
}

// Closed reports whether the window has been closed.
func (m *Model) Closed() bool { return m.closed }

// SetContent replaces the text of the input.
func (m *Model) SetContent(s string) { m.textarea.SetValue(s) }

func (m *Model) trimmedContent() string {
	return strings.TrimSpace(m.textarea.Value())
}
