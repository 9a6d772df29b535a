// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"quick-todo/internal/webhook"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fakeSubmitter struct {
	mu       sync.Mutex
	contents []string
	err      error
	panicMsg string
}

func (f *fakeSubmitter) Submit(_ context.Context, content string) (*webhook.Response, error) {
	f.mu.Lock()
	f.contents = append(f.contents, content)
	f.mu.Unlock()
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &webhook.Response{Success: json.RawMessage("true")}, nil
}

func (f *fakeSubmitter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.contents)
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyAltEnter = tea.KeyMsg{Type: tea.KeyEnter, Alt: true}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyClear    = tea.KeyMsg{Type: tea.KeyCtrlL}
	keyQuit     = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func newTestModel(sub webhook.Submitter) *Model {
	return New(Options{
		Submitter: sub,
		Now:       func() time.Time { return time.Date(2025, 3, 4, 14, 5, 6, 0, time.Local) },
	})
}

func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

// runCmd executes cmd and flattens batches into the messages they produce.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

func finishedFrom(t *testing.T, cmd tea.Cmd) submitFinishedMsg {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		if f, ok := msg.(submitFinishedMsg); ok {
			return f
		}
	}
	t.Fatal("command did not produce a submission result")
	return submitFinishedMsg{}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_StartsIdle(t *testing.T) {
	m := newTestModel(&fakeSubmitter{})

	if m.State() != StateIdle || !m.SubmitEnabled() {
		t.Fatalf("State = %v, SubmitEnabled = %v, want idle and enabled", m.State(), m.SubmitEnabled())
	}
	if m.Status() != statusReady {
		t.Fatalf("Status = %q, want %q", m.Status(), statusReady)
	}
	if _, open := m.Dialog(); open {
		t.Fatal("no dialog expected on start")
	}
}

func TestSubmit_EmptyContentWarnsWithoutWorker(t *testing.T) {
	sub := &fakeSubmitter{}
	m := newTestModel(sub)
	m.SetContent("   \n\t ")

	if cmd := send(m, keyEnter); cmd != nil {
		t.Fatalf("empty submit returned a command")
	}
	d, open := m.Dialog()
	if !open || d.Kind != DialogWarning {
		t.Fatalf("Dialog = %#v (open %v), want warning", d, open)
	}
	if m.State() != StateIdle || sub.calls() != 0 {
		t.Fatalf("State = %v, calls = %d, want idle and no request", m.State(), sub.calls())
	}
}

func TestSubmit_SuccessClearsTextAndReturnsToIdle(t *testing.T) {
	sub := &fakeSubmitter{}
	m := newTestModel(sub)
	m.SetContent("  Buy milk  ")

	cmd := send(m, keyEnter)
	if m.State() != StateSubmitting || m.SubmitEnabled() {
		t.Fatalf("after enter: State = %v, SubmitEnabled = %v", m.State(), m.SubmitEnabled())
	}
	if m.Status() != statusSubmitting {
		t.Fatalf("Status = %q, want %q", m.Status(), statusSubmitting)
	}
	if !strings.Contains(m.View(), "sending...") {
		t.Fatal("busy indicator not shown while submitting")
	}

	// Submit stays disabled while the first request is in flight.
	if again := send(m, keyEnter); again != nil {
		t.Fatal("second enter while submitting started another submission")
	}

	finished := finishedFrom(t, cmd)
	send(m, finished)

	if got := sub.contents; len(got) != 1 || got[0] != "Buy milk" {
		t.Fatalf("submitted contents = %q, want one trimmed todo", got)
	}
	if m.State() != StateIdle || !m.SubmitEnabled() {
		t.Fatalf("after completion: State = %v, SubmitEnabled = %v", m.State(), m.SubmitEnabled())
	}
	if m.Content() != "" {
		t.Fatalf("Content = %q, want cleared after success", m.Content())
	}
	if !strings.Contains(m.Status(), "14:05:06") {
		t.Fatalf("Status = %q, want completion time", m.Status())
	}
	d, open := m.Dialog()
	if !open || d.Kind != DialogInfo || !strings.Contains(d.Message, "Buy milk") {
		t.Fatalf("Dialog = %#v (open %v), want info with content", d, open)
	}
	if strings.Contains(m.View(), "sending...") {
		t.Fatal("busy indicator still shown after completion")
	}
}

func TestSubmit_FailureKeepsText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"rejected", &webhook.RejectedError{Message: "X"}, "X"},
		{"http", &webhook.HTTPError{StatusCode: 500, Status: "Internal Server Error"}, "HTTP Error 500"},
		{"connection", &webhook.ConnectionError{Err: context.DeadlineExceeded}, "Connection Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&fakeSubmitter{err: tt.err})
			m.SetContent("Keep me")

			send(m, finishedFrom(t, send(m, keyEnter)))

			if m.State() != StateIdle {
				t.Fatalf("State = %v, want idle", m.State())
			}
			if m.Content() != "Keep me" {
				t.Fatalf("Content = %q, want text kept after failure", m.Content())
			}
			d, open := m.Dialog()
			if !open || d.Kind != DialogError || !strings.Contains(d.Message, tt.want) {
				t.Fatalf("Dialog = %#v (open %v), want error mentioning %q", d, open, tt.want)
			}
			if !strings.Contains(m.Status(), tt.want) {
				t.Fatalf("Status = %q, want it to mention %q", m.Status(), tt.want)
			}
		})
	}
}

func TestSubmit_PanicReportedAsUnexpected(t *testing.T) {
	m := newTestModel(&fakeSubmitter{panicMsg: "boom"})
	m.SetContent("todo")

	send(m, finishedFrom(t, send(m, keyEnter)))

	d, open := m.Dialog()
	if !open || !strings.Contains(d.Message, "Unexpected error: boom") {
		t.Fatalf("Dialog = %#v (open %v), want unexpected error", d, open)
	}
	if m.State() != StateIdle {
		t.Fatalf("State = %v, want idle", m.State())
	}
}

func TestSubmit_StaleResultIgnored(t *testing.T) {
	m := newTestModel(&fakeSubmitter{})
	m.SetContent("todo")
	send(m, keyEnter)

	send(m, submitFinishedMsg{seq: m.seq + 1, content: "todo"})

	if m.State() != StateSubmitting {
		t.Fatalf("State = %v, want still submitting", m.State())
	}
	if _, open := m.Dialog(); open {
		t.Fatal("stale result opened a dialog")
	}
}

func TestClose_MidSubmissionAbandonsWorker(t *testing.T) {
	m := newTestModel(&fakeSubmitter{})
	m.SetContent("todo")
	cmd := send(m, keyEnter)

	if !isQuit(send(m, keyEsc)) {
		t.Fatal("esc did not quit")
	}
	if !m.Closed() || m.View() != "" {
		t.Fatal("window not closed")
	}

	send(m, finishedFrom(t, cmd))
	if _, open := m.Dialog(); open {
		t.Fatal("result after close opened a dialog")
	}
}

func TestDialog_IsModal(t *testing.T) {
	m := newTestModel(&fakeSubmitter{})
	send(m, keyEnter) // empty: warning dialog

	if isQuit(send(m, keyEsc)) {
		t.Fatal("esc with a dialog open should dismiss, not close")
	}
	if _, open := m.Dialog(); open {
		t.Fatal("esc did not dismiss the dialog")
	}

	m.SetContent("kept")
	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")}) // dialog closed: goes to the text area
	m.SetContent("")
	send(m, keyEnter)
	if _, open := m.Dialog(); !open {
		t.Fatal("enter should reopen the warning for empty content")
	}
	m.SetContent("still here")
	send(m, keyClear) // ignored while the dialog is up
	if m.Content() != "still here" {
		t.Fatalf("Content = %q, clear must be ignored behind a dialog", m.Content())
	}
	if !isQuit(send(m, keyQuit)) {
		t.Fatal("ctrl+c must quit even with a dialog open")
	}
}

func TestFocusRing(t *testing.T) {
	sub := &fakeSubmitter{}
	m := newTestModel(sub)
	m.SetContent("todo")

	send(m, keyTab) // Add
	if m.focus != focusAdd {
		t.Fatalf("focus = %v, want Add", m.focus)
	}
	send(m, keyTab) // Clear
	send(m, keyEnter)
	if m.Content() != "" || m.focus != focusText {
		t.Fatalf("Clear button: Content = %q, focus = %v", m.Content(), m.focus)
	}

	send(m, keyShiftTab) // wraps to Close
	if m.focus != focusClose {
		t.Fatalf("focus = %v, want Close", m.focus)
	}
	if !isQuit(send(m, keyEnter)) {
		t.Fatal("enter on Close did not quit")
	}
	if sub.calls() != 0 {
		t.Fatalf("calls = %d, want 0", sub.calls())
	}
}

func TestAddButtonSubmits(t *testing.T) {
	sub := &fakeSubmitter{}
	m := newTestModel(sub)
	m.SetContent("via button")
	send(m, keyTab)

	send(m, finishedFrom(t, send(m, keyEnter)))
	if sub.calls() != 1 || sub.contents[0] != "via button" {
		t.Fatalf("contents = %q, want one submission", sub.contents)
	}
}

func TestKeys_ClearAndNewline(t *testing.T) {
	m := newTestModel(&fakeSubmitter{})
	m.SetContent("first")

	send(m, keyAltEnter)
	if m.State() != StateIdle {
		t.Fatal("alt+enter must not submit")
	}
	if !strings.Contains(m.Content(), "\n") {
		t.Fatalf("Content = %q, want a newline", m.Content())
	}

	send(m, keyClear)
	if m.Content() != "" {
		t.Fatalf("Content = %q, want cleared", m.Content())
	}
}

func TestSpinnerTickIgnoredWhenIdle(t *testing.T) {
	m := newTestModel(&fakeSubmitter{})
	if cmd := send(m, spinner.TickMsg{}); cmd != nil {
		t.Fatal("idle window should let the spinner stop")
	}
}

func TestView_FrameHasFixedSize(t *testing.T) {
	for _, theme := range []string{"classic", "neon", "mono"} {
		t.Run(theme, func(t *testing.T) {
			m := New(Options{Submitter: &fakeSubmitter{}, Theme: theme})
			send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

			frame := m.renderFrame()
			if w, h := lipgloss.Width(frame), lipgloss.Height(frame); w != frameWidth || h != frameHeight {
				t.Fatalf("frame = %dx%d, want %dx%d", w, h, frameWidth, frameHeight)
			}
			view := m.View()
			if lipgloss.Height(view) != 40 {
				t.Fatalf("view height = %d, want centred in 40 rows", lipgloss.Height(view))
			}
		})
	}
}

func TestView_MonoUsesASCIIBorder(t *testing.T) {
	m := New(Options{Submitter: &fakeSubmitter{}, Theme: "mono"})
	if !strings.HasPrefix(m.renderFrame(), "+") {
		t.Fatal("mono frame should start with an ASCII corner")
	}
}

func TestSubmit_AgainstWebhook(t *testing.T) {
	var got webhook.Submission
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success": true, "message": "Todo created successfully"}`))
	}))
	t.Cleanup(server.Close)

	client, err := webhook.NewClient(webhook.Options{Endpoint: server.URL, Source: webhook.SourceGUI})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	m := newTestModel(client)
	m.SetContent("from the window")

	send(m, finishedFrom(t, send(m, keyEnter)))

	if got.Content != "from the window" || got.Source != webhook.SourceGUI {
		t.Fatalf("submission = %#v", got)
	}
	if d, open := m.Dialog(); !open || d.Kind != DialogInfo {
		t.Fatalf("Dialog = %#v (open %v), want success", d, open)
	}
}
