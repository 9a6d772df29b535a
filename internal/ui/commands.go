// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"context"
	"fmt"
	"quick-todo/internal/logger"
	"quick-todo/internal/webhook"

	tea "github.com/charmbracelet/bubbletea"
)

// submitCmd runs one submission off the event loop. It only reports back
// through the returned message; a panic in the submitter is turned into an
// UnexpectedError so the window always returns to idle.
func submitCmd(ctx context.Context, submitter webhook.Submitter, seq int, content string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("submission worker panicked", "seq", seq, "panic", fmt.Sprint(r))
				msg = submitFinishedMsg{
					seq:     seq,
					content: content,
					err:     &webhook.UnexpectedError{Err: fmt.Errorf("%v", r)},
				}
			}
		}()

		_, err := submitter.Submit(ctx, content)
		return submitFinishedMsg{seq: seq, content: content, err: err}
	}
}
