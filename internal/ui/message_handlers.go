// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"quick-todo/internal/logger"
	"quick-todo/internal/webhook"
)

// handleSubmitFinished applies the outcome of a submission. Results from a
// superseded submission or from after the window closed are dropped.
func (m *Model) handleSubmitFinished(msg submitFinishedMsg) {
	if m.closed || m.state != StateSubmitting || msg.seq != m.seq {
		logger.Debug("ignoring stale submission result", "seq", msg.seq, "current", m.seq, "closed", m.closed)
		return
	}

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.state = StateIdle

	result := webhook.ResultOf(msg.err)
	if result.Success {
		m.status = fmt.Sprintf("✅ Todo added successfully! (%s)", m.now().Format("15:04:05"))
		m.statusTone = toneSuccess
		m.clearText()
		m.openDialog(DialogInfo, "Success", "Todo added successfully!\n\n📝 "+msg.content)
		return
	}

	m.status = "❌ Failed to add todo: " + result.Error
	m.statusTone = toneFailure
	m.openDialog(DialogError, "Error", "Failed to add todo.\n\n"+result.Error)
}
