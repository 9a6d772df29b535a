// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// submitFinishedMsg carries the outcome of one background submission back to
// the event loop. seq identifies the submission that produced it.
type submitFinishedMsg struct {
	seq     int
	content string
	err     error
}
