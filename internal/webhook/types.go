// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package webhook

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Source tags identify which client produced a submission.
const (
	SourceCLI = "Desktop"
	SourceGUI = "Desktop-GUI"
)

// Submission is the JSON body posted to the webhook.
type Submission struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// Response mirrors the JSON body returned by the webhook. Fields other than
// success are kept raw so an unexpected shape never fails the decode.
type Response struct {
	Success json.RawMessage `json:"success"`
	Error   json.RawMessage `json:"error,omitempty"`
	Message json.RawMessage `json:"message,omitempty"`
	Todo    json.RawMessage `json:"todo,omitempty"`
}

// OK reports whether the success field is truthy.
func (r Response) OK() bool {
	return truthy(r.Success)
}

// ErrorText returns the error field as display text, or "".
func (r Response) ErrorText() string {
	return rawText(r.Error)
}

// MessageText returns the message field as display text, or "".
func (r Response) MessageText() string {
	return rawText(r.Message)
}

// rawText renders a JSON value for display: strings are unquoted and
// trimmed, null is empty, anything else is its compact JSON text.
func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}

// Result is the display-level outcome of one submission.
type Result struct {
	Success bool
	Error   string
}

// ResultOf converts the error returned by Submit into a Result.
func ResultOf(err error) Result {
	if err == nil {
		return Result{Success: true}
	}
	return Result{Error: Describe(err)}
}

// truthy applies the usual dynamic-language truth rules to a raw JSON value:
// false, null, 0, "", [] and {} are false, everything else is true.
func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	}
	return false
}
