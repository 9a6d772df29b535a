// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"quick-todo/internal/webhook"
	"strings"
	"testing"
	"time"
)

type fakeSubmitter struct {
	calls    int
	contents []string
	err      error
	panicMsg string
}

func (f *fakeSubmitter) Submit(_ context.Context, content string) (*webhook.Response, error) {
	f.calls++
	f.contents = append(f.contents, content)
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &webhook.Response{Success: json.RawMessage("true")}, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 4, 14, 5, 6, 0, time.Local)
}

func runRoot(t *testing.T, deps Deps, stdin string, args ...string) string {
	t.Helper()
	if deps.Now == nil {
		deps.Now = fixedNow
	}
	var out bytes.Buffer
	cmd := NewRootCmd(deps)
	if args == nil {
		// cobra falls back to os.Args[1:] (the go test flags) for nil args
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	return out.String()
}

func TestRoot_NoArgsPrintsUsageWithoutRequest(t *testing.T) {
	fake := &fakeSubmitter{}
	out := runRoot(t, Deps{Submitter: fake}, "")

	if fake.calls != 0 {
		t.Fatalf("Submit called %d times, want 0", fake.calls)
	}
	for _, want := range []string{"Usage:", "Examples:", "add-todo"} {
		if !strings.Contains(out, want) {
			t.Fatalf("usage output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "Press Enter") {
		t.Fatalf("usage output should not pause: %q", out)
	}
}

func TestRoot_LoneHelpTokenPrintsUsage(t *testing.T) {
	fake := &fakeSubmitter{}
	out := runRoot(t, Deps{Submitter: fake}, "", "--help")
	if fake.calls != 0 || !strings.Contains(out, "Usage:") {
		t.Fatalf("--help: calls=%d out=%q, want usage and no request", fake.calls, out)
	}
}

func TestRoot_JoinsArgumentsAndReportsSuccess(t *testing.T) {
	fake := &fakeSubmitter{}
	out := runRoot(t, Deps{Submitter: fake}, "\n", "Call", "dentist", "-v", "for appointment")

	if fake.calls != 1 {
		t.Fatalf("Submit called %d times, want 1", fake.calls)
	}
	if got := fake.contents[0]; got != "Call dentist -v for appointment" {
		t.Fatalf("content = %q, want joined arguments", got)
	}
	for _, want := range []string{
		"Adding todo: Call dentist -v for appointment",
		"Todo added successfully!",
		"Time: 14:05:06",
		"Press Enter to close...",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestRoot_FailureMessages(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		wants []string
	}{
		{
			name:  "rejected",
			err:   &webhook.RejectedError{Message: "X"},
			wants: []string{"❌ Error: X", "Tip:"},
		},
		{
			name:  "http with detail",
			err:   &webhook.HTTPError{StatusCode: 401, Status: "Unauthorized", Detail: "Unauthorized"},
			wants: []string{"❌ HTTP Error 401: Unauthorized", "Details: Unauthorized"},
		},
		{
			name:  "http without detail",
			err:   &webhook.HTTPError{StatusCode: 502, Status: "Bad Gateway"},
			wants: []string{"❌ HTTP Error 502: Bad Gateway"},
		},
		{
			name:  "connection",
			err:   &webhook.ConnectionError{Err: context.DeadlineExceeded},
			wants: []string{"Connection Error: context deadline exceeded", "did not answer within 10s", "Check your internet connection"},
		},
		{
			name:  "malformed",
			err:   &webhook.MalformedResponseError{},
			wants: []string{"❌ Error: Invalid response from server"},
		},
		{
			name:  "empty",
			err:   webhook.ErrEmptyContent,
			wants: []string{"❌ Error: Todo content cannot be empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runRoot(t, Deps{Submitter: &fakeSubmitter{err: tt.err}}, "", "anything")
			for _, want := range tt.wants {
				if !strings.Contains(out, want) {
					t.Fatalf("output %q missing %q", out, want)
				}
			}
			if strings.Contains(out, "successfully") {
				t.Fatalf("failure output claims success: %q", out)
			}
			if !strings.Contains(out, "Press Enter to close...") {
				t.Fatalf("failure output should still pause: %q", out)
			}
		})
	}
}

func TestRoot_PanickingSubmitterIsReported(t *testing.T) {
	out := runRoot(t, Deps{Submitter: &fakeSubmitter{panicMsg: "kaboom"}}, "", "todo")
	if !strings.Contains(out, "Unexpected error: kaboom") {
		t.Fatalf("output %q missing unexpected error", out)
	}
}

func TestRoot_EndToEndAgainstWebhook(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var got webhook.Submission
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	t.Cleanup(server.Close)

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "endpoint: " + server.URL + "\nsecret: topsecret\n"
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := runRoot(t, Deps{ConfigPath: path}, "\n", "  Buy", "milk  ")
	if !strings.Contains(out, "Todo added successfully!") {
		t.Fatalf("output %q, want success", out)
	}
	if got.Content != "Buy milk" || got.Source != webhook.SourceCLI {
		t.Fatalf("submission = %#v, want trimmed content from Desktop", got)
	}
	if auth != "Bearer topsecret" {
		t.Fatalf("Authorization = %q, want Bearer topsecret", auth)
	}
}

func TestRoot_BadConfigIsReportedNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("endpoint: [\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	out := runRoot(t, Deps{ConfigPath: path}, "", "todo")
	if !strings.Contains(out, "Configuration error") || !strings.Contains(out, "Press Enter") {
		t.Fatalf("output %q, want configuration error then pause", out)
	}
}

func TestPrintFailure_HTTPErrorWithoutReasonPhrase(t *testing.T) {
	var out bytes.Buffer
	printFailure(&out, &webhook.HTTPError{StatusCode: 520}, "")

	if !strings.Contains(out.String(), "❌ HTTP Error 520\n") {
		t.Fatalf("output %q, want the bare status line", out.String())
	}
	if strings.Contains(out.String(), "520: ") {
		t.Fatalf("output %q has a dangling separator", out.String())
	}
}

func TestRoot_ConnectionFailureShowsEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL + "/api/webhook/todos"
	server.Close()

	client, err := webhook.NewClient(webhook.Options{Endpoint: endpoint, Source: webhook.SourceCLI})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	out := runRoot(t, Deps{Submitter: client}, "", "todo")
	for _, want := range []string{"Connection Error:", "API URL: " + endpoint} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}
