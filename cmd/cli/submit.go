// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"quick-todo/internal/webhook"
	"time"

	"github.com/briandowns/spinner"
)

// addTodo submits content once and prints the outcome. It reports whether the
// webhook accepted the todo; failures never escape as errors.
func addTodo(ctx context.Context, out io.Writer, submitter webhook.Submitter, content string, now func() time.Time) (ok bool) {
	statusColor.Fprintf(out, "🔄 Adding todo: %s\n", content)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " Sending..."
	s.Start()

	defer func() {
		if r := recover(); r != nil {
			s.Stop()
			printFailure(out, &webhook.UnexpectedError{Err: fmt.Errorf("%v", r)}, endpointOf(submitter))
			ok = false
		}
	}()

	_, err := submitter.Submit(ctx, content)
	s.Stop()

	if err != nil {
		printFailure(out, err, endpointOf(submitter))
		return false
	}

	successColor.Fprintln(out, "✅ Todo added successfully!")
	fmt.Fprintf(out, "📝 Content: %s\n", content)
	fmt.Fprintf(out, "🕒 Time: %s\n", now().Format("15:04:05"))
	successColor.Fprintln(out, "🎉 Done! Check your dashboard inbox.")
	return true
}

// endpointOf returns the URL a submitter posts to, when it can tell.
func endpointOf(submitter webhook.Submitter) string {
	if e, ok := submitter.(interface{ Endpoint() string }); ok {
		return e.Endpoint()
	}
	return ""
}

func printFailure(out io.Writer, err error, endpoint string) {
	var (
		httpErr *webhook.HTTPError
		connErr *webhook.ConnectionError
	)
	switch {
	case errors.As(err, &httpErr):
		if httpErr.Status != "" {
			errorColor.Fprintf(out, "❌ HTTP Error %d: %s\n", httpErr.StatusCode, httpErr.Status)
		} else {
			errorColor.Fprintf(out, "❌ HTTP Error %d\n", httpErr.StatusCode)
		}
		if httpErr.Detail != "" {
			fmt.Fprintf(out, "   Details: %s\n", httpErr.Detail)
		}
	case errors.As(err, &connErr):
		errorColor.Fprintf(out, "❌ %s\n", webhook.Describe(err))
		if connErr.Timeout() {
			fmt.Fprintf(out, "   The server did not answer within %s\n", webhook.DefaultTimeout)
		}
		fmt.Fprintln(out, "   Check your internet connection and API URL")
		if endpoint != "" {
			fmt.Fprintf(out, "   API URL: %s\n", endpoint)
		}
	case webhook.Kind(err) == "unexpected":
		errorColor.Fprintf(out, "❌ %s\n", webhook.Describe(err))
	default:
		errorColor.Fprintf(out, "❌ Error: %s\n", webhook.Describe(err))
	}
	tipColor.Fprintln(out, "💡 Tip: Make sure your API URL and internet connection are working.")
}

// waitForEnter keeps the window open until the user acknowledges the result.
// EOF counts as acknowledgment so piped input never hangs.
func waitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "\nPress Enter to close...")
	_, _ = bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)
}
