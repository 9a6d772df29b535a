// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package webhook submits todos to the remote webhook endpoint and classifies
// the outcome. It is shared by the CLI and the interactive client.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"quick-todo/internal/logger"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds one submission, connect to last body byte.
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 1 << 20
)

// Submitter is implemented by *Client and lets front-ends swap in fakes.
type Submitter interface {
	Submit(ctx context.Context, content string) (*Response, error)
}

// Ensure Client implements Submitter at compile time.
var _ Submitter = (*Client)(nil)

// Options configure a Client. Endpoint is required.
type Options struct {
	Endpoint   string
	Secret     string
	Source     string
	UserAgent  string
	Timeout    time.Duration // zero uses DefaultTimeout
	HTTPClient *http.Client  // nil builds one with Timeout
}

// Client posts submissions to one webhook endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	secret    string
	source    string
	userAgent string
}

// NewClient validates opts and builds a Client.
func NewClient(opts Options) (*Client, error) {
	endpoint, err := parseEndpoint(opts.Endpoint)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = "quick-todo"
	}

	return &Client{
		endpoint:  endpoint,
		http:      httpClient,
		secret:    strings.TrimSpace(opts.Secret),
		source:    opts.Source,
		userAgent: userAgent,
	}, nil
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// Submit posts content once. A nil error means the webhook acknowledged the
// todo; otherwise the error is one of the types in errors.go.
func (c *Client) Submit(ctx context.Context, content string) (*Response, error) {
	if c == nil {
		return nil, &UnexpectedError{Err: fmt.Errorf("client is nil")}
	}
	start := time.Now()
	resp, err := c.submit(ctx, content)

	attrs := []any{
		"endpoint", c.endpoint.Redacted(),
		"source", c.source,
		"kind", Kind(err),
		"duration", time.Since(start),
	}
	if err != nil {
		logger.Warn("todo submission failed", append(attrs, "error", err)...)
	} else {
		logger.Info("todo submitted", attrs...)
	}
	return resp, err
}

func (c *Client) submit(ctx context.Context, content string) (*Response, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrEmptyContent
	}

	body, err := json.Marshal(Submission{Content: trimmed, Source: c.source})
	if err != nil {
		return nil, &UnexpectedError{Err: fmt.Errorf("encode submission: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, &UnexpectedError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, &ConnectionError{Err: fmt.Errorf("read response: %w", err)}
	}
	tooLarge := len(raw) > maxResponseBytes

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := ""
		if !tooLarge {
			detail = errorDetail(raw)
		}
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     reasonPhrase(resp),
			Detail:     detail,
		}
	}
	if tooLarge {
		return nil, &UnexpectedError{Err: fmt.Errorf("response too large (over %d bytes)", maxResponseBytes)}
	}

	var payload Response
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if !payload.OK() {
		msg := payload.ErrorText()
		if msg == "" {
			msg = "Unknown error"
		}
		return &payload, &RejectedError{Message: msg}
	}
	return &payload, nil
}

// errorDetail extracts the "error" field of a JSON error body, or "".
func errorDetail(raw []byte) string {
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return rawText(body.Error)
}

// reasonPhrase returns the reason phrase the server sent, falling back to the
// standard text for the code.
func reasonPhrase(resp *http.Response) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase == "" {
		phrase = http.StatusText(resp.StatusCode)
	}
	return phrase
}

func parseEndpoint(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("webhook endpoint is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q must use http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", raw)
	}
	return u, nil
}
