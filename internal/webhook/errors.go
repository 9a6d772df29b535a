// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package webhook

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ErrEmptyContent is returned before any network I/O when the todo text is
// empty after trimming.
var ErrEmptyContent = errors.New("todo content cannot be empty")

// HTTPError reports a non-2xx response.
type HTTPError struct {
	StatusCode int
	Status     string // reason phrase, e.g. "Bad Request"
	Detail     string // "error" field of a JSON body, if any
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("HTTP error %d", e.StatusCode)
	if e.Status != "" {
		msg += ": " + e.Status
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// ConnectionError reports a transport failure: DNS, refused connection,
// TLS, timeout, or a broken response body.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "connection error: " + reason(e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was the request deadline.
func (e *ConnectionError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// MalformedResponseError reports a 2xx body that is not valid JSON.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return "invalid response from server"
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// RejectedError reports a well-formed reply whose success field is not truthy.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "Unknown error"
	}
	return e.Message
}

// UnexpectedError wraps any failure outside the other categories.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return "unexpected error: " + e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// Kind names the category of a submission error for logging.
func Kind(err error) string {
	var (
		httpErr      *HTTPError
		connErr      *ConnectionError
		malformedErr *MalformedResponseError
		rejectedErr  *RejectedError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrEmptyContent):
		return "empty_content"
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &connErr):
		if connErr.Timeout() {
			return "timeout"
		}
		return "connection"
	case errors.As(err, &malformedErr):
		return "malformed_response"
	case errors.As(err, &rejectedErr):
		return "rejected"
	default:
		return "unexpected"
	}
}

// Describe returns the one-line message shown to the user for err.
func Describe(err error) string {
	var (
		httpErr      *HTTPError
		connErr      *ConnectionError
		malformedErr *MalformedResponseError
		rejectedErr  *RejectedError
		unexpected   *UnexpectedError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyContent):
		return "Todo content cannot be empty"
	case errors.As(err, &httpErr):
		msg := fmt.Sprintf("HTTP Error %d", httpErr.StatusCode)
		if httpErr.Status != "" {
			msg += ": " + httpErr.Status
		}
		if httpErr.Detail != "" {
			msg += " - " + httpErr.Detail
		}
		return msg
	case errors.As(err, &connErr):
		return "Connection Error: " + reason(connErr.Err)
	case errors.As(err, &malformedErr):
		return "Invalid response from server"
	case errors.As(err, &rejectedErr):
		return rejectedErr.Error()
	case errors.As(err, &unexpected):
		return "Unexpected error: " + unexpected.Err.Error()
	default:
		return "Unexpected error: " + err.Error()
	}
}

// reason strips the "Post \"<url>\":" prefix net/http puts on transport errors.
func reason(err error) string {
	if err == nil {
		return "unknown"
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
