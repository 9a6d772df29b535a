// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package buildinfo exposes version metadata for the quick-todo binaries.
// Values are overridden at build time via -ldflags, for example:
//
//	go build -ldflags "-X quick-todo/internal/buildinfo.Version=1.2.0" ./cmd/add-todo
package buildinfo

import "strings"

var (
	// Version is the semantic version or custom string.
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 (optional).
	Date = ""
)

// Short returns the bare version, never empty.
func Short() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		return "dev"
	}
	return v
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := Short()

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if Date != "" {
		parts = append(parts, "date="+Date)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}

// UserAgent builds a "<client>/<version>" header value.
func UserAgent(client string) string {
	return client + "/" + Short()
}
