// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package logger writes the diagnostic log shared by all quick-todo binaries.
// User-facing output never goes through this package.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var defaultLogger *slog.Logger

// LogFilePath determines the path for the application log file based on XDG spec.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "quick-todo", "app.log"), nil
}

// openLogFile creates the log directory and opens the log file for appending.
func openLogFile() (io.Writer, error) {
	logFilePath, err := LogFilePath()
	if err != nil {
		return nil, err
	}
	logDir := filepath.Dir(logFilePath)
	// 0750: user rwx, group rx, others ---
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", logDir, err)
	}
	// 0640: user rw, group r, others ---
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", logFilePath, err)
	}
	return file, nil
}

// InitLogger configures the default logger for the named binary. Records go
// to the log file; when it cannot be opened, warnings and errors go to stderr
// instead, except for the interactive client whose screen owns the terminal.
// It MUST be called once at the beginning of the application.
func InitLogger(binary string, interactive bool) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var w io.Writer
	file, err := openLogFile()
	switch {
	case err == nil:
		w = file
	case interactive:
		w = io.Discard
	default:
		fmt.Fprintf(os.Stderr, "Warning: %v. File logging disabled.\n", err)
		w = os.Stderr
		opts.Level = slog.LevelWarn
	}

	defaultLogger = slog.New(slog.NewJSONHandler(w, opts)).With("binary", binary, "pid", os.Getpid())
}

// SetLogger allows replacing the default logger instance, mainly in tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}
