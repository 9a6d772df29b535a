// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package prefs handles appearance preferences for the interactive client.
// Preferences are stored in <user config dir>/quick-todo/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for the interactive client.
type Prefs struct {
	Theme string `toml:"theme"`
}

const defaultTheme = "classic"

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// DefaultPath returns the default preferences file path.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "quick-todo", "prefs.toml"), nil
}

// Load reads preferences from path, falling back to defaults when the file is
// missing, unreadable or invalid. Appearance never blocks startup.
func Load(path string) Prefs {
	prefs := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return prefs
	}

	var loaded Prefs
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return prefs
	}

	theme := strings.ToLower(strings.TrimSpace(loaded.Theme))
	if slices.Contains(Themes, theme) {
		prefs.Theme = theme
	}
	return prefs
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	theme := strings.ToLower(strings.TrimSpace(p.Theme))
	if !slices.Contains(Themes, theme) {
		return fmt.Errorf("unknown theme %q (want one of %s)", p.Theme, strings.Join(Themes, ", "))
	}
	p.Theme = theme

	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o750); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return DefaultPath()
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
