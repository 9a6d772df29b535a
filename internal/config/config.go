// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles the client configuration: the webhook endpoint and
// the optional bearer secret, read from and written to a YAML file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is used when no config file sets one. Deployments override
// it at build time with -ldflags "-X quick-todo/internal/config.DefaultEndpoint=...".
var DefaultEndpoint = "http://localhost:3000/api/webhook/todos"

// Config represents the top-level client configuration.
type Config struct {
	// Endpoint is the absolute http(s) URL of the todo webhook
	Endpoint string `yaml:"endpoint"`

	// Secret is sent as "Authorization: Bearer <secret>" when non-empty
	Secret string `yaml:"secret,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Endpoint: DefaultEndpoint}
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "quick-todo", "config.yaml"), nil
}

// Load reads the config at path (the default path when empty). A missing file
// is not an error; defaults are returned instead.
func Load(path string) (Config, error) {
	configPath, err := resolveConfigPath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	cfg.Secret = strings.TrimSpace(cfg.Secret)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// Validate checks that the endpoint is an absolute http or https URL.
func (c Config) Validate() error {
	return ValidateEndpoint(c.Endpoint)
}

// ValidateEndpoint checks a single endpoint value.
func ValidateEndpoint(endpoint string) error {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return fmt.Errorf("endpoint is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("endpoint %q is not a valid URL: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q must start with http:// or https://", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint %q has no host", endpoint)
	}
	return nil
}

// MaskedSecret returns the secret with all but its last four characters hidden.
func (c Config) MaskedSecret() string {
	if c.Secret == "" {
		return "(none)"
	}
	if len(c.Secret) <= 4 {
		return strings.Repeat("*", len(c.Secret))
	}
	return strings.Repeat("*", len(c.Secret)-4) + c.Secret[len(c.Secret)-4:]
}

func EnsureConfigDir(path string) error {
	configPath, err := resolveConfigPath(path)
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil { // rwxr-x---
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

// Save writes cfg to path (the default path when empty).
func Save(path string, cfg Config) error {
	configPath, err := resolveConfigPath(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := EnsureConfigDir(configPath); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// rw------- since the file may hold the webhook secret
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}
	return nil
}

// ResolvePath expands a leading "~/" to the user's home directory.
func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}

func resolveConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultConfigPath()
	}
	return ResolvePath(strings.TrimSpace(path))
}
