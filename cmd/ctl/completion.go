// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ctl

import (
	"quick-todo/internal/prefs"
	"strings"

	"github.com/spf13/cobra"
)

// themeCompletionFunc completes the first argument with the known theme names.
func themeCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var matches []string
	for _, name := range prefs.Themes {
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
