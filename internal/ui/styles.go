// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// asciiBorder keeps the mono theme free of box-drawing characters.
var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

type palette struct {
	accent, success, failure, busy, muted lipgloss.TerminalColor
	border                                lipgloss.Border
}

type styles struct {
	frame          lipgloss.Style
	title          lipgloss.Style
	label          lipgloss.Style
	button         lipgloss.Style
	buttonFocused  lipgloss.Style
	buttonDisabled lipgloss.Style
	spinner        lipgloss.Style
	help           lipgloss.Style
	dialog         lipgloss.Style
	dialogTitle    lipgloss.Style
	tones          map[statusTone]lipgloss.Style
	dialogBorders  map[DialogKind]lipgloss.TerminalColor
}

func paletteFor(theme string) palette {
	switch strings.ToLower(theme) {
	case "neon":
		return palette{
			accent:  lipgloss.Color("201"),
			success: lipgloss.Color("46"),
			failure: lipgloss.Color("196"),
			busy:    lipgloss.Color("51"),
			muted:   lipgloss.Color("244"),
			border:  lipgloss.RoundedBorder(),
		}
	case "mono":
		return palette{
			accent:  lipgloss.NoColor{},
			success: lipgloss.NoColor{},
			failure: lipgloss.NoColor{},
			busy:    lipgloss.NoColor{},
			muted:   lipgloss.NoColor{},
			border:  asciiBorder,
		}
	default: // classic
		return palette{
			accent:  lipgloss.Color("62"),
			success: lipgloss.Color("10"),
			failure: lipgloss.Color("9"),
			busy:    lipgloss.Color("12"),
			muted:   lipgloss.Color("240"),
			border:  lipgloss.NormalBorder(),
		}
	}
}

func newStyles(theme string) styles {
	p := paletteFor(theme)

	button := lipgloss.NewStyle().Padding(0, 1)
	return styles{
		frame: lipgloss.NewStyle().
			Border(p.border, true).
			BorderForeground(p.accent).
			Padding(0, 1).
			Width(frameWidth - 2).
			Height(frameHeight - 2).
			MaxWidth(frameWidth).
			MaxHeight(frameHeight),
		title:          lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		label:          lipgloss.NewStyle(),
		button:         button,
		buttonFocused:  button.Reverse(true).Bold(true),
		buttonDisabled: button.Faint(true).Strikethrough(true),
		spinner:        lipgloss.NewStyle().Foreground(p.busy),
		help:           lipgloss.NewStyle().Foreground(p.muted).Faint(true),
		dialog: lipgloss.NewStyle().
			Border(p.border, true).
			Padding(1, 2).
			Width(frameWidth - 12),
		dialogTitle: lipgloss.NewStyle().Bold(true),
		tones: map[statusTone]lipgloss.Style{
			toneReady:   lipgloss.NewStyle().Foreground(p.success),
			toneBusy:    lipgloss.NewStyle().Foreground(p.busy),
			toneSuccess: lipgloss.NewStyle().Foreground(p.success),
			toneFailure: lipgloss.NewStyle().Foreground(p.failure),
		},
		dialogBorders: map[DialogKind]lipgloss.TerminalColor{
			DialogInfo:    p.success,
			DialogWarning: p.busy,
			DialogError:   p.failure,
		},
	}
}
