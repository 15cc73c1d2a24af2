// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package rateui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the rating TUI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	SetupText       lipgloss.Color
	PunchlineText   lipgloss.Color
	PlaceholderText lipgloss.Color
	InfoText        lipgloss.Color
	HelpText        lipgloss.Color
	ErrorText       lipgloss.Color

	NoticeBorder     lipgloss.Color
	NoticeForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	SetupText:       lipgloss.Color("255"),
	PunchlineText:   lipgloss.Color("222"),
	PlaceholderText: lipgloss.Color("245"),
	InfoText:        lipgloss.Color("250"),
	HelpText:        lipgloss.Color("243"),
	ErrorText:       lipgloss.Color("203"),

	NoticeBorder:     lipgloss.Color("111"),
	NoticeForeground: lipgloss.Color("255"),
}
