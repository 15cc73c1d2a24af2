// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package rateui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the rating TUI.
type KeyMap struct {
	Laugh   key.Binding
	Groan   key.Binding
	Abstain key.Binding
	Reveal  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Laugh: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "laugh"),
	),
	Groan: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "groan"),
	),
	Abstain: key.NewBinding(
		key.WithKeys("a", " "),
		key.WithHelp("a", "abstain"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("enter", "r"),
		key.WithHelp("enter", "reveal punchline"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
