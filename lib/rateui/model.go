// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package rateui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jokedeck/jokedeck/lib/joke"
)

// Saver persists the full catalogue after each rating. Satisfied by
// *jokestore.Store.
type Saver interface {
	Save(joke.Catalogue) error
}

// Model is the bubbletea model for the rating session. It walks the
// catalogue with a cursor; after the last joke is rated or skipped
// the session is done and the final notice dismissal quits the
// program.
type Model struct {
	catalogue joke.Catalogue
	saver     Saver
	keys      KeyMap
	theme     Theme

	// cursor is the 0-based index of the joke being presented.
	cursor   int
	revealed bool

	// notice is the active modal text. While non-empty, any key or
	// click dismisses it; dismissal advances the cursor (or quits
	// when done is set).
	notice string
	done   bool

	// saveError is shown in the status area after a failed save. The
	// in-memory counter is already incremented, so the rating is
	// included in the next save that succeeds.
	saveError string

	width  int
	height int
}

// NewModel creates a rating model over the given catalogue. The
// catalogue must be non-empty; the caller shuffles it before handing
// it over.
func NewModel(catalogue joke.Catalogue, saver Saver) Model {
	return Model{
		catalogue: catalogue,
		saver:     saver,
		keys:      DefaultKeyMap,
		theme:     DefaultTheme,
	}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil

	case tea.MouseMsg:
		if message.Action != tea.MouseActionPress {
			return model, nil
		}
		if model.notice != "" {
			return model.dismissNotice()
		}
		// Click-to-reveal, matching the punchline placeholder
		// affordance. Idempotent.
		model.revealed = true
		return model, nil

	case tea.KeyMsg:
		if model.notice != "" {
			return model.dismissNotice()
		}
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit
		case key.Matches(message, model.keys.Reveal):
			model.revealed = true
			return model, nil
		case key.Matches(message, model.keys.Laugh):
			return model.rate(joke.Laugh)
		case key.Matches(message, model.keys.Groan):
			return model.rate(joke.Groan)
		case key.Matches(message, model.keys.Abstain):
			return model.abstain()
		}
	}
	return model, nil
}

// rate increments exactly one counter on the current joke and
// persists the full catalogue immediately. The notice and advance
// happen even when the save fails; the mutation is already in memory
// and rides along with the next successful save.
func (model Model) rate(rating joke.Rating) (tea.Model, tea.Cmd) {
	if err := model.catalogue.Rate(model.cursor+1, rating); err != nil {
		// Cursor out of range would be a bug, not a user error.
		model.saveError = err.Error()
		return model, nil
	}

	model.saveError = ""
	if err := model.saver.Save(model.catalogue); err != nil {
		model.saveError = fmt.Sprintf("could not save: %v", err)
	}

	if model.cursor == len(model.catalogue)-1 {
		model.done = true
		model.notice = "That was the last joke. Thanks for rating!"
	} else {
		model.notice = "Thank you for rating!\nThe next joke will now appear."
	}
	return model, nil
}

// abstain advances without touching counters or the store. Any save
// error from an earlier rating stops rendering here: it described a
// save that this action does not repeat.
func (model Model) abstain() (tea.Model, tea.Cmd) {
	model.saveError = ""
	if model.cursor == len(model.catalogue)-1 {
		model.done = true
		model.notice = "That was the last joke. No rating recorded."
	} else {
		model.notice = "You abstained from rating.\nThe next joke will now appear."
	}
	return model, nil
}

// dismissNotice clears the modal and performs the deferred
// transition: quit when the session is done, otherwise present the
// next joke with the punchline hidden again.
func (model Model) dismissNotice() (tea.Model, tea.Cmd) {
	model.notice = ""
	if model.done {
		return model, tea.Quit
	}
	model.cursor++
	model.revealed = false
	return model, nil
}

// Done reports whether the session has reached the terminal state.
func (model Model) Done() bool {
	return model.done
}

// View implements tea.Model.
func (model Model) View() string {
	if len(model.catalogue) == 0 {
		return ""
	}

	width := model.width
	if width <= 0 {
		width = 80
	}

	if model.notice != "" {
		return model.renderNotice(width)
	}

	contentWidth := min(width-4, 72)
	if contentWidth < 20 {
		contentWidth = 20
	}

	current := model.catalogue[model.cursor]

	setupStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.SetupText).
		Width(contentWidth)
	punchlineStyle := lipgloss.NewStyle().
		Italic(true).
		Foreground(model.theme.PunchlineText).
		Width(contentWidth)
	placeholderStyle := lipgloss.NewStyle().
		Faint(true).
		Foreground(model.theme.PlaceholderText).
		Width(contentWidth)
	infoStyle := lipgloss.NewStyle().Foreground(model.theme.InfoText)
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	errorStyle := lipgloss.NewStyle().Foreground(model.theme.ErrorText)

	var sections []string
	sections = append(sections, setupStyle.Render(current.Setup))

	if model.revealed {
		sections = append(sections, punchlineStyle.Render(current.Punchline))
	} else {
		sections = append(sections, placeholderStyle.Render("(click or press enter to reveal punchline)"))
	}

	sections = append(sections, infoStyle.Render(model.progressLine(current)))

	if model.saveError != "" {
		sections = append(sections, errorStyle.Render(model.saveError))
	}

	sections = append(sections, helpStyle.Render(model.helpLine()))

	body := strings.Join(sections, "\n\n")
	if model.height > 0 {
		return lipgloss.Place(width, model.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

// progressLine composes the position indicator and the aggregate
// rating info for the current joke.
func (model Model) progressLine(current joke.Joke) string {
	info := "New joke — no ratings yet."
	if current.Rated() {
		info = fmt.Sprintf("Laughs: %d   Groans: %d", current.Laughs, current.Groans)
	}
	return fmt.Sprintf("Joke %d/%d   |   %s", model.cursor+1, len(model.catalogue), info)
}

func (model Model) helpLine() string {
	bindings := []key.Binding{
		model.keys.Laugh,
		model.keys.Groan,
		model.keys.Abstain,
		model.keys.Reveal,
		model.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return strings.Join(parts, " • ")
}

// renderNotice centers a bordered modal over a blank backdrop. The
// joke is not shown behind the modal: the notice is the only
// actionable element, and hiding the joke prevents reading ahead
// before the next presentation.
func (model Model) renderNotice(width int) string {
	noticeStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.NoticeBorder).
		Foreground(model.theme.NoticeForeground).
		Padding(1, 3).
		Align(lipgloss.Center)
	hint := lipgloss.NewStyle().
		Faint(true).
		Foreground(model.theme.HelpText).
		Render("press any key to continue")

	modal := noticeStyle.Render(model.notice + "\n\n" + hint)
	if model.height > 0 {
		return lipgloss.Place(width, model.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return modal
}
