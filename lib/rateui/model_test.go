// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package rateui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jokedeck/jokedeck/lib/joke"
)

// recordingSaver captures every catalogue handed to Save, copying the
// jokes so later mutations don't retroactively change the record.
type recordingSaver struct {
	saves []joke.Catalogue
	err   error
}

func (saver *recordingSaver) Save(catalogue joke.Catalogue) error {
	saver.saves = append(saver.saves, append(joke.Catalogue(nil), catalogue...))
	return saver.err
}

func testCatalogue() joke.Catalogue {
	return joke.Catalogue{
		{Setup: "Why do programmers prefer dark mode?", Punchline: "Because light attracts bugs."},
		{Setup: "Why was the computer cold?", Punchline: "It left its Windows open."},
	}
}

func pressKey(t *testing.T, model tea.Model, runes ...rune) (tea.Model, tea.Cmd) {
	t.Helper()
	if len(runes) == 0 {
		return model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	return model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: runes})
}

func TestPresentingHidesPunchlineUntilReveal(t *testing.T) {
	model := NewModel(testCatalogue(), &recordingSaver{})

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := updated.View()

	if !strings.Contains(view, "Why do programmers prefer dark mode?") {
		t.Error("setup not shown")
	}
	if strings.Contains(view, "Because light attracts bugs.") {
		t.Error("punchline visible before reveal")
	}
	if !strings.Contains(view, "reveal punchline") {
		t.Error("placeholder missing")
	}
	if !strings.Contains(view, "Joke 1/2") {
		t.Error("progress indicator missing")
	}
	if !strings.Contains(view, "no ratings yet") {
		t.Error("unrated info line missing")
	}

	// Reveal is idempotent: two reveals, punchline stays visible.
	updated, _ = pressKey(t, updated)
	updated, _ = pressKey(t, updated)
	view = updated.View()
	if !strings.Contains(view, "Because light attracts bugs.") {
		t.Error("punchline not shown after reveal")
	}
}

func TestRatingInfoShowsCounts(t *testing.T) {
	catalogue := testCatalogue()
	catalogue[0].Laughs = 3
	catalogue[0].Groans = 1
	model := NewModel(catalogue, &recordingSaver{})

	view := model.View()
	if !strings.Contains(view, "Laughs: 3   Groans: 1") {
		t.Errorf("expected raw counts in info line, got:\n%s", view)
	}
}

func TestFullRatingSession(t *testing.T) {
	saver := &recordingSaver{}
	var model tea.Model = NewModel(testCatalogue(), saver)

	// Rate joke 1 with a laugh: counter incremented and persisted.
	model, _ = pressKey(t, model, 'l')
	if len(saver.saves) != 1 {
		t.Fatalf("expected 1 save after rating, got %d", len(saver.saves))
	}
	if saver.saves[0][0].Laughs != 1 || saver.saves[0][0].Groans != 0 {
		t.Errorf("persisted joke 1 = %+v, want laughs=1", saver.saves[0][0])
	}
	if !strings.Contains(model.View(), "Thank you for rating!") {
		t.Error("rating notice not shown")
	}

	// Any key dismisses the notice and advances to joke 2.
	model, _ = pressKey(t, model, 'x')
	if !strings.Contains(model.View(), "Joke 2/2") {
		t.Errorf("expected joke 2 presented, got:\n%s", model.View())
	}

	// Rate joke 2 with a groan: persisted, session done.
	model, _ = pressKey(t, model, 'g')
	if len(saver.saves) != 2 {
		t.Fatalf("expected 2 saves, got %d", len(saver.saves))
	}
	if saver.saves[1][1].Groans != 1 {
		t.Errorf("persisted joke 2 = %+v, want groans=1", saver.saves[1][1])
	}
	if !strings.Contains(model.View(), "That was the last joke. Thanks for rating!") {
		t.Error("final notice not shown")
	}

	// Dismissing the final notice quits.
	model, command := pressKey(t, model, 'x')
	if command == nil {
		t.Fatal("expected quit command after final notice")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("expected tea.QuitMsg from final dismissal")
	}
	if !model.(Model).Done() {
		t.Error("model should report done")
	}
}

func TestAbstainDoesNotMutateOrSave(t *testing.T) {
	saver := &recordingSaver{}
	var model tea.Model = NewModel(testCatalogue(), saver)

	model, _ = pressKey(t, model, 'a')
	if len(saver.saves) != 0 {
		t.Errorf("abstain must not persist, got %d saves", len(saver.saves))
	}
	if !strings.Contains(model.View(), "You abstained from rating.") {
		t.Error("abstain notice not shown")
	}

	model, _ = pressKey(t, model, 'x')
	rateModel := model.(Model)
	if rateModel.catalogue[0].Laughs != 0 || rateModel.catalogue[0].Groans != 0 {
		t.Errorf("abstain mutated counters: %+v", rateModel.catalogue[0])
	}
	if !strings.Contains(model.View(), "Joke 2/2") {
		t.Error("abstain must still advance")
	}
}

func TestAbstainOnLastJokeEndsSession(t *testing.T) {
	saver := &recordingSaver{}
	var model tea.Model = NewModel(joke.Catalogue{
		{Setup: "s", Punchline: "p"},
	}, saver)

	model, _ = pressKey(t, model, 'a')
	if !strings.Contains(model.View(), "No rating recorded.") {
		t.Error("expected the distinct abstain end notice")
	}

	_, command := pressKey(t, model, 'x')
	if command == nil {
		t.Fatal("expected quit command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("expected tea.QuitMsg")
	}
}

func TestSaveErrorShownAndRatingRetained(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	var model tea.Model = NewModel(testCatalogue(), saver)

	model, _ = pressKey(t, model, 'l')
	model, _ = pressKey(t, model, 'x') // dismiss the notice

	view := model.View()
	if !strings.Contains(view, "could not save") {
		t.Errorf("save error not surfaced:\n%s", view)
	}

	// The in-memory increment survives; a later successful save
	// includes it.
	saver.err = nil
	_, _ = pressKey(t, model, 'g')
	final := saver.saves[len(saver.saves)-1]
	if final[0].Laughs != 1 {
		t.Errorf("earlier rating lost: %+v", final[0])
	}
	if final[1].Groans != 1 {
		t.Errorf("current rating missing: %+v", final[1])
	}
}

func TestAbstainClearsEarlierSaveError(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	var model tea.Model = NewModel(joke.Catalogue{
		{Setup: "one", Punchline: "p"},
		{Setup: "two", Punchline: "p"},
		{Setup: "three", Punchline: "p"},
	}, saver)

	// Failed save on joke 1: the error renders under joke 2.
	model, _ = pressKey(t, model, 'l')
	model, _ = pressKey(t, model, 'x')
	if !strings.Contains(model.View(), "could not save") {
		t.Fatal("save error should render after the failed rating")
	}

	// Abstaining attempts no save, so the stale error must not
	// follow the session onto joke 3.
	model, _ = pressKey(t, model, 'a')
	model, _ = pressKey(t, model, 'x')
	if strings.Contains(model.View(), "could not save") {
		t.Errorf("stale save error rendered after abstain:\n%s", model.View())
	}
}

func TestQuitKey(t *testing.T) {
	model := NewModel(testCatalogue(), &recordingSaver{})

	_, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if command == nil {
		t.Fatal("expected quit command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("expected tea.QuitMsg")
	}
}

func TestMouseClickReveals(t *testing.T) {
	model := NewModel(testCatalogue(), &recordingSaver{})

	updated, _ := model.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !strings.Contains(updated.View(), "Because light attracts bugs.") {
		t.Error("click did not reveal the punchline")
	}
}
