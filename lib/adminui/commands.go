// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/jokedeck/jokedeck/lib/joke"
)

// handleAdd prompts for both text fields, appends the joke, and
// persists immediately.
func (session *Session) handleAdd() error {
	setup, err := session.promptText("Enter setup of joke: ")
	if err != nil {
		return err
	}
	punchline, err := session.promptText("Enter punchline of joke: ")
	if err != nil {
		return err
	}

	if err := session.catalogue.Add(setup, punchline); err != nil {
		// promptText already rejected blank input, so this is a bug.
		fmt.Fprintf(session.output, "Could not add joke: %v\n", err)
		return nil
	}

	session.logger.Info("joke added", "position", len(session.catalogue))
	session.save()
	fmt.Fprintln(session.output, "Joke added.")
	return nil
}

// handleList prints every joke's position and shortened setup in
// insertion order.
func (session *Session) handleList() {
	if len(session.catalogue) == 0 {
		fmt.Fprintln(session.output, "No jokes saved.")
		return
	}

	fmt.Fprintln(session.output, "List of jokes:")
	for index, entry := range session.catalogue {
		fmt.Fprintf(session.output, "%d) %s\n", index+1, session.shorten(entry.Setup))
	}
}

// handleSearch finds case-insensitive substring matches in setups and
// punchlines. The term comes from the inline argument or a prompt.
func (session *Session) handleSearch(argument string) error {
	if len(session.catalogue) == 0 {
		fmt.Fprintln(session.output, "No jokes saved.")
		return nil
	}

	term := argument
	if term == "" {
		prompted, err := session.promptText("Enter search term: ")
		if err != nil {
			return err
		}
		term = prompted
	}

	fmt.Fprintln(session.output, "Search results:")
	matches := session.catalogue.Search(term)
	if len(matches) == 0 {
		fmt.Fprintln(session.output, "No results found.")
		return nil
	}
	for _, match := range matches {
		fmt.Fprintf(session.output, "%d) %s\n", match.Position, session.shorten(match.Joke.Setup))
	}
	return nil
}

// handleView prints one joke in full with its derived rating stats
// and commentary.
func (session *Session) handleView(argument string) error {
	if len(session.catalogue) == 0 {
		fmt.Fprintln(session.output, "No jokes saved.")
		return nil
	}

	position, err := session.resolvePosition(argument, "Joke number to view: ")
	if err != nil {
		return err
	}

	viewed, err := session.catalogue.At(position)
	if err != nil {
		fmt.Fprintln(session.output, "Invalid index number.")
		return nil
	}

	fmt.Fprintf(session.output, "\n%s\n%s\n", viewed.Setup, viewed.Punchline)

	stats := viewed.Stats()
	if !stats.Rated {
		fmt.Fprintln(session.output, "This joke has not been rated.")
		return nil
	}

	fmt.Fprintf(session.output, "Laughs: %d (%.1f%%), Groans: %d (%.1f%%)\n",
		stats.Laughs, stats.LaughPercent, stats.Groans, stats.GroanPercent)

	switch stats.Commentary {
	case joke.CommentaryHilarious:
		fmt.Fprintln(session.output, "This joke is hilarious!")
	case joke.CommentaryGroanWorthy:
		fmt.Fprintln(session.output, "This joke is groan-worthy!")
	}
	return nil
}

// handleDelete removes one joke by position and persists immediately.
// Every joke after the removed one shifts down a position.
func (session *Session) handleDelete(argument string) error {
	if len(session.catalogue) == 0 {
		fmt.Fprintln(session.output, "No jokes saved.")
		return nil
	}

	position, err := session.resolvePosition(argument, "Joke number to delete: ")
	if err != nil {
		return err
	}

	if err := session.catalogue.Delete(position); err != nil {
		fmt.Fprintln(session.output, "Invalid index number.")
		return nil
	}

	session.logger.Info("joke deleted", "position", position)
	session.save()
	fmt.Fprintln(session.output, "Joke deleted.")
	return nil
}

// handleTop reports the joke with the most laughs and the joke with
// the most groans. Ties go to the earlier-inserted joke.
func (session *Session) handleTop() {
	topLaughs, topGroans, ok := session.catalogue.Top()
	if !ok {
		fmt.Fprintln(session.output, "No jokes saved.")
		return
	}

	fmt.Fprintln(session.output, "\nTop Laughs Joke:")
	session.printTopEntry(topLaughs.Joke)

	fmt.Fprintln(session.output, "\nTop Groans Joke:")
	session.printTopEntry(topGroans.Joke)
}

func (session *Session) printTopEntry(entry joke.Joke) {
	fmt.Fprintln(session.output, entry.Setup)
	fmt.Fprintf(session.output, "Punchline: %s\n", entry.Punchline)
	fmt.Fprintf(session.output, "Laughs: %d, Groans: %d\n", entry.Laughs, entry.Groans)
}

// shorten bounds text to the session's list width, marking the cut
// with an ellipsis. Width-aware truncation keeps wide characters from
// overflowing the column.
func (session *Session) shorten(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	return ansi.Truncate(collapsed, session.listWidth, "...")
}
