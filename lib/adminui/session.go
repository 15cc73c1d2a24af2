// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jokedeck/jokedeck/lib/joke"
)

// Saver persists the catalogue after a mutating command. Satisfied by
// *jokestore.Store.
type Saver interface {
	Save(joke.Catalogue) error
}

// Session holds the state of one interactive admin run: the loaded
// catalogue, the store to persist it to, and the text streams the
// menu loop talks over. Input and output are injected so tests can
// script a whole session.
type Session struct {
	catalogue joke.Catalogue
	saver     Saver
	scanner   *bufio.Scanner
	output    io.Writer
	listWidth int
	logger    *slog.Logger
}

// NewSession creates a session over the given catalogue. listWidth
// bounds the shortened setups in list and search output. A nil logger
// discards log records.
func NewSession(catalogue joke.Catalogue, saver Saver, input io.Reader, output io.Writer, listWidth int, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		catalogue: catalogue,
		saver:     saver,
		scanner:   bufio.NewScanner(input),
		output:    output,
		listWidth: listWidth,
		logger:    logger,
	}
}

// Catalogue returns the session's current catalogue.
func (session *Session) Catalogue() joke.Catalogue {
	return session.catalogue
}

// Run executes the menu loop until the user quits or the input stream
// ends. Every failure inside a command is reported and terminal to
// that command only; Run itself returns nil on any normal exit.
func (session *Session) Run() error {
	fmt.Fprintln(session.output, "Welcome to the Joke Catalogue Admin Program.")

	for {
		fmt.Fprintln(session.output, "\nChoose [a]dd, [l]ist, [s]earch, [v]iew, [d]elete, [t]op or [q]uit.")
		fmt.Fprint(session.output, "> ")

		line, ok := session.readLine()
		if !ok {
			// Input closed: behave like quit.
			fmt.Fprintln(session.output)
			return nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			fmt.Fprintln(session.output, "Invalid choice. Please try again.")
			continue
		}

		// Split an inline argument off the command letter, so
		// "s hobbit" searches immediately and "v 2" views joke 2.
		choice, argument, _ := strings.Cut(trimmed, " ")
		choice = strings.ToLower(choice)
		argument = strings.TrimSpace(argument)

		quit, err := session.dispatch(choice, argument)
		if err == errInputClosed {
			fmt.Fprintln(session.output)
			return nil
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// dispatch runs one command. The returned bool is true for quit.
func (session *Session) dispatch(choice, argument string) (bool, error) {
	switch choice {
	case "a":
		return false, session.handleAdd()
	case "l":
		session.handleList()
	case "s":
		return false, session.handleSearch(argument)
	case "v":
		return false, session.handleView(argument)
	case "d":
		return false, session.handleDelete(argument)
	case "t":
		session.handleTop()
	case "q":
		fmt.Fprintln(session.output, "Goodbye!")
		return true, nil
	default:
		fmt.Fprintln(session.output, "Invalid choice. Please try again.")
	}
	return false, nil
}

// readLine reads the next input line. ok is false when the stream is
// exhausted.
func (session *Session) readLine() (string, bool) {
	if !session.scanner.Scan() {
		return "", false
	}
	return session.scanner.Text(), true
}

// save persists the catalogue and reports a failed write to the user
// without aborting the session. The in-memory catalogue keeps the
// mutation, so a later successful save includes it.
func (session *Session) save() {
	if err := session.saver.Save(session.catalogue); err != nil {
		session.logger.Error("save failed", "error", err)
		fmt.Fprintf(session.output, "Warning: could not save the catalogue: %v\n", err)
	}
}
