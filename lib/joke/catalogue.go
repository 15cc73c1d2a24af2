// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package joke

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrInvalidPosition is returned by position-taking operations when
// the position does not resolve to a stored joke. Callers report it
// as a correctable input problem, never as a crash.
var ErrInvalidPosition = errors.New("invalid joke position")

// Catalogue is the ordered collection of jokes. Insertion order is
// display order and position is the only identity: deleting position
// k renumbers everything after it.
type Catalogue []Joke

// Match pairs a joke with its 1-based position in the catalogue.
// Search and Top return matches rather than bare jokes so callers can
// reference the result in later view/delete commands.
type Match struct {
	Position int
	Joke     Joke
}

// Add validates setup and punchline (non-blank after trimming) and
// appends a new joke with zero counters at the end of the catalogue.
func (catalogue *Catalogue) Add(setup, punchline string) error {
	newJoke, err := New(setup, punchline)
	if err != nil {
		return err
	}
	*catalogue = append(*catalogue, newJoke)
	return nil
}

// At returns the joke at the given 1-based position.
func (catalogue Catalogue) At(position int) (Joke, error) {
	if position < 1 || position > len(catalogue) {
		return Joke{}, fmt.Errorf("position %d of %d: %w", position, len(catalogue), ErrInvalidPosition)
	}
	return catalogue[position-1], nil
}

// Delete removes the joke at the given 1-based position. Every joke
// after it shifts down by one position.
func (catalogue *Catalogue) Delete(position int) error {
	if position < 1 || position > len(*catalogue) {
		return fmt.Errorf("position %d of %d: %w", position, len(*catalogue), ErrInvalidPosition)
	}
	index := position - 1
	*catalogue = append((*catalogue)[:index], (*catalogue)[index+1:]...)
	return nil
}

// Rate increments exactly one counter of the joke at the given
// 1-based position.
func (catalogue Catalogue) Rate(position int, rating Rating) error {
	if position < 1 || position > len(catalogue) {
		return fmt.Errorf("position %d of %d: %w", position, len(catalogue), ErrInvalidPosition)
	}
	if rating == Groan {
		catalogue[position-1].Groans++
	} else {
		catalogue[position-1].Laughs++
	}
	return nil
}

// Search returns every joke whose setup or punchline contains term as
// a case-insensitive substring, in catalogue order. An empty result on
// a non-empty catalogue means "no results", which callers report
// distinctly from "catalogue is empty".
func (catalogue Catalogue) Search(term string) []Match {
	needle := strings.ToLower(term)
	var matches []Match
	for index, candidate := range catalogue {
		if strings.Contains(strings.ToLower(candidate.Setup), needle) ||
			strings.Contains(strings.ToLower(candidate.Punchline), needle) {
			matches = append(matches, Match{Position: index + 1, Joke: candidate})
		}
	}
	return matches
}

// Top returns the joke with the most laughs and the joke with the
// most groans. Ties go to the earliest-inserted joke (first maximum in
// sequence order). ok is false when the catalogue is empty.
func (catalogue Catalogue) Top() (topLaughs, topGroans Match, ok bool) {
	if len(catalogue) == 0 {
		return Match{}, Match{}, false
	}
	topLaughs = Match{Position: 1, Joke: catalogue[0]}
	topGroans = Match{Position: 1, Joke: catalogue[0]}
	for index, candidate := range catalogue[1:] {
		if candidate.Laughs > topLaughs.Joke.Laughs {
			topLaughs = Match{Position: index + 2, Joke: candidate}
		}
		if candidate.Groans > topGroans.Joke.Groans {
			topGroans = Match{Position: index + 2, Joke: candidate}
		}
	}
	return topLaughs, topGroans, true
}

// Shuffle permutes the catalogue in place using the given source.
// A nil rng uses the shared global source. The rating tool shuffles
// once at startup and saves the shuffled order back, so rating
// sessions permanently reorder the stored file.
func (catalogue Catalogue) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) {
		catalogue[i], catalogue[j] = catalogue[j], catalogue[i]
	}
	if rng == nil {
		rand.Shuffle(len(catalogue), swap)
		return
	}
	rng.Shuffle(len(catalogue), swap)
}
