// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package joke

import (
	"fmt"
	"strings"
)

// Joke is the sole entity in the catalogue: a setup/punchline pair
// with laugh and groan counters. The JSON tags are the persisted
// file format and must not change.
type Joke struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
	Laughs    int    `json:"laughs"`
	Groans    int    `json:"groans"`
}

// Rating selects which counter a rating action increments.
type Rating int

const (
	// Laugh increments the laughs counter.
	Laugh Rating = iota
	// Groan increments the groans counter.
	Groan
)

// String returns the counter name, matching the persisted JSON key.
func (rating Rating) String() string {
	if rating == Groan {
		return "groans"
	}
	return "laughs"
}

// New constructs a Joke with zero counters. Both text fields are
// trimmed of surrounding whitespace and must be non-blank afterwards;
// this is the only place blankness is enforced (load does not
// re-validate).
func New(setup, punchline string) (Joke, error) {
	setup = strings.TrimSpace(setup)
	punchline = strings.TrimSpace(punchline)
	if setup == "" {
		return Joke{}, fmt.Errorf("joke setup is blank")
	}
	if punchline == "" {
		return Joke{}, fmt.Errorf("joke punchline is blank")
	}
	return Joke{Setup: setup, Punchline: punchline}, nil
}

// Rated reports whether the joke has received at least one rating.
func (joke Joke) Rated() bool {
	return joke.Laughs > 0 || joke.Groans > 0
}
