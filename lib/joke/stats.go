// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package joke

// Commentary is the editorial verdict derived from a joke's counters.
type Commentary int

const (
	// CommentaryNone means the ratings are too sparse or too mixed
	// to support a verdict.
	CommentaryNone Commentary = iota
	// CommentaryHilarious means the laughs decisively outweigh the
	// groans.
	CommentaryHilarious
	// CommentaryGroanWorthy means the groans decisively outweigh the
	// laughs.
	CommentaryGroanWorthy
)

// Stats is the derived rating summary shown by the admin view command.
type Stats struct {
	// Rated is false when both counters are zero, in which case the
	// percentage fields are meaningless and callers report "unrated".
	Rated bool

	Laughs int
	Groans int

	// LaughPercent and GroanPercent are each counter's share of the
	// total, in percent. Only valid when Rated is true.
	LaughPercent float64
	GroanPercent float64

	Commentary Commentary
}

// Stats computes the derived rating summary for the joke.
//
// The commentary tiers are checked in precedence order: an unblemished
// run of five or more ratings wins outright; otherwise a 4-to-1
// majority against a nonzero minority decides; anything else gets no
// commentary.
func (joke Joke) Stats() Stats {
	stats := Stats{Laughs: joke.Laughs, Groans: joke.Groans}

	total := joke.Laughs + joke.Groans
	if total == 0 {
		return stats
	}
	stats.Rated = true
	stats.LaughPercent = float64(joke.Laughs) / float64(total) * 100
	stats.GroanPercent = float64(joke.Groans) / float64(total) * 100

	switch {
	case joke.Laughs >= 5 && joke.Groans == 0:
		stats.Commentary = CommentaryHilarious
	case joke.Groans >= 5 && joke.Laughs == 0:
		stats.Commentary = CommentaryGroanWorthy
	case joke.Groans > 0 && joke.Laughs >= 4*joke.Groans:
		stats.Commentary = CommentaryHilarious
	case joke.Laughs > 0 && joke.Groans >= 4*joke.Laughs:
		stats.Commentary = CommentaryGroanWorthy
	}
	return stats
}
