// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package joke

import "testing"

func TestStatsUnrated(t *testing.T) {
	stats := Joke{Setup: "s", Punchline: "p"}.Stats()
	if stats.Rated {
		t.Error("zero counters must report unrated")
	}
	if stats.Commentary != CommentaryNone {
		t.Errorf("unrated joke got commentary %v", stats.Commentary)
	}
}

func TestStatsPercentages(t *testing.T) {
	stats := Joke{Setup: "s", Punchline: "p", Laughs: 3, Groans: 1}.Stats()
	if !stats.Rated {
		t.Fatal("expected rated")
	}
	if stats.LaughPercent != 75.0 {
		t.Errorf("laugh percent = %v, want 75.0", stats.LaughPercent)
	}
	if stats.GroanPercent != 25.0 {
		t.Errorf("groan percent = %v, want 25.0", stats.GroanPercent)
	}
}

func TestStatsCommentaryTiers(t *testing.T) {
	cases := []struct {
		name    string
		laughs  int
		groans  int
		verdict Commentary
	}{
		{"five clean laughs", 5, 0, CommentaryHilarious},
		{"five clean groans", 0, 5, CommentaryGroanWorthy},
		{"four to one laughs", 8, 2, CommentaryHilarious},
		{"four to one groans", 1, 4, CommentaryGroanWorthy},
		{"even split", 2, 2, CommentaryNone},
		{"four laughs no groans", 4, 0, CommentaryNone},
		{"just under the ratio", 7, 2, CommentaryNone},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			stats := Joke{Setup: "s", Punchline: "p", Laughs: testCase.laughs, Groans: testCase.groans}.Stats()
			if stats.Commentary != testCase.verdict {
				t.Errorf("laughs=%d groans=%d: commentary %v, want %v",
					testCase.laughs, testCase.groans, stats.Commentary, testCase.verdict)
			}
		})
	}
}

func TestNewTrimsAndValidates(t *testing.T) {
	created, err := New("  setup  ", "  punchline  ")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if created.Setup != "setup" || created.Punchline != "punchline" {
		t.Errorf("fields not trimmed: %+v", created)
	}

	if _, err := New("", "p"); err == nil {
		t.Error("expected error for blank setup")
	}
	if _, err := New("s", "   "); err == nil {
		t.Error("expected error for blank punchline")
	}
}
