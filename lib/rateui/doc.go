// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package rateui implements the joke rating terminal UI as a
// bubbletea model. Jokes are presented one at a time in a shuffled
// order chosen once at startup; the punchline stays hidden until the
// rater reveals it, and each laugh/groan rating is persisted
// immediately. Because the shuffled order is what gets saved, rating
// sessions permanently reorder the stored file.
package rateui
