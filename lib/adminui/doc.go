// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package adminui implements the interactive admin loop for curating
// the joke catalogue: add, list, search, view, delete, and top, each
// mapped to a single-letter command. The loop has one state; every
// command returns to the menu except quit. Commands that take an
// argument accept it inline ("s hobbit", "v 2") and fall back to a
// prompt when it is missing or malformed.
package adminui
