// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package jokestore persists the joke catalogue as a single JSON file
// holding one array of joke objects. Every save rewrites the whole
// file; there is no incremental persistence and no transaction log.
//
// The two load modes encode the two front-ends' startup contracts:
// the admin tool recovers silently from a missing or malformed file
// (LoadLenient), while the rating tool treats the same conditions as
// fatal (LoadStrict).
package jokestore
