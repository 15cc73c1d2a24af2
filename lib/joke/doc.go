// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package joke defines the Joke record and the Catalogue, the ordered
// in-memory collection both front-ends operate on. Positions are
// 1-based throughout the package API; there is no stable joke ID, so
// deleting a joke shifts every later position down by one.
package joke
