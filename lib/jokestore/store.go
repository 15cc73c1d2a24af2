// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package jokestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/jokedeck/jokedeck/lib/joke"
)

// DefaultPath is the store file used when no path is configured. The
// name is historical: the file has always been called data.txt even
// though its content is JSON.
const DefaultPath = "data.txt"

// Store reads and writes the catalogue file at a fixed path.
type Store struct {
	path string
}

// New creates a Store for the given file path. An empty path uses
// DefaultPath.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (store *Store) Path() string {
	return store.path
}

// LoadStrict reads and decodes the catalogue file. A missing file, an
// unreadable file, invalid JSON, or a document whose root is not an
// array is an error. The file may contain JSONC comments and trailing
// commas; they are stripped before decoding.
func (store *Store) LoadStrict() (joke.Catalogue, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", store.path, err)
	}

	var catalogue joke.Catalogue
	if err := json.Unmarshal(jsonc.ToJSON(data), &catalogue); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", store.path, err)
	}
	return catalogue, nil
}

// LoadLenient reads the catalogue file, recovering from every failure
// mode by starting empty. This is the admin tool's contract: a
// missing or corrupt file is indistinguishable from an empty
// catalogue.
func (store *Store) LoadLenient() joke.Catalogue {
	catalogue, err := store.LoadStrict()
	if err != nil {
		return joke.Catalogue{}
	}
	return catalogue
}

// Save serializes the full catalogue as indented JSON and replaces
// the backing file. The write goes to a temporary file in the same
// directory followed by a rename, so a crash mid-write leaves the
// previous file intact.
func (store *Store) Save(catalogue joke.Catalogue) error {
	if catalogue == nil {
		catalogue = joke.Catalogue{}
	}
	data, err := json.MarshalIndent(catalogue, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding catalogue: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	tempFile, err := os.CreateTemp(directory, ".jokedeck-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", directory, err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("writing %s: %w", tempPath, err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("closing %s: %w", tempPath, err)
	}

	if err := os.Rename(tempPath, store.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replacing %s: %w", store.path, err)
	}
	return nil
}
