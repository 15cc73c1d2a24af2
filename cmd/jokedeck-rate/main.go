// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

// jokedeck-rate is the rating TUI for the joke catalogue. It presents
// the jokes one at a time in a freshly shuffled order, hides each
// punchline behind a reveal action, and records laugh/groan ratings
// (or abstains) until the catalogue is exhausted. Every rating is
// persisted immediately.
//
// Unlike the admin tool, a missing, invalid, or empty catalogue file
// is fatal here: there is nothing to rate, so the program reports the
// problem and exits before presenting anything. Note that the
// shuffled presentation order is what gets saved back, so a rating
// session permanently reorders the stored file.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jokedeck/jokedeck/lib/clierr"
	"github.com/jokedeck/jokedeck/lib/config"
	"github.com/jokedeck/jokedeck/lib/jokestore"
	"github.com/jokedeck/jokedeck/lib/rateui"
	"github.com/jokedeck/jokedeck/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var filePath string
	var configPath string
	var logOutput string

	flagSet := pflag.NewFlagSet("jokedeck-rate", pflag.ContinueOnError)
	flagSet.StringVar(&filePath, "file", "", "path to the catalogue JSON file (overrides config)")
	flagSet.StringVar(&configPath, "config", "", "path to a jokedeck.yaml config file (default: $JOKEDECK_CONFIG)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match jokedeck.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("jokedeck-rate")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 0 {
		return clierr.Validation("unexpected argument: %s", args[0])
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return clierr.Validation("jokedeck-rate needs an interactive terminal")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if filePath != "" {
		cfg.StorePath = filePath
	}
	if logOutput != "" {
		cfg.LogOutput = logOutput
	}

	logger, closeLogger, err := openLogger(cfg.LogOutput)
	if err != nil {
		return err
	}
	defer closeLogger()

	// Startup failures print their own message and exit non-zero via
	// ExitError: the generic "error:" wrapper adds nothing for the
	// person at the keyboard.
	store := jokestore.New(cfg.StorePath)
	catalogue, err := store.LoadStrict()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "missing catalogue file %s: add some jokes with jokedeck first\n", store.Path())
		} else {
			fmt.Fprintf(os.Stderr, "invalid catalogue file: %v\n", err)
		}
		return &clierr.ExitError{Code: 1}
	}
	if len(catalogue) == 0 {
		fmt.Fprintf(os.Stderr, "the catalogue at %s is empty: add some jokes with jokedeck first\n", store.Path())
		return &clierr.ExitError{Code: 1}
	}

	// One shuffle per session; the shuffled order is what every save
	// writes back.
	catalogue.Shuffle(nil)
	logger.Info("rating session started", "path", store.Path(), "jokes", len(catalogue))

	model := rateui.NewModel(catalogue, store)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := program.Run()
	if err != nil {
		return err
	}

	if finalModel, ok := final.(rateui.Model); ok && finalModel.Done() {
		fmt.Println("All jokes rated. Thanks!")
	}
	return nil
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// openLogger builds a JSON slog logger writing to the given file, or
// a discard logger when path is empty. The TUI owns the terminal, so
// there is no stderr fallback. The returned func closes the log file.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log output %s: %w", path, err)
	}
	logger := slog.New(slog.NewJSONHandler(logFile, nil))
	return logger, func() { logFile.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprint(os.Stderr, `Joke Catalogue rater — present shuffled jokes one at a time.

For each joke: press enter (or click) to reveal the punchline, then
l to laugh, g to groan, or a to abstain. Ratings are saved to the
catalogue file immediately; abstaining records nothing. The session
ends after the last joke.

The catalogue file must exist, parse as a JSON array, and contain at
least one joke.

Usage: jokedeck-rate [flags]

Flags:
`)
	fmt.Fprint(os.Stderr, flagSet.FlagUsages())
}
