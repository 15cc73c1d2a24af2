// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

// jokedeck is the admin tool for the joke catalogue: an interactive
// menu loop for adding, listing, searching, viewing, deleting, and
// ranking jokes stored in a flat JSON file.
//
// A missing or malformed catalogue file is not an error here — the
// session starts with an empty catalogue and the first save recreates
// the file. The rating tool (jokedeck-rate) is the strict one.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/jokedeck/jokedeck/lib/adminui"
	"github.com/jokedeck/jokedeck/lib/clierr"
	"github.com/jokedeck/jokedeck/lib/config"
	"github.com/jokedeck/jokedeck/lib/jokestore"
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
	var listWidth int

	flagSet := pflag.NewFlagSet("jokedeck", pflag.ContinueOnError)
	flagSet.StringVar(&filePath, "file", "", "path to the catalogue JSON file (overrides config)")
	flagSet.StringVar(&configPath, "config", "", "path to a jokedeck.yaml config file (default: $JOKEDECK_CONFIG)")
	flagSet.IntVar(&listWidth, "width", 0, "display width for shortened setups (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match jokedeck-rate.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("jokedeck")
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

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if filePath != "" {
		cfg.StorePath = filePath
	}
	if listWidth != 0 {
		cfg.ListWidth = listWidth
	}
	if logOutput != "" {
		cfg.LogOutput = logOutput
	}
	if err := cfg.Validate(); err != nil {
		return clierr.Validation("invalid options: %w", err)
	}

	logger, closeLogger, err := openLogger(cfg.LogOutput)
	if err != nil {
		return err
	}
	defer closeLogger()

	store := jokestore.New(cfg.StorePath)
	catalogue := store.LoadLenient()
	logger.Info("catalogue loaded", "path", store.Path(), "jokes", len(catalogue))

	session := adminui.NewSession(catalogue, store, os.Stdin, os.Stdout, cfg.ListWidth, logger)
	return session.Run()
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// openLogger builds a JSON slog logger writing to the given file, or
// a discard logger when path is empty. The returned func closes the
// log file.
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
	fmt.Fprint(os.Stderr, `Joke Catalogue admin — interactive curation of the joke store.

Commands inside the session: [a]dd, [l]ist, [s]earch, [v]iew,
[d]elete, [t]op, [q]uit. Search, view, and delete accept an inline
argument ("s hobbit", "v 2", "d 2") and prompt when it is missing.

The catalogue lives in a single JSON file (default: data.txt). A
missing or invalid file starts an empty session.

Usage: jokedeck [flags]

Flags:
`)
	fmt.Fprint(os.Stderr, flagSet.FlagUsages())
}
