// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// errInputClosed is returned by the prompt helpers when the input
// stream ends mid-prompt. The loop treats it as a clean quit.
var errInputClosed = fmt.Errorf("input closed")

// promptText re-prompts until the user enters non-whitespace text and
// returns it trimmed.
func (session *Session) promptText(prompt string) (string, error) {
	for {
		fmt.Fprint(session.output, prompt)
		line, ok := session.readLine()
		if !ok {
			return "", errInputClosed
		}
		text := strings.TrimSpace(line)
		if text != "" {
			return text, nil
		}
		fmt.Fprintln(session.output, "Input cannot be blank. Please try again.")
	}
}

// promptPosition re-prompts until the user enters an integer of 1 or
// higher.
func (session *Session) promptPosition(prompt string) (int, error) {
	for {
		fmt.Fprint(session.output, prompt)
		line, ok := session.readLine()
		if !ok {
			return 0, errInputClosed
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(session.output, "Invalid input. Please enter a whole number.")
			continue
		}
		if value < 1 {
			fmt.Fprintln(session.output, "Please enter a number of 1 or higher.")
			continue
		}
		return value, nil
	}
}

// resolvePosition uses the inline argument when it is a plain decimal
// number, otherwise falls back to the interactive prompt. Matches the
// inline-command behavior: "v 2" views joke 2 directly, "v two"
// prompts.
func (session *Session) resolvePosition(argument, prompt string) (int, error) {
	if isDecimal(argument) {
		value, err := strconv.Atoi(argument)
		if err != nil {
			// A digit run too large for int can never resolve to a
			// stored joke; treat it like any other out-of-range
			// position so the command reports an invalid index
			// instead of aborting the session.
			return math.MaxInt, nil
		}
		return value, nil
	}
	return session.promptPosition(prompt)
}

// isDecimal reports whether text is a non-empty run of ASCII digits.
// Signs and spaces disqualify: anything fancier goes through the
// validating prompt instead.
func isDecimal(text string) bool {
	if text == "" {
		return false
	}
	for _, character := range text {
		if character < '0' || character > '9' {
			return false
		}
	}
	return true
}
