// Copyright 2026 The Jokedeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package clierr provides categorized errors for the jokedeck command
// line tools. Categories separate "fix your input" failures from
// "the tool broke" failures so the binaries can decide what to print
// and which exit code to use without parsing message text.
package clierr

import "fmt"

// Category classifies an error for the command-line boundary.
type Category string

const (
	// CategoryValidation indicates the user provided invalid input:
	// a blank joke field, a non-numeric index, an unknown flag value.
	// The user should fix the input and retry.
	CategoryValidation Category = "validation"

	// CategoryNotFound indicates a referenced joke position does not
	// resolve. Retrying with the same position will not help.
	CategoryNotFound Category = "not_found"

	// CategoryInternal indicates an unexpected failure: I/O errors,
	// encode failures, bugs. The user should report it rather than
	// retry.
	CategoryInternal Category = "internal"
)

// Error is a categorized error. Use the category constructors rather
// than building it directly.
type Error struct {
	Category Category
	Err      error
}

// Error returns the underlying message; the category travels
// separately.
func (e *Error) Error() string { return e.Err.Error() }

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Validation creates a validation error: the user provided bad input.
func Validation(format string, args ...any) *Error {
	return &Error{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced joke does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure or bug.
func Internal(format string, args ...any) *Error {
	return &Error{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// ExitError signals a non-zero exit code without printing an extra
// error message: the command has already written its own output. The
// binaries' main functions check for the ExitCode interface on
// returned errors.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}
