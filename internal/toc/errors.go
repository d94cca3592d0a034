package toc

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is matched by errors for documents without a required field.
	ErrMissingField = errors.New("missing required field")

	// ErrFileNotFound is matched by errors for input files that cannot be opened.
	ErrFileNotFound = errors.New("file not found")

	// ErrMalformedInput is matched by errors for input that is not a usable JSON document.
	ErrMalformedInput = errors.New("malformed input")
)

// MissingFieldError reports a document that lacks a required field.
type MissingFieldError struct {
	Field string
	Err   error // validator diagnostic, may be nil
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("document must contain %q key", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return e.Err }

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// FileNotFoundError reports an input path that could not be opened or read.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }

func (e *FileNotFoundError) Is(target error) bool { return target == ErrFileNotFound }

// MalformedInputError wraps a parse diagnostic. Line and Column are 1-based
// and zero when the position is unknown.
type MalformedInputError struct {
	Path   string
	Offset int64
	Line   int
	Column int
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := "invalid JSON format"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d, column %d (offset %d)", e.Line, e.Column, e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }
