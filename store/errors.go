package store

import (
	"errors"
	"fmt"
)

var (
	// ErrWeekNotFound indicates no document exists for the week key.
	ErrWeekNotFound = errors.New("week not found")
	// ErrCorruptDocument indicates a stored document could not be parsed.
	ErrCorruptDocument = errors.New("corrupt document")
	// ErrInvalidArchive indicates an import payload could not be parsed.
	ErrInvalidArchive = errors.New("invalid notes archive")
)

// CorruptError is returned when a stored document fails to parse. It
// identifies the offending file so callers can report or skip it.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt document %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return ErrCorruptDocument
}
