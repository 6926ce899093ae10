// Package errors provides sentinel errors and error types for the
// sanboard library. It defines the failure conditions of move
// interpretation and structured error types that preserve context
// while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure conditions of move interpretation.
// Use these with errors.Is() to check for specific error kinds.
var (
	// ErrMalformedNotation indicates input that does not match the SAN
	// grammar: an unparseable destination, invalid promotion syntax, or
	// an unknown piece letter.
	ErrMalformedNotation = errors.New("malformed notation")

	// ErrIllegalMove indicates that no legal move in the current
	// position matches the notation.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates that more than one legal move matches
	// the notation and its disambiguation hints.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrInvalidSquare indicates a coordinate outside the 8x8 board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// MoveError wraps errors with the context of the move that caused
// them: the move text and, when known, the half-move number. It
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move text that caused the error
	Ply      int    // 1-based half-move number (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
