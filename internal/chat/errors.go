package chat

import "errors"

var (
	// ErrEmptyMessage rejects a turn whose message is blank after trimming.
	// Raised before any session mutation.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrInvalidTurns rejects a memory capacity below one turn.
	ErrInvalidTurns = errors.New("turns must be >= 1")

	// ErrTranscriptNotFound is returned when loading a transcript from a path
	// that does not exist. No session state changes.
	ErrTranscriptNotFound = errors.New("transcript file not found")
)
