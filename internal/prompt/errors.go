package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoStyles is returned when a session has no style to offer.
	ErrNoStyles = errors.New("prompt: no styles available")
)
