package markup

import "errors"

var (
	// ErrInvalidFont signals a font template without exactly one %s verb.
	ErrInvalidFont = errors.New("markup: invalid font template")
	// ErrPatchUnsupported is returned when a target cannot accept the html property.
	ErrPatchUnsupported = errors.New("markup: patch unsupported")
)
