package unithtml

import (
	"github.com/goliatone/go-unithtml/pkg/markup"
	"github.com/goliatone/go-unithtml/pkg/units"
)

// Formatter aliases markup.Formatter for callers that only import the root
// package.
type Formatter = markup.Formatter

// Option aliases markup.Option.
type Option = markup.Option

// HTMLUnits aliases markup.HTMLUnits.
type HTMLUnits = markup.HTMLUnits

// Style aliases markup.Style.
type Style = markup.Style

// New exposes the formatter constructor from the top-level module.
func New(options ...Option) (*Formatter, error) {
	return markup.New(options...)
}

// FormatUnitsHTML renders a unit value as an HTML fragment. See
// markup.FormatUnitsHTML.
func FormatUnitsHTML(value any, font, mult string, paren bool) (string, error) {
	return markup.FormatUnitsHTML(value, font, mult, paren)
}

// HTML renders value with default options.
func HTML(value any) (string, error) {
	return markup.FormatUnitsHTML(value, markup.DefaultFont, markup.DefaultMultiplication, false)
}

// Wrap returns an on-demand HTML view of value.
func Wrap(value any, options ...Option) (HTMLUnits, error) {
	return markup.Wrap(value, options...)
}

// Patch attaches the "html" property to every units.Dimensionality. It is
// meant to run once during start-up.
func Patch() error {
	return markup.PatchLibrary(units.Dimensionalities)
}
