package markup

// HTMLUnits pairs a unit value with a formatter so its markup can be computed
// on demand. It never mutates the wrapped value.
type HTMLUnits struct {
	value     any
	formatter *Formatter
}

// Wrap builds an HTMLUnits for value. Options configure the formatter exactly
// as in New.
func Wrap(value any, options ...Option) (HTMLUnits, error) {
	f, err := New(options...)
	if err != nil {
		return HTMLUnits{}, err
	}
	return HTMLUnits{value: value, formatter: f}, nil
}

// WrapWith binds value to an existing formatter.
func (f *Formatter) WrapWith(value any) HTMLUnits {
	return HTMLUnits{value: value, formatter: f}
}

// Value returns the wrapped unit value.
func (u HTMLUnits) Value() any {
	return u.value
}

// HTML renders the wrapped value.
func (u HTMLUnits) HTML() (string, error) {
	f := u.formatter
	if f == nil {
		f = defaultFormatter
	}
	return f.Format(u.value)
}

// String renders the wrapped value, or returns the empty string when
// rendering fails.
func (u HTMLUnits) String() string {
	out, err := u.HTML()
	if err != nil {
		return ""
	}
	return out
}

var defaultFormatter = MustNew()
