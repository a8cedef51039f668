package units

import "errors"

var (
	// ErrUnsupportedValue is returned by FormatUnits for values it cannot render.
	ErrUnsupportedValue = errors.New("units: unsupported value")
	// ErrUnknownUnit is returned when a symbol is not present in the registry.
	ErrUnknownUnit = errors.New("units: unknown unit")
	// ErrSyntax reports a malformed unit expression.
	ErrSyntax = errors.New("units: syntax error")
	// ErrDuplicateUnit is returned when registering a symbol twice.
	ErrDuplicateUnit = errors.New("units: duplicate unit")
	// ErrFrozen is returned when mutating a frozen PropertySet.
	ErrFrozen = errors.New("units: property set is frozen")
	// ErrNoProperty is returned when reading a property that was never registered.
	ErrNoProperty = errors.New("units: property not found")
)
