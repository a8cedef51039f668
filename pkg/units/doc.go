// Package units models the physical-unit values that the markup package turns
// into HTML. A Dimensionality maps units to exponents, FormatUnits renders any
// supported value as a canonical plain-text string ("kg*m**2/s**2"), and Parse
// reads such strings back using a Registry of known symbols.
//
// The canonical grammar uses `**` for exponents, `*` for multiplication and a
// single `/` before the denominator. Denominators with more than one term are
// grouped in parentheses, compound units render with a parenthesised symbol
// such as "(m/s)", and an empty dimensionality renders as "dimensionless".
//
// Dimensionalities is the type-level PropertySet for Dimensionality values:
// computed properties registered there are visible on every value, including
// values created before the registration.
package units
