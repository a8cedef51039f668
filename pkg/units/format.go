package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical is unit text that is already in canonical form. FormatUnits
// returns it unchanged.
type Canonical string

// FormatUnits renders value as a canonical unit string. Supported values are
// Canonical, Dimensionality, *Dimensionality, *Unit and any Dimensioned
// (Quantity included). Other values fail with ErrUnsupportedValue.
func FormatUnits(value any) (string, error) {
	switch v := value.(type) {
	case Canonical:
		return string(v), nil
	case Dimensionality:
		return formatDimensionality(v), nil
	case *Dimensionality:
		if v == nil {
			return "", fmt.Errorf("%w: nil *units.Dimensionality", ErrUnsupportedValue)
		}
		return formatDimensionality(*v), nil
	case *Unit:
		if v == nil {
			return "", fmt.Errorf("%w: nil *units.Unit", ErrUnsupportedValue)
		}
		return formatDimensionality(Of(v, 1)), nil
	case Dimensioned:
		return formatDimensionality(v.Dimensionality()), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

func formatDimensionality(d Dimensionality) string {
	var num, den []string
	for _, u := range d.Units() {
		exp := d.terms[u]
		if exp < 0 {
			den = append(den, formatTerm(u.symbol, -exp))
			continue
		}
		num = append(num, formatTerm(u.symbol, exp))
	}

	res := strings.Join(num, "*")
	if len(den) > 0 {
		if res == "" {
			res = "1"
		}
		denominator := strings.Join(den, "*")
		if len(den) > 1 {
			denominator = "(" + denominator + ")"
		}
		res += "/" + denominator
	}
	if res == "" {
		return "dimensionless"
	}
	return res
}

func formatTerm(symbol string, exp float64) string {
	if exp == 1 {
		return symbol
	}
	return symbol + "**" + strconv.FormatFloat(exp, 'f', -1, 64)
}
