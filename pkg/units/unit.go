package units

import (
	"strings"
	"sync/atomic"
)

var formatOrder atomic.Int64

// Unit is a named unit of measure. Units are compared by identity; two calls
// to NewUnit with the same symbol produce distinct units.
type Unit struct {
	symbol   string
	name     string
	order    int64
	compound bool
}

// NewUnit defines a unit. Definition order determines the order in which
// units appear in canonical strings.
func NewUnit(symbol, name string) *Unit {
	return &Unit{
		symbol: strings.TrimSpace(symbol),
		name:   strings.TrimSpace(name),
		order:  formatOrder.Add(1),
	}
}

// NewCompoundUnit defines a unit that stands for a whole expression, e.g.
// "m/s". Its symbol is the expression wrapped in parentheses. Surrounding
// parentheses on expr are tolerated.
func NewCompoundUnit(expr string) *Unit {
	trimmed := strings.TrimSpace(expr)
	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		trimmed = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	}
	u := NewUnit("("+trimmed+")", trimmed)
	u.compound = true
	return u
}

// Symbol returns the symbol used in canonical strings.
func (u *Unit) Symbol() string {
	if u == nil {
		return ""
	}
	return u.symbol
}

// Name returns the descriptive name of the unit.
func (u *Unit) Name() string {
	if u == nil {
		return ""
	}
	return u.name
}

// Compound reports whether the unit was created with NewCompoundUnit.
func (u *Unit) Compound() bool {
	return u != nil && u.compound
}

// Dimensionality returns the unit raised to the first power.
func (u *Unit) Dimensionality() Dimensionality {
	return Of(u, 1)
}

func (u *Unit) String() string {
	return u.Symbol()
}
