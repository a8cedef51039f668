package units

import (
	"math"
	"sort"
)

// Dimensioned is implemented by values that carry a unit composition.
type Dimensioned interface {
	Dimensionality() Dimensionality
}

// Dimensionality is an immutable mapping from units to non-zero exponents.
// The zero value is dimensionless.
type Dimensionality struct {
	terms map[*Unit]float64
}

// Of returns a dimensionality holding a single unit raised to exp.
func Of(u *Unit, exp float64) Dimensionality {
	if u == nil || exp == 0 {
		return Dimensionality{}
	}
	return Dimensionality{terms: map[*Unit]float64{u: exp}}
}

// Mul combines two dimensionalities by adding exponents.
func (d Dimensionality) Mul(other Dimensionality) Dimensionality {
	return d.combine(other, 1)
}

// Div combines two dimensionalities by subtracting the exponents of other.
func (d Dimensionality) Div(other Dimensionality) Dimensionality {
	return d.combine(other, -1)
}

// Pow multiplies every exponent by p.
func (d Dimensionality) Pow(p float64) Dimensionality {
	if p == 0 || len(d.terms) == 0 {
		return Dimensionality{}
	}
	out := make(map[*Unit]float64, len(d.terms))
	for u, exp := range d.terms {
		out[u] = exp * p
	}
	return Dimensionality{terms: out}
}

// Exponent returns the exponent of u, or zero when u is absent.
func (d Dimensionality) Exponent(u *Unit) float64 {
	return d.terms[u]
}

// Len returns the number of units with a non-zero exponent.
func (d Dimensionality) Len() int {
	return len(d.terms)
}

// Dimensionless reports whether no unit is present.
func (d Dimensionality) Dimensionless() bool {
	return len(d.terms) == 0
}

// Units returns the units present, in definition order.
func (d Dimensionality) Units() []*Unit {
	out := make([]*Unit, 0, len(d.terms))
	for u := range d.terms {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].order < out[j].order
	})
	return out
}

// Equal reports whether both dimensionalities hold the same units and exponents.
func (d Dimensionality) Equal(other Dimensionality) bool {
	if len(d.terms) != len(other.terms) {
		return false
	}
	for u, exp := range d.terms {
		if other.terms[u] != exp {
			return false
		}
	}
	return true
}

// Dimensionality returns d, so Dimensionality satisfies Dimensioned.
func (d Dimensionality) Dimensionality() Dimensionality {
	return d
}

// Property evaluates a computed property registered on Dimensionalities.
func (d Dimensionality) Property(name string) (string, error) {
	return Dimensionalities.Property(name, d)
}

// String returns the canonical unit string.
func (d Dimensionality) String() string {
	return formatDimensionality(d)
}

func (d Dimensionality) combine(other Dimensionality, sign float64) Dimensionality {
	out := make(map[*Unit]float64, len(d.terms)+len(other.terms))
	for u, exp := range d.terms {
		out[u] = exp
	}
	for u, exp := range other.terms {
		out[u] += sign * exp
	}
	for u, exp := range out {
		if exp == 0 || math.Abs(exp) < 1e-12 {
			delete(out, u)
		}
	}
	if len(out) == 0 {
		return Dimensionality{}
	}
	return Dimensionality{terms: out}
}

// Quantity pairs a magnitude with its units.
type Quantity struct {
	Magnitude float64
	Units     Dimensionality
}

// Dimensionality returns the units of the quantity.
func (q Quantity) Dimensionality() Dimensionality {
	return q.Units
}
