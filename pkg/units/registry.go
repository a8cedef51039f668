package units

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Predefined units. Canonical strings list units in this order.
var (
	Kilogram = NewUnit("kg", "kilogram")
	Metre    = NewUnit("m", "metre")
	Second   = NewUnit("s", "second")
	Ampere   = NewUnit("A", "ampere")
	Kelvin   = NewUnit("K", "kelvin")
	Mole     = NewUnit("mol", "mole")
	Candela  = NewUnit("cd", "candela")

	Gram    = NewUnit("g", "gram")
	Litre   = NewUnit("L", "litre")
	Molar   = NewUnit("M", "molar")
	Newton  = NewUnit("N", "newton")
	Joule   = NewUnit("J", "joule")
	Watt    = NewUnit("W", "watt")
	Pascal  = NewUnit("Pa", "pascal")
	Hertz   = NewUnit("Hz", "hertz")
	Coulomb = NewUnit("C", "coulomb")
	Volt    = NewUnit("V", "volt")
	Minute  = NewUnit("min", "minute")
	Hour    = NewUnit("h", "hour")
	Day     = NewUnit("d", "day")
)

// Default holds the predefined units and backs the package-level Parse.
var Default = newDefaultRegistry()

// Registry indexes units by symbol.
type Registry struct {
	mu    sync.RWMutex
	units map[string]*Unit
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		units: make(map[string]*Unit),
	}
}

func newDefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, u := range []*Unit{
		Kilogram, Metre, Second, Ampere, Kelvin, Mole, Candela,
		Gram, Litre, Molar, Newton, Joule, Watt, Pascal, Hertz,
		Coulomb, Volt, Minute, Hour, Day,
	} {
		reg.MustRegister(u)
	}
	return reg
}

// Register adds a unit by symbol. Duplicate symbols return ErrDuplicateUnit.
func (r *Registry) Register(u *Unit) error {
	if u == nil {
		return fmt.Errorf("units: unit is required")
	}
	symbol := u.Symbol()
	if symbol == "" {
		return fmt.Errorf("units: unit symbol is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.units[symbol]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateUnit, symbol)
	}
	r.units[symbol] = u
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(u *Unit) {
	if err := r.Register(u); err != nil {
		panic(err)
	}
}

// Lookup retrieves a unit by symbol.
func (r *Registry) Lookup(symbol string) (*Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.units[strings.TrimSpace(symbol)]
	return u, ok
}

// MustLookup panics if the symbol is unknown.
func (r *Registry) MustLookup(symbol string) *Unit {
	u, ok := r.Lookup(symbol)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownUnit, symbol))
	}
	return u
}

// List returns the registered units in definition order.
func (r *Registry) List() []*Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Unit, 0, len(r.units))
	for _, u := range r.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].order < out[j].order
	})
	return out
}

// Clone returns an independent registry holding the same units.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &Registry{units: make(map[string]*Unit, len(r.units))}
	for symbol, u := range r.units {
		out.units[symbol] = u
	}
	return out
}
