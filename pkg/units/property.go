package units

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Dimensionalities holds the computed properties shared by every
// Dimensionality value. See Dimensionality.Property.
var Dimensionalities = NewPropertySet()

// PropertySet is a table of named computed properties attached to a type.
// Registration affects every value of that type, whenever it was created.
type PropertySet struct {
	mu     sync.RWMutex
	props  map[string]func(value any) (string, error)
	frozen bool
}

// NewPropertySet creates an empty, unfrozen set.
func NewPropertySet() *PropertySet {
	return &PropertySet{
		props: make(map[string]func(value any) (string, error)),
	}
}

// RegisterProperty attaches fn under name, replacing any previous entry.
// Frozen sets reject registration with ErrFrozen.
func (s *PropertySet) RegisterProperty(name string, fn func(value any) (string, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return fmt.Errorf("units: property name and function required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return fmt.Errorf("%w: cannot register %q", ErrFrozen, name)
	}
	s.props[name] = fn
	return nil
}

// Property evaluates the named property for value.
func (s *PropertySet) Property(name string, value any) (string, error) {
	s.mu.RLock()
	fn, ok := s.props[name]
	s.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoProperty, name)
	}
	return fn(value)
}

// Has reports whether a property is registered.
func (s *PropertySet) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.props[name]
	return ok
}

// Names returns the registered property names, sorted.
func (s *PropertySet) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.props))
	for name := range s.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Freeze makes the set read-only.
func (s *PropertySet) Freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frozen = true
}

// Frozen reports whether Freeze has been called.
func (s *PropertySet) Frozen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frozen
}
