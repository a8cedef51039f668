package markup

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Style is a named formatter preset. An empty Font means DefaultFont;
// Multiplication is used verbatim, so the empty string removes the markers.
type Style struct {
	Name           string
	Description    string
	Font           string
	Multiplication string
	Paren          bool
	Sanitize       bool
}

// Options converts the style into formatter options.
func (s Style) Options() []Option {
	font := s.Font
	if font == "" {
		font = DefaultFont
	}
	opts := []Option{
		WithFont(font),
		WithMultiplication(s.Multiplication),
		WithParen(s.Paren),
	}
	if s.Sanitize {
		opts = append(opts, WithSanitize())
	}
	return opts
}

// Registry stores styles by name, providing discovery and duplication
// safeguards.
type Registry struct {
	mu     sync.RWMutex
	styles map[string]Style
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		styles: make(map[string]Style),
	}
}

// BuiltinStyles returns the presets registered by DefaultStyles.
func BuiltinStyles() []Style {
	return []Style{
		{Name: "default", Description: "middle dot, no wrapping", Multiplication: DefaultMultiplication},
		{Name: "plain", Description: "keep asterisks", Multiplication: "*"},
		{Name: "compact", Description: "drop multiplication markers", Multiplication: ""},
		{Name: "times", Description: "multiplication sign", Multiplication: "&times;"},
		{Name: "paren", Description: "middle dot, parenthesised", Multiplication: DefaultMultiplication, Paren: true},
	}
}

// DefaultStyles returns a registry preloaded with BuiltinStyles.
func DefaultStyles() *Registry {
	r := NewRegistry()
	for _, style := range BuiltinStyles() {
		r.MustRegister(style)
	}
	return r
}

// Register adds a style by name. Duplicate names and invalid fonts return an
// error.
func (r *Registry) Register(style Style) error {
	style.Name = strings.TrimSpace(style.Name)
	if style.Name == "" {
		return fmt.Errorf("markup: style name is required")
	}
	if style.Font != "" {
		if err := validateFont(style.Font); err != nil {
			return fmt.Errorf("markup: style %q: %w", style.Name, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.styles[style.Name]; exists {
		return fmt.Errorf("markup: style %q already registered", style.Name)
	}

	r.styles[style.Name] = style
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(style Style) {
	if err := r.Register(style); err != nil {
		panic(err)
	}
}

// Get retrieves a style by name.
func (r *Registry) Get(name string) (Style, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	style, ok := r.styles[name]
	if !ok {
		return Style{}, fmt.Errorf("markup: style %q not found", name)
	}
	return style, nil
}

// MustGet panics if the style is missing.
func (r *Registry) MustGet(name string) Style {
	style, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return style
}

// List returns a sorted list of style names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a style is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.styles[name]
	return ok
}

// Formatter builds a formatter from the named style plus extra options, which
// are applied after the style's own.
func (r *Registry) Formatter(name string, extra ...Option) (*Formatter, error) {
	style, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return New(append(style.Options(), extra...)...)
}
