package markup

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-unithtml/pkg/render/template"
	"github.com/goliatone/go-unithtml/pkg/units"
)

const (
	// DefaultFont leaves the rendered markup unwrapped.
	DefaultFont = "%s"
	// DefaultMultiplication renders as a middle dot.
	DefaultMultiplication = "&sdot;"
	// TemplateKey is the context key holding the rendered markup when a
	// template engine replaces the font.
	TemplateKey = "units"
	// CanonicalKey holds the canonical text the markup was built from.
	CanonicalKey = "canonical"
)

// CanonicalRenderer produces the canonical plain-text form of a unit value.
type CanonicalRenderer interface {
	Render(value any) (string, error)
}

// RendererFunc adapts a function to CanonicalRenderer.
type RendererFunc func(value any) (string, error)

// Render calls fn.
func (fn RendererFunc) Render(value any) (string, error) {
	return fn(value)
}

// DefaultRenderer delegates to units.FormatUnits.
var DefaultRenderer CanonicalRenderer = RendererFunc(units.FormatUnits)

// Formatter renders unit values as HTML fragments. It is immutable after New
// and safe for concurrent use when its renderer is.
type Formatter struct {
	renderer  CanonicalRenderer
	font      string
	mult      string
	paren     bool
	engine    template.TemplateRenderer
	content   string
	named     string
	sanitizer *bluemonday.Policy
}

// New builds a Formatter. The font template is validated here so Format never
// produces a malformed wrap.
func New(options ...Option) (*Formatter, error) {
	f := &Formatter{
		renderer: DefaultRenderer,
		font:     DefaultFont,
		mult:     DefaultMultiplication,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}

	if f.renderer == nil {
		return nil, fmt.Errorf("markup: renderer is required")
	}
	if err := validateFont(f.font); err != nil {
		return nil, err
	}
	if f.engine == nil && (f.content != "" || f.named != "") {
		return nil, fmt.Errorf("markup: template configured without an engine")
	}
	return f, nil
}

// MustNew panics if New fails.
func MustNew(options ...Option) *Formatter {
	f, err := New(options...)
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders value. Errors from the canonical renderer are returned as is.
func (f *Formatter) Format(value any) (string, error) {
	canonical, err := f.renderer.Render(value)
	if err != nil {
		return "", err
	}
	return f.FormatCanonical(canonical)
}

// FormatCanonical applies the markup rewrite to text that is already in
// canonical form.
func (f *Formatter) FormatCanonical(canonical string) (string, error) {
	compound := isCompound(canonical)

	res := rewriteCanonical(canonical, f.mult)
	if f.paren && !compound {
		res = "(" + res + ")"
	}

	if f.engine != nil {
		rendered, err := f.renderTemplate(canonical, res)
		if err != nil {
			return "", err
		}
		res = rendered
	} else {
		res = applyFont(f.font, res)
	}

	if f.sanitizer != nil {
		res = restoreGlyph(f.sanitizer.Sanitize(res), f.mult)
	}
	return res, nil
}

func (f *Formatter) renderTemplate(canonical, res string) (string, error) {
	data := map[string]any{
		TemplateKey:  template.HTML(res),
		CanonicalKey: canonical,
	}
	if f.named != "" {
		out, err := f.engine.RenderTemplate(f.named, data)
		if err != nil {
			return "", fmt.Errorf("markup: render template %q: %w", f.named, err)
		}
		return out, nil
	}
	out, err := f.engine.RenderString(f.content, data)
	if err != nil {
		return "", fmt.Errorf("markup: render template: %w", err)
	}
	return out, nil
}

// FormatUnitsHTML renders value with the given font template, multiplication
// glyph and parenthesisation flag using DefaultRenderer.
func FormatUnitsHTML(value any, font, mult string, paren bool) (string, error) {
	f, err := New(WithFont(font), WithMultiplication(mult), WithParen(paren))
	if err != nil {
		return "", err
	}
	return f.Format(value)
}
