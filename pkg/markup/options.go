package markup

import (
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-unithtml/pkg/render/template"
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithFont sets the printf-style font template applied last, e.g.
// `<span style="color: #0000a0">%s</span>`. It must contain exactly one %s.
func WithFont(font string) Option {
	return func(f *Formatter) {
		f.font = font
	}
}

// WithMultiplication sets the glyph that replaces multiplication markers.
// The empty string is a valid glyph.
func WithMultiplication(glyph string) Option {
	return func(f *Formatter) {
		f.mult = glyph
	}
}

// WithParen wraps non-compound results in parentheses.
func WithParen(paren bool) Option {
	return func(f *Formatter) {
		f.paren = paren
	}
}

// WithRenderer swaps the canonical renderer.
func WithRenderer(renderer CanonicalRenderer) Option {
	return func(f *Formatter) {
		if renderer != nil {
			f.renderer = renderer
		}
	}
}

// WithTemplate replaces the printf font with template content rendered by
// engine. The markup is available as TemplateKey and is not escaped; the
// canonical text is available as CanonicalKey.
func WithTemplate(engine template.TemplateRenderer, content string) Option {
	return func(f *Formatter) {
		content = strings.TrimSpace(content)
		if content == "" {
			return
		}
		f.engine = engine
		f.content = content
		f.named = ""
	}
}

// WithTemplateFile is WithTemplate for a named template the engine loads
// itself.
func WithTemplateFile(engine template.TemplateRenderer, name string) Option {
	return func(f *Formatter) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		f.engine = engine
		f.named = name
		f.content = ""
	}
}

// WithTheme colours the output with a token from the selected theme, using
// the variant's override when it has one. Missing selections or tokens leave
// the font untouched.
func WithTheme(selection *theme.Selection, token string) Option {
	return func(f *Formatter) {
		if selection == nil {
			return
		}
		color, ok := selection.Tokens()[strings.TrimSpace(token)]
		if !ok || strings.TrimSpace(color) == "" {
			return
		}
		f.font = colorFont(color)
	}
}

// WithSanitizer runs the final fragment through policy. A nil policy turns
// sanitising off.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(f *Formatter) {
		f.sanitizer = policy
	}
}

// WithSanitize enables the package's default sanitiser policy.
func WithSanitize() Option {
	return WithSanitizer(SanitizerPolicy())
}
