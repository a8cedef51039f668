package markup

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizerOnce   sync.Once
	sanitizerPolicy *bluemonday.Policy
)

// SanitizerPolicy returns the shared policy used by WithSanitize. It keeps the
// inline elements fonts typically use and drops everything else.
func SanitizerPolicy() *bluemonday.Policy {
	sanitizerOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("sup", "sub", "b", "i", "em", "strong", "span")

		policy.AllowAttrs("class").OnElements("span")
		policy.AllowStyles(
			"color", "background-color", "font-weight", "font-style", "font-family",
		).OnElements("span")

		sanitizerPolicy = policy
	})
	return sanitizerPolicy
}

// restoreGlyph puts an entity glyph back after the sanitiser decoded it, so
// "&sdot;" stays "&sdot;" rather than a literal rune. Glyphs that decode to
// markup-significant characters are left as the sanitiser wrote them.
func restoreGlyph(out, glyph string) string {
	decoded := html.UnescapeString(glyph)
	if decoded == glyph || decoded == "" || html.EscapeString(decoded) != decoded {
		return out
	}
	return strings.ReplaceAll(out, decoded, glyph)
}
