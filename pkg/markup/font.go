package markup

import (
	"fmt"
	"html"
	"strings"
)

// validateFont checks that font holds exactly one %s verb. Literal percent
// signs must be written as %%.
func validateFont(font string) error {
	verbs := 0
	for i := 0; i < len(font); i++ {
		if font[i] != '%' {
			continue
		}
		if i+1 >= len(font) {
			return fmt.Errorf("%w: trailing %% in %q", ErrInvalidFont, font)
		}
		switch font[i+1] {
		case '%':
		case 's':
			verbs++
		default:
			return fmt.Errorf("%w: unsupported verb %%%c in %q", ErrInvalidFont, font[i+1], font)
		}
		i++
	}
	if verbs != 1 {
		return fmt.Errorf("%w: want exactly one %%s, found %d in %q", ErrInvalidFont, verbs, font)
	}
	return nil
}

func applyFont(font, body string) string {
	return fmt.Sprintf(font, body)
}

// colorFont builds a font template that colours its content. The colour is
// attribute-escaped and percent signs are doubled so it survives Sprintf.
func colorFont(color string) string {
	escaped := strings.ReplaceAll(html.EscapeString(strings.TrimSpace(color)), "%", "%%")
	return `<span style="color: ` + escaped + `">%s</span>`
}
