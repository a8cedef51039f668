package markup

import "strings"

// rewriteCanonical turns canonical unit text into markup in a single pass.
// At every asterisk the exponent form `**<number>` is tried first; anything
// else is a multiplication marker.
func rewriteCanonical(canonical, mult string) string {
	var b strings.Builder
	b.Grow(len(canonical) + 16)

	for i := 0; i < len(canonical); {
		if canonical[i] != '*' {
			b.WriteByte(canonical[i])
			i++
			continue
		}
		if strings.HasPrefix(canonical[i:], "**") {
			if n := exponentLen(canonical[i+2:]); n > 0 {
				b.WriteString("<sup>")
				b.WriteString(canonical[i+2 : i+2+n])
				b.WriteString("</sup>")
				i += 2 + n
				continue
			}
		}
		b.WriteString(mult)
		i++
	}
	return b.String()
}

// exponentLen returns the length of the exponent at the start of s: an
// optional minus sign, digits, and an optional fractional part. Zero means s
// does not start with an exponent.
func exponentLen(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isCompound(canonical string) bool {
	return strings.HasPrefix(canonical, "(") && strings.HasSuffix(canonical, ")")
}
