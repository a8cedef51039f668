package units

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse reads a canonical unit expression using the Default registry.
func Parse(expr string) (Dimensionality, error) {
	return Default.Parse(expr)
}

// MustParse is like Parse but panics on error.
func MustParse(expr string) Dimensionality {
	d, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse reads a unit expression such as "kg*m**2/s**2" or "1/(m*s)".
// Signed and fractional exponents are accepted. A parenthesised group whose
// text matches a registered compound unit resolves to that unit.
func (r *Registry) Parse(expr string) (Dimensionality, error) {
	src := strings.TrimSpace(expr)
	if src == "" {
		return Dimensionality{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	if src == "dimensionless" {
		return Dimensionality{}, nil
	}

	p := &parser{reg: r, src: src}
	d, err := p.expr()
	if err != nil {
		return Dimensionality{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Dimensionality{}, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return d, nil
}

type parser struct {
	reg *Registry
	src string
	pos int
}

func (p *parser) expr() (Dimensionality, error) {
	d, err := p.factor()
	if err != nil {
		return Dimensionality{}, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return d, nil
		}
		switch p.src[p.pos] {
		case '*':
			p.pos++
			next, err := p.factor()
			if err != nil {
				return Dimensionality{}, err
			}
			d = d.Mul(next)
		case '/':
			p.pos++
			next, err := p.factor()
			if err != nil {
				return Dimensionality{}, err
			}
			d = d.Div(next)
		default:
			return d, nil
		}
	}
}

func (p *parser) factor() (Dimensionality, error) {
	d, err := p.primary()
	if err != nil {
		return Dimensionality{}, err
	}
	p.skipSpace()
	if !strings.HasPrefix(p.src[p.pos:], "**") {
		return d, nil
	}
	p.pos += 2
	p.skipSpace()
	exp, err := p.number()
	if err != nil {
		return Dimensionality{}, err
	}
	return d.Pow(exp), nil
}

func (p *parser) primary() (Dimensionality, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return Dimensionality{}, p.errorf("unexpected end of expression")
	}

	switch c := p.src[p.pos]; {
	case c == '(':
		if end := p.matchingParen(); end > 0 {
			if u, ok := p.reg.Lookup(p.src[p.pos : end+1]); ok && u.Compound() {
				p.pos = end + 1
				return Of(u, 1), nil
			}
		}
		p.pos++
		d, err := p.expr()
		if err != nil {
			return Dimensionality{}, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return Dimensionality{}, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return d, nil
	case c == '1':
		p.pos++
		return Dimensionality{}, nil
	default:
		symbol := p.symbol()
		if symbol == "" {
			return Dimensionality{}, p.errorf("expected unit symbol")
		}
		u, ok := p.reg.Lookup(symbol)
		if !ok {
			return Dimensionality{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
		}
		return Of(u, 1), nil
	}
}

func (p *parser) symbol() string {
	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !isSymbolRune(r, p.pos == start) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

func isSymbolRune(r rune, first bool) bool {
	switch {
	case unicode.IsLetter(r), r == '_', r == '°', r == 'µ', r == 'Ω':
		return true
	case unicode.IsDigit(r):
		return !first
	default:
		return false
	}
}

func (p *parser) number() (float64, error) {
	start := p.pos
	if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
		p.pos++
	}
	digits := 0
	for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
		if isDigit(p.src[p.pos]) {
			digits++
		}
		p.pos++
	}
	if digits == 0 {
		p.pos = start
		return 0, p.errorf("expected exponent")
	}
	value, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w at offset %d: invalid exponent %q", ErrSyntax, start, p.src[start:p.pos])
	}
	return value, nil
}

func (p *parser) matchingParen() int {
	depth := 0
	for i := p.pos; i < len(p.src); i++ {
		switch p.src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
