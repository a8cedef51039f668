package markup_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-unithtml/pkg/markup"
	"github.com/goliatone/go-unithtml/pkg/units"
)

func TestWrap_ComputesOnDemand(t *testing.T) {
	d := units.MustParse("mol/L")
	wrapped, err := markup.Wrap(d, markup.WithFont("<i>%s</i>"))
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}

	got, err := wrapped.HTML()
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if got != "<i>mol/L</i>" {
		t.Fatalf("want <i>mol/L</i>, got %q", got)
	}
	if v, ok := wrapped.Value().(units.Dimensionality); !ok || !v.Equal(d) {
		t.Fatalf("wrapped value changed: %#v", wrapped.Value())
	}
}

func TestWrap_ZeroValueUsesDefaults(t *testing.T) {
	var zero markup.HTMLUnits
	if _, err := zero.HTML(); !errors.Is(err, units.ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue for nil value, got %v", err)
	}

	f := markup.MustNew(markup.WithMultiplication("&times;"))
	got, err := f.WrapWith(units.MustParse("N*m")).HTML()
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if got != "m&times;N" {
		t.Fatalf("want m&times;N, got %q", got)
	}
}

func TestWrap_InvalidOptions(t *testing.T) {
	if _, err := markup.Wrap(units.Metre, markup.WithFont("bad")); !errors.Is(err, markup.ErrInvalidFont) {
		t.Fatalf("expected ErrInvalidFont, got %v", err)
	}
}

func TestHTMLUnits_String(t *testing.T) {
	wrapped, err := markup.Wrap(units.Of(units.Second, -1), markup.WithParen(true))
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}

	var stringer fmt.Stringer = wrapped
	if got := stringer.String(); got != "(1/s)" {
		t.Fatalf("want (1/s), got %q", got)
	}
	if got := fmt.Sprintf("<td>%s</td>", wrapped); got != "<td>(1/s)</td>" {
		t.Fatalf("fmt should use String, got %q", got)
	}

	broken := markup.MustNew().WrapWith("not a unit")
	if got := broken.String(); got != "" {
		t.Fatalf("render failure should give empty string, got %q", got)
	}
}
