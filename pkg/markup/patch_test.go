package markup_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-unithtml/pkg/markup"
	"github.com/goliatone/go-unithtml/pkg/units"
)

func TestPatchLibrary_MatchesDirectFormatting(t *testing.T) {
	created := units.MustParse("kg*m**2/s**2")

	if err := markup.PatchLibrary(units.Dimensionalities); err != nil {
		t.Fatalf("patch: %v", err)
	}

	values := []units.Dimensionality{
		created,
		units.Of(units.Metre, 2),
		units.MustParse("1/(m*s)"),
		{},
	}
	for _, d := range values {
		got, err := d.Property(markup.PropertyName)
		if err != nil {
			t.Fatalf("property on %s: %v", d, err)
		}
		want, err := markup.FormatUnitsHTML(d, markup.DefaultFont, markup.DefaultMultiplication, false)
		if err != nil {
			t.Fatalf("direct format: %v", err)
		}
		if got != want {
			t.Fatalf("%s: property %q != direct %q", d, got, want)
		}
	}
}

func TestPatchLibrary_UnsupportedTargets(t *testing.T) {
	if err := markup.PatchLibrary(struct{}{}); !errors.Is(err, markup.ErrPatchUnsupported) {
		t.Fatalf("expected ErrPatchUnsupported, got %v", err)
	}

	frozen := units.NewPropertySet()
	frozen.Freeze()
	err := markup.PatchLibrary(frozen)
	if !errors.Is(err, markup.ErrPatchUnsupported) {
		t.Fatalf("expected ErrPatchUnsupported, got %v", err)
	}
	if !errors.Is(err, units.ErrFrozen) {
		t.Fatalf("expected underlying ErrFrozen, got %v", err)
	}
}

func TestPatchLibrary_IsolatedSet(t *testing.T) {
	set := units.NewPropertySet()
	if err := markup.PatchLibrary(set); err != nil {
		t.Fatalf("patch: %v", err)
	}

	got, err := set.Property(markup.PropertyName, units.Of(units.Second, -1))
	if err != nil {
		t.Fatalf("property: %v", err)
	}
	if got != "1/s" {
		t.Fatalf("want 1/s, got %q", got)
	}

	if _, err := set.Property(markup.PropertyName, 3.14); !errors.Is(err, units.ErrUnsupportedValue) {
		t.Fatalf("expected renderer error to surface, got %v", err)
	}
}
