package markup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-unithtml/pkg/markup"
	"github.com/goliatone/go-unithtml/pkg/units"
)

func TestDefaultStyles(t *testing.T) {
	reg := markup.DefaultStyles()

	want := []string{"compact", "default", "paren", "plain", "times"}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Fatalf("style names mismatch (-want +got):\n%s", diff)
	}

	d := units.MustParse("kg*m**2")
	outputs := map[string]string{}
	for _, name := range reg.List() {
		f, err := reg.Formatter(name)
		if err != nil {
			t.Fatalf("formatter %s: %v", name, err)
		}
		out, err := f.Format(d)
		if err != nil {
			t.Fatalf("format %s: %v", name, err)
		}
		outputs[name] = out
	}

	wantOutputs := map[string]string{
		"compact": "kgm<sup>2</sup>",
		"default": "kg&sdot;m<sup>2</sup>",
		"paren":   "(kg&sdot;m<sup>2</sup>)",
		"plain":   "kg*m<sup>2</sup>",
		"times":   "kg&times;m<sup>2</sup>",
	}
	if diff := cmp.Diff(wantOutputs, outputs); diff != "" {
		t.Fatalf("style outputs mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RegisterValidation(t *testing.T) {
	reg := markup.NewRegistry()

	if err := reg.Register(markup.Style{}); err == nil {
		t.Fatalf("expected error for unnamed style")
	}
	if err := reg.Register(markup.Style{Name: "broken", Font: "<b></b>"}); err == nil {
		t.Fatalf("expected error for font without verb")
	}
	reg.MustRegister(markup.Style{Name: "blue", Font: `<span style="color: blue">%s</span>`, Multiplication: "&sdot;"})
	if err := reg.Register(markup.Style{Name: "blue"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if !reg.Has("blue") {
		t.Fatalf("expected blue style registered")
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected missing style error")
	}

	f, err := reg.Formatter("blue", markup.WithParen(true))
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}
	got, err := f.Format(units.Second)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if want := `<span style="color: blue">(s)</span>`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
