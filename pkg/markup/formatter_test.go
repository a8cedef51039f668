package markup_test

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-unithtml/pkg/markup"
	"github.com/goliatone/go-unithtml/pkg/testsupport"
	"github.com/goliatone/go-unithtml/pkg/units"
)

func TestFormatter_GoldenCases(t *testing.T) {
	cases := testsupport.MustLoadFormatCases(t, filepath.Join("testdata", "format_cases.json"))
	if len(cases) == 0 {
		t.Fatalf("expected golden cases")
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			opts := []markup.Option{markup.WithParen(tc.Paren)}
			if tc.Font != "" {
				opts = append(opts, markup.WithFont(tc.Font))
			}
			if tc.Multiplication != nil {
				opts = append(opts, markup.WithMultiplication(*tc.Multiplication))
			}
			f, err := markup.New(opts...)
			if err != nil {
				t.Fatalf("new formatter: %v", err)
			}

			got, err := f.Format(units.Canonical(tc.Canonical))
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if diff := testsupport.CompareGolden(tc.Want, got); diff != "" {
				t.Fatalf("markup mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatUnitsHTML_Examples(t *testing.T) {
	got, err := markup.FormatUnitsHTML(units.Of(units.Metre, 2), markup.DefaultFont, markup.DefaultMultiplication, false)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "m<sup>2</sup>" {
		t.Fatalf("want m<sup>2</sup>, got %q", got)
	}

	got, err = markup.FormatUnitsHTML(units.Metre, "<b>%s</b>", markup.DefaultMultiplication, false)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got != "<b>m</b>" {
		t.Fatalf("want <b>m</b>, got %q", got)
	}

	energy := units.MustParse("kg*m**2/s**2")
	got, err = markup.FormatUnitsHTML(energy, markup.DefaultFont, markup.DefaultMultiplication, true)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if want := "(kg&sdot;m<sup>2</sup>/s<sup>2</sup>)"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFormatter_PlainTextIsOnlyWrapped(t *testing.T) {
	fonts := []string{markup.DefaultFont, "<i>%s</i>", `<span class="u">%s</span>`}
	inputs := []string{"m", "kg", "m/s", "mol/L", "dimensionless", "(m/s)"}

	for _, font := range fonts {
		f := markup.MustNew(markup.WithFont(font))
		for _, in := range inputs {
			got, err := f.FormatCanonical(in)
			if err != nil {
				t.Fatalf("format %q: %v", in, err)
			}
			if want := strings.Replace(font, "%s", in, 1); got != want {
				t.Fatalf("font %q input %q: want %q, got %q", font, in, want, got)
			}
		}
	}
}

func TestFormatter_SuperscriptsEachExponentOnce(t *testing.T) {
	f := markup.MustNew()
	for _, digits := range []string{"0", "2", "3", "12", "123"} {
		got, err := f.FormatCanonical("X**" + digits)
		if err != nil {
			t.Fatalf("format: %v", err)
		}
		if want := "X<sup>" + digits + "</sup>"; got != want {
			t.Fatalf("want %q, got %q", want, got)
		}
		if n := strings.Count(got, "<sup>"); n != 1 {
			t.Fatalf("expected one superscript, got %d in %q", n, got)
		}
	}
}

func TestFormatter_OutputHasNoMarkers(t *testing.T) {
	f := markup.MustNew()
	for _, in := range []string{"kg*m**2*s**-2", "m***2", "a**b*c", "**2", "*"} {
		got, err := f.FormatCanonical(in)
		if err != nil {
			t.Fatalf("format: %v", err)
		}
		if strings.Contains(got, "*") {
			t.Fatalf("input %q left a marker in %q", in, got)
		}
	}
}

func TestFormatter_RewriteIsIdempotent(t *testing.T) {
	f := markup.MustNew(markup.WithMultiplication("*"))

	once, err := f.FormatCanonical("kg*m**2*s**-2")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	twice, err := f.FormatCanonical(once)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if once != twice {
		t.Fatalf("re-applying the rewrite changed the output:\nonce:  %q\ntwice: %q", once, twice)
	}
	if strings.Contains(twice, "<sup><sup>") {
		t.Fatalf("double-wrapped superscript in %q", twice)
	}
}

func TestFormatter_PropagatesRendererErrors(t *testing.T) {
	_, err := markup.FormatUnitsHTML(struct{}{}, markup.DefaultFont, markup.DefaultMultiplication, false)
	if !errors.Is(err, units.ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue, got %v", err)
	}

	boom := errors.New("boom")
	f := markup.MustNew(markup.WithRenderer(markup.RendererFunc(func(any) (string, error) {
		return "", boom
	})))
	if _, err := f.Format("anything"); err != boom {
		t.Fatalf("expected renderer error returned verbatim, got %v", err)
	}
}

func TestNew_RejectsInvalidFonts(t *testing.T) {
	for _, font := range []string{"", "plain", "%s %s", "%d", "%s%", "<b>%v</b>"} {
		if _, err := markup.New(markup.WithFont(font)); !errors.Is(err, markup.ErrInvalidFont) {
			t.Fatalf("font %q: expected ErrInvalidFont, got %v", font, err)
		}
	}
	if _, err := markup.FormatUnitsHTML(units.Metre, "no verb", markup.DefaultMultiplication, false); !errors.Is(err, markup.ErrInvalidFont) {
		t.Fatalf("expected ErrInvalidFont from FormatUnitsHTML, got %v", err)
	}
}

func TestFormatter_ConcurrentUse(t *testing.T) {
	f := markup.MustNew(markup.WithParen(true))
	d := units.MustParse("kg*m/s**2")

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := f.Format(d)
			if err != nil {
				t.Errorf("format: %v", err)
				return
			}
			results[i] = out
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		if got != "(kg&sdot;m/s<sup>2</sup>)" {
			t.Fatalf("unexpected output %q", got)
		}
	}
}
