package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// FormatCase describes one formatter golden case. A nil Multiplication keeps
// the formatter default so cases can distinguish "unset" from "empty glyph".
type FormatCase struct {
	Name           string  `json:"name"`
	Canonical      string  `json:"canonical"`
	Font           string  `json:"font,omitempty"`
	Multiplication *string `json:"multiplication,omitempty"`
	Paren          bool    `json:"paren,omitempty"`
	Want           string  `json:"want"`
}

// MustLoadFormatCases reads a JSON array of FormatCase values.
func MustLoadFormatCases(t *testing.T, path string) []FormatCase {
	t.Helper()
	return MustLoadJSON[[]FormatCase](t, path)
}

// MustLoadJSON decodes a JSON fixture into T, failing the test on error.
func MustLoadJSON[T any](t *testing.T, path string) T {
	t.Helper()

	var out T
	data := MustReadGolden(t, path)
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", path, err)
	}
	return out
}

// CompareGolden returns a diff string if the values differ. An empty string
// means they match.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file as a string.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
