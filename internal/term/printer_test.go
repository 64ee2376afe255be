package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmit_IndentsByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Emit(0, "top")
	p.Emit(1, "repo:")
	p.Emit(2, "detail")

	want := "top\n    repo:\n        detail\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRaw_NoIndentation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Raw("Updating abc..def\nFast-forward")

	if got := buf.String(); got != "Updating abc..def\nFast-forward\n" {
		t.Errorf("output = %q", got)
	}
}

func TestEmphasisRoles_KeepText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	// The styles are bound to a non-terminal writer, so whether or not
	// escape sequences are present, the text itself must survive.
	for name, fn := range map[string]func(string) string{
		"Bold":  p.Bold,
		"Red":   p.Red,
		"Green": p.Green,
		"Blue":  p.Blue,
	} {
		if got := fn("marker"); !strings.Contains(got, "marker") {
			t.Errorf("%s(marker) = %q, text lost", name, got)
		}
	}
}
