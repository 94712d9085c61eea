package tui

import (
	"strings"
	"testing"
)

func TestVisibleWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"\x1b[31mabc\x1b[0m", 3},
		{"héllo", 5},
		{"日本", 4}, // wide clusters count double
	}
	for _, c := range cases {
		if got := visibleWidth(c.in); got != c.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestTruncateWidth(t *testing.T) {
	if got := truncateWidth("abcdef", 3); got != "abc" {
		t.Errorf("got %q, want abc", got)
	}
	if got := truncateWidth("abc", 10); got != "abc" {
		t.Errorf("width beyond content must return it all, got %q", got)
	}
	if got := truncateWidth("abc", 0); got != "" {
		t.Errorf("zero width must return empty, got %q", got)
	}

	got := truncateWidth("\x1b[31mabcdef", 2)
	if visibleWidth(got) != 2 {
		t.Errorf("styled truncation width = %d, want 2", visibleWidth(got))
	}
	if !strings.HasPrefix(got, "\x1b[31m") {
		t.Errorf("escape sequence dropped: %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("styled truncation must end with a reset: %q", got)
	}

	// A wide cluster that would straddle the cut is excluded.
	if got := truncateWidth("日本", 3); visibleWidth(got) != 2 {
		t.Errorf("straddling cluster kept: %q", got)
	}
}

func TestCutLeft(t *testing.T) {
	if got := cutLeft("abcdef", 3); got != "def" {
		t.Errorf("got %q, want def", got)
	}
	if got := cutLeft("abc", 0); got != "abc" {
		t.Errorf("zero cut must be identity, got %q", got)
	}
	if got := cutLeft("abc", 10); got != "" {
		t.Errorf("cut beyond content must be empty, got %q", got)
	}
	if got := cutLeft("\x1b[31mabcdef", 3); got != "def" {
		t.Errorf("escapes before the cut must be dropped, got %q", got)
	}
	// Cutting through a wide cluster pads the gap.
	if got := cutLeft("日本x", 3); got != " x" {
		t.Errorf("straddled cluster not padded, got %q", got)
	}
}

func TestOverlay(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := overlay(base, "XX\nXX", 3, 1)
	lines := strings.Split(got, "\n")
	if lines[0] != ".........." {
		t.Errorf("row 0 disturbed: %q", lines[0])
	}
	for _, row := range []int{1, 2} {
		plain := stripEscapes(lines[row])
		if plain != "...XX....." {
			t.Errorf("row %d = %q, want ...XX.....", row, plain)
		}
	}

	// Rows outside the base are dropped; short base rows are padded.
	got = overlay("ab\ncd", "ZZ", 5, 0)
	lines = strings.Split(got, "\n")
	if plain := stripEscapes(lines[0]); plain != "ab   ZZ" {
		t.Errorf("padded splice = %q, want %q", plain, "ab   ZZ")
	}
	if got := overlay("ab", "ZZ", 0, 5); stripEscapes(got) != "ab" {
		t.Errorf("out-of-range row altered the base: %q", got)
	}

	if got := overlay("abc", "", 0, 0); got != "abc" {
		t.Errorf("empty overlay must be identity, got %q", got)
	}
}

// stripEscapes removes ANSI escape sequences for comparison.
func stripEscapes(s string) string {
	var b strings.Builder
	for len(s) > 0 {
		if s[0] == 0x1b {
			s = s[skipEscape(s):]
			continue
		}
		b.WriteByte(s[0])
		s = s[1:]
	}
	return b.String()
}
