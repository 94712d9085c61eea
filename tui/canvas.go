package tui

import (
	"strings"

	"github.com/rivo/uniseg"
)

// This file implements the overlay compositor used to paint absolutely
// positioned elements on top of an already-rendered frame. Lipgloss composes
// flow layouts only, so the floating element a drag produces has to be
// spliced into the frame cell by cell, preserving ANSI escape sequences and
// grapheme cluster widths.

const ansiReset = "\x1b[0m"

// overlay splices over onto base with over's top-left at column x, row y.
// Rows of over that fall outside base are dropped; base rows shorter than x
// are padded with spaces. Styling of base content to the right of a spliced
// region is reset rather than preserved.
func overlay(base, over string, x, y int) string {
	if over == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, overLine := range strings.Split(over, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		bg := baseLines[row]
		left := truncateWidth(bg, x)
		if pad := x - visibleWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := cutLeft(bg, x+visibleWidth(overLine))
		baseLines[row] = left + overLine + ansiReset + right
	}
	return strings.Join(baseLines, "\n")
}

// visibleWidth returns the printable cell width of s, skipping ANSI escape
// sequences and measuring grapheme clusters.
func visibleWidth(s string) int {
	w := 0
	for len(s) > 0 {
		if s[0] == 0x1b {
			s = s[skipEscape(s):]
			continue
		}
		_, rest, cw, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		w += cw
		s = rest
	}
	return w
}

// truncateWidth returns the prefix of s spanning at most w printable cells.
// Escape sequences in the prefix are preserved and the result is terminated
// with a reset so trailing styles do not leak.
func truncateWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	var b strings.Builder
	width := 0
	styled := false
	for len(s) > 0 {
		if s[0] == 0x1b {
			n := skipEscape(s)
			b.WriteString(s[:n])
			s = s[n:]
			styled = true
			continue
		}
		cluster, rest, cw, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		if width+cw > w {
			break
		}
		b.WriteString(cluster)
		width += cw
		s = rest
	}
	if styled {
		b.WriteString(ansiReset)
	}
	return b.String()
}

// cutLeft drops the first w printable cells of s and returns the remainder.
// Escape sequences before the cut are dropped, so the remainder renders
// unstyled; a wide cluster straddling the boundary is replaced by spaces.
func cutLeft(s string, w int) string {
	if w <= 0 {
		return s
	}
	skipped := 0
	for len(s) > 0 && skipped < w {
		if s[0] == 0x1b {
			s = s[skipEscape(s):]
			continue
		}
		_, rest, cw, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		skipped += cw
		s = rest
	}
	if skipped > w {
		return strings.Repeat(" ", skipped-w) + s
	}
	return s
}

// skipEscape returns the byte length of the escape sequence at the start of
// s. CSI sequences run to their final byte in 0x40..0x7e; other escapes are
// treated as two bytes.
func skipEscape(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	if s[1] != '[' {
		return 2
	}
	for i := 2; i < len(s); i++ {
		if s[i] >= 0x40 && s[i] <= 0x7e {
			return i + 1
		}
	}
	return len(s)
}
