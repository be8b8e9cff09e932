package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to fit the given cell width, adding an
// ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit == 1 {
		return runewidth.Truncate(value, 1, "")
	}
	return runewidth.Truncate(value, limit, "…")
}

// padRight pads a string with spaces to the given cell width.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// center pads a string on both sides to the given cell width.
func center(s string, width int) string {
	s = truncate(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// fitLines forces a rendered block to exactly n lines, dropping the tail
// or padding with blank lines.
func fitLines(block string, n int) []string {
	if n <= 0 {
		return nil
	}
	lines := strings.Split(block, "\n")
	if block == "" {
		lines = nil
	}
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// wrapText breaks text into at most maxLines lines of the given width.
// The last line is truncated with an ellipsis when text remains.
func wrapText(text string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	words := strings.Fields(text)
	var lines []string
	var cur string
	for i, w := range words {
		next := w
		if cur != "" {
			next = cur + " " + w
		}
		if runewidth.StringWidth(next) <= width {
			cur = next
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		if len(lines) == maxLines {
			last := lines[maxLines-1]
			rest := strings.Join(words[i:], " ")
			lines[maxLines-1] = truncate(last+" "+rest, width)
			return lines
		}
		cur = truncate(w, width)
	}
	if cur != "" {
		if len(lines) == maxLines {
			lines[maxLines-1] = truncate(lines[maxLines-1]+" "+cur, width)
		} else {
			lines = append(lines, cur)
		}
	}
	return lines
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
