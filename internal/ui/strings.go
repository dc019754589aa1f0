package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 8

// truncateWidth cuts s to at most width terminal cells.
func truncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// fitSegments truncates consecutive segments so that together they occupy
// at most width cells. Segments past the limit come back empty.
func fitSegments(width int, parts ...string) []string {
	out := make([]string, len(parts))
	left := width
	for i, part := range parts {
		out[i] = truncateWidth(part, left)
		left -= runewidth.StringWidth(out[i])
	}
	return out
}

// expandTabs replaces tabs with spaces up to the next tab stop so that width
// calculations match what the terminal shows.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

// truncateMiddle shortens a string by removing characters from the middle,
// preserving both the beginning and end. For paths, it keeps the base name.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}

	ellipsis := []rune("…/")
	if strings.ContainsAny(value, `/\`) {
		// Keep as much of the file name as fits behind the ellipsis
		lastSlash := maxInt(strings.LastIndex(value, "/"), strings.LastIndex(value, `\`))
		base := []rune(value[lastSlash+1:])
		if len(base)+len(ellipsis) < limit {
			head := limit - len(base) - len(ellipsis)
			return string(runes[:head]) + string(ellipsis) + string(base)
		}
	}

	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
