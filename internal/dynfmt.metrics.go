package internal

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// TextMetrics measures and truncates rendered text for width and precision.
type TextMetrics interface {
	Width(s string) int
	Truncate(s string, limit int) string
}

// RuneMetrics counts every code point as one column.
type RuneMetrics struct{}

// Width returns the number of code points in s.
func (RuneMetrics) Width(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate keeps the first limit code points of s.
func (RuneMetrics) Truncate(s string, limit int) string {
	if limit <= 0 {
		return StrEmpty
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}

// DisplayMetrics measures terminal display cells, so wide East Asian characters
// count as two columns.
type DisplayMetrics struct{}

// Width returns the display width of s.
func (DisplayMetrics) Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate keeps the longest prefix of s that fits into limit cells.
func (DisplayMetrics) Truncate(s string, limit int) string {
	if limit <= 0 {
		return StrEmpty
	}
	return runewidth.Truncate(s, limit, StrEmpty)
}
