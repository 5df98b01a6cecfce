package internal

import (
	"strings"
	"unicode/utf8"
)

// writeAligned writes body padded to width. Auto alignment pads with spaces on
// the value's natural side. Explicit alignment lays the padding down as
// SentinelFill and then substitutes the padding runs with fill, so the layout
// step never depends on the fill character.
func writeAligned(sb *strings.Builder, body string, width int, align Alignment, fill rune, numeric bool, metrics TextMetrics) {
	pad := width - metrics.Width(body)
	if pad <= 0 {
		sb.WriteString(body)
		return
	}

	if align == AlignAuto {
		if numeric {
			writeRepeated(sb, CharSpace, pad)
			sb.WriteString(body)
		} else {
			sb.WriteString(body)
			writeRepeated(sb, CharSpace, pad)
		}
		return
	}

	leading, trailing := splitPadding(pad, align)
	var field strings.Builder
	field.Grow(len(body) + pad*utf8.RuneLen(SentinelFill))
	writeRepeated(&field, SentinelFill, leading)
	field.WriteString(body)
	writeRepeated(&field, SentinelFill, trailing)

	sb.WriteString(substituteFill(field.String(), fill, leading, trailing))
}

// splitPadding distributes pad columns around the value. Center puts the odd
// column on the right.
func splitPadding(pad int, align Alignment) (int, int) {
	switch align {
	case AlignLeft:
		return 0, pad
	case AlignCenter:
		return pad / 2, pad - pad/2
	default:
		return pad, 0
	}
}

// substituteFill replaces the sentinels of the leading and trailing padding
// runs of field with fill. The value between the runs is copied untouched, so
// a sentinel inside the value itself is preserved.
func substituteFill(field string, fill rune, leading, trailing int) string {
	if fill == SentinelFill {
		return field
	}
	sentinelLen := utf8.RuneLen(SentinelFill)
	head := leading * sentinelLen
	tail := len(field) - trailing*sentinelLen

	var sb strings.Builder
	sb.Grow(len(field))
	replaceSentinels(&sb, field[:head], fill)
	sb.WriteString(field[head:tail])
	replaceSentinels(&sb, field[tail:], fill)
	return sb.String()
}

func replaceSentinels(sb *strings.Builder, run string, fill rune) {
	for _, r := range run {
		if r == SentinelFill {
			r = fill
		}
		sb.WriteRune(r)
	}
}

func writeRepeated(sb *strings.Builder, r rune, n int) {
	for ; n > 0; n-- {
		sb.WriteRune(r)
	}
}
