package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf(StrPositionFmt, p.Line, p.Column)
}

// PositionAt calculates the Position of a byte offset within source.
func PositionAt(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	pos := Position{
		Offset: offset,
		Line:   1,
		Column: 1,
	}

	for i := 0; i < offset; i++ {
		if source[i] == CharNewline {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return pos
}
