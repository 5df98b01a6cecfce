package internal

import "strings"

// PieceType identifies the kind of a template piece.
type PieceType int

// Piece type constants
const (
	PieceLiteral PieceType = iota
	PieceEscapedOpen
	PieceEscapedClose
	PiecePlaceholder
)

// Piece type string names for debugging
const (
	PieceTypeNameLiteral      = "LITERAL"
	PieceTypeNameEscapedOpen  = "ESCAPED_OPEN"
	PieceTypeNameEscapedClose = "ESCAPED_CLOSE"
	PieceTypeNamePlaceholder  = "PLACEHOLDER"
)

// String returns the string representation of the piece type
func (t PieceType) String() string {
	switch t {
	case PieceEscapedOpen:
		return PieceTypeNameEscapedOpen
	case PieceEscapedClose:
		return PieceTypeNameEscapedClose
	case PiecePlaceholder:
		return PieceTypeNamePlaceholder
	default:
		return PieceTypeNameLiteral
	}
}

// Piece is one element of a parsed template, in render order.
// Text is set for literals, Key and Spec for placeholders; Spec is nil for a
// placeholder without ':'.
type Piece struct {
	Type   PieceType
	Text   string
	Key    ArgumentKey
	Spec   *Specifier
	Offset int
}

// NewLiteralPiece creates a literal text piece.
func NewLiteralPiece(text string, offset int) Piece {
	return Piece{Type: PieceLiteral, Text: text, Offset: offset}
}

// NewEscapedOpenPiece creates a "{{" piece.
func NewEscapedOpenPiece(offset int) Piece {
	return Piece{Type: PieceEscapedOpen, Offset: offset}
}

// NewEscapedClosePiece creates a "}}" piece.
func NewEscapedClosePiece(offset int) Piece {
	return Piece{Type: PieceEscapedClose, Offset: offset}
}

// NewPlaceholderPiece creates a placeholder piece.
func NewPlaceholderPiece(key ArgumentKey, spec *Specifier, offset int) Piece {
	return Piece{Type: PiecePlaceholder, Key: key, Spec: spec, Offset: offset}
}

// Form returns the form a placeholder piece requests.
func (p Piece) Form() Form {
	if p.Spec == nil {
		return FormDisplay
	}
	return p.Spec.Form
}

// WriteSource appends the canonical source of the piece to sb. Placeholder keys
// are always written explicitly so implicit indexes survive a re-parse.
func (p Piece) WriteSource(sb *strings.Builder) {
	switch p.Type {
	case PieceLiteral:
		sb.WriteString(p.Text)
	case PieceEscapedOpen:
		sb.WriteString(StrEscapedOpen)
	case PieceEscapedClose:
		sb.WriteString(StrEscapedClose)
	case PiecePlaceholder:
		sb.WriteByte(CharOpenBrace)
		sb.WriteString(p.Key.String())
		if p.Spec != nil {
			sb.WriteByte(CharSeparator)
			sb.WriteString(p.Spec.String())
		}
		sb.WriteByte(CharCloseBrace)
	}
}

// Source re-serialises a piece sequence.
func Source(pieces []Piece) string {
	var sb strings.Builder
	for _, p := range pieces {
		p.WriteSource(&sb)
	}
	return sb.String()
}
