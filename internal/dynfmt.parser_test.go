package internal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pieceCmpOpts = cmp.Options{cmp.AllowUnexported(ArgumentKey{})}

func specPtr(mutate func(*Specifier)) *Specifier {
	s := specWith(mutate)
	return &s
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Piece
	}{
		{
			name:     "empty template",
			input:    "",
			expected: []Piece{},
		},
		{
			name:  "literal only",
			input: "Hello, world!",
			expected: []Piece{
				NewLiteralPiece("Hello, world!", 0),
			},
		},
		{
			name:  "escaped braces",
			input: "{{}}",
			expected: []Piece{
				NewEscapedOpenPiece(0),
				NewEscapedClosePiece(2),
			},
		},
		{
			name:  "implicit positional keys",
			input: "{} {} {}",
			expected: []Piece{
				NewPlaceholderPiece(IndexKey(0), nil, 0),
				NewLiteralPiece(" ", 2),
				NewPlaceholderPiece(IndexKey(1), nil, 3),
				NewLiteralPiece(" ", 5),
				NewPlaceholderPiece(IndexKey(2), nil, 6),
			},
		},
		{
			name:  "named implicit and explicit keys",
			input: "{x} {} {0}",
			expected: []Piece{
				NewPlaceholderPiece(NameKey("x"), nil, 0),
				NewLiteralPiece(" ", 3),
				NewPlaceholderPiece(IndexKey(0), nil, 4),
				NewLiteralPiece(" ", 6),
				NewPlaceholderPiece(IndexKey(0), nil, 7),
			},
		},
		{
			name:  "specifier",
			input: "a{:>5}b",
			expected: []Piece{
				NewLiteralPiece("a", 0),
				NewPlaceholderPiece(IndexKey(0), specPtr(func(s *Specifier) {
					s.Align = AlignRight
					s.Width = FixedWidth(5)
				}), 1),
				NewLiteralPiece("b", 6),
			},
		},
		{
			name:  "empty specifier",
			input: "{:}",
			expected: []Piece{
				NewPlaceholderPiece(IndexKey(0), specPtr(func(*Specifier) {}), 0),
			},
		},
		{
			name:  "star precision takes its index before the value",
			input: "{:.*}",
			expected: []Piece{
				NewPlaceholderPiece(IndexKey(1), specPtr(func(s *Specifier) {
					s.Precision = DynamicPrecision(IndexKey(0))
				}), 0),
			},
		},
		{
			name:  "escapes around a placeholder",
			input: "{{{}}}",
			expected: []Piece{
				NewEscapedOpenPiece(0),
				NewPlaceholderPiece(IndexKey(0), nil, 2),
				NewEscapedClosePiece(4),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces, err := NewParser(tt.input, zap.NewNop()).Parse()
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, pieces, pieceCmpOpts); diff != "" {
				t.Errorf("pieces mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		message  string
		position Position
	}{
		{
			name:     "unmatched close after text",
			input:    "Hello }{",
			message:  ErrMsgUnmatchedClose,
			position: Position{Offset: 6, Line: 1, Column: 7},
		},
		{
			name:     "unterminated placeholder",
			input:    "Hello {",
			message:  ErrMsgUnterminated,
			position: Position{Offset: 6, Line: 1, Column: 7},
		},
		{
			name:     "lone close",
			input:    "Hello }",
			message:  ErrMsgUnmatchedClose,
			position: Position{Offset: 6, Line: 1, Column: 7},
		},
		{
			name:     "trailing open after escapes",
			input:    "Hello {{{} {",
			message:  ErrMsgUnterminated,
			position: Position{Offset: 11, Line: 1, Column: 12},
		},
		{
			name:     "open inside placeholder",
			input:    "{a{b}",
			message:  ErrMsgNestedOpen,
			position: Position{Offset: 2, Line: 1, Column: 3},
		},
		{
			name:     "invalid key",
			input:    "{a-b}",
			message:  ErrMsgInvalidKey,
			position: Position{Offset: 1, Line: 1, Column: 2},
		},
		{
			name:     "bad specifier on second line",
			input:    "x\n{:q}",
			message:  ErrMsgInvalidSpecifier,
			position: Position{Offset: 4, Line: 2, Column: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePieces(tt.input, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnexpectedToken))

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.message, syntaxErr.Message)
			assert.Equal(t, tt.position, syntaxErr.Position)
			assert.Contains(t, err.Error(), tt.position.String())
		})
	}
}

func TestParser_ImplicitCounterIsPerParser(t *testing.T) {
	first, err := ParsePieces("{} {}", nil)
	require.NoError(t, err)
	second, err := ParsePieces("{}", nil)
	require.NoError(t, err)

	assert.Equal(t, IndexKey(1), first[2].Key)
	assert.Equal(t, IndexKey(0), second[0].Key)
}

func TestSource_ReparsesToSamePieces(t *testing.T) {
	inputs := []string{
		"plain",
		"{} and {}",
		"{{literal}} {name:*^12.3?}",
		"{:.*} {x:w$.p$e}",
		"{0:#010b} {:+}",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			pieces, err := ParsePieces(input, nil)
			require.NoError(t, err)

			source := Source(pieces)
			reparsed, err := ParsePieces(source, nil)
			require.NoError(t, err)

			// offsets move when implicit keys are written out
			ignoreOffset := cmp.FilterPath(func(p cmp.Path) bool {
				return p.Last().String() == ".Offset"
			}, cmp.Ignore())
			if diff := cmp.Diff(pieces, reparsed, pieceCmpOpts, ignoreOffset); diff != "" {
				t.Errorf("re-parsed pieces mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, source, Source(reparsed))
		})
	}
}
