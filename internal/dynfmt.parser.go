package internal

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Parser turns template source into a piece sequence.
// The implicit index counter is parser-local and starts at 0 for every Parser.
type Parser struct {
	source   string
	pos      int
	litStart int
	implicit int
	pieces   []Piece
	logger   *zap.Logger
}

// NewParser creates a parser for source
func NewParser(source string, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldSource, len(source)))
	return &Parser{
		source: source,
		pieces: make([]Piece, 0, DefaultPieceCapacity),
		logger: logger,
	}
}

// Parse scans the whole source. Errors are *SyntaxError values carrying the
// position of the offending token.
func (p *Parser) Parse() ([]Piece, error) {
	p.logger.Debug(LogMsgParserStart)

	for p.pos < len(p.source) {
		switch p.source[p.pos] {
		case CharOpenBrace:
			p.flushLiteral()
			if p.peekAt(1) == CharOpenBrace {
				p.pieces = append(p.pieces, NewEscapedOpenPiece(p.pos))
				p.advance(2)
				continue
			}
			if err := p.parsePlaceholder(); err != nil {
				return nil, p.fail(err)
			}

		case CharCloseBrace:
			p.flushLiteral()
			if p.peekAt(1) != CharCloseBrace {
				return nil, p.fail(newSyntaxError(ErrMsgUnmatchedClose, p.pos))
			}
			p.pieces = append(p.pieces, NewEscapedClosePiece(p.pos))
			p.advance(2)

		default:
			p.pos++
		}
	}
	p.flushLiteral()

	p.logger.Debug(LogMsgParserEnd, zap.Int(LogFieldPieces, len(p.pieces)))
	return p.pieces, nil
}

// parsePlaceholder consumes "{key[:spec]}" starting at the opening brace.
func (p *Parser) parsePlaceholder() error {
	open := p.pos
	closeRel := strings.IndexByte(p.source[open+1:], CharCloseBrace)
	if closeRel < 0 {
		return newSyntaxError(ErrMsgUnterminated, open)
	}
	end := open + 1 + closeRel
	inner := p.source[open+1 : end]
	if nested := strings.IndexByte(inner, CharOpenBrace); nested >= 0 {
		return newSyntaxError(ErrMsgNestedOpen, open+1+nested)
	}

	keyText := inner
	var spec *Specifier
	if sep := strings.IndexByte(inner, CharSeparator); sep >= 0 {
		keyText = inner[:sep]
		// the specifier goes first: a ".*" precision takes its implicit index
		// before a keyless placeholder takes its own
		parsed, err := ParseSpecifier(inner[sep+1:], &p.implicit)
		if err != nil {
			return rebase(err, open+1+sep+1)
		}
		spec = &parsed
	}

	key, err := p.parseKey(keyText, open+1)
	if err != nil {
		return err
	}

	p.pieces = append(p.pieces, NewPlaceholderPiece(key, spec, open))
	p.advance(end + 1 - p.pos)
	return nil
}

func (p *Parser) parseKey(text string, offset int) (ArgumentKey, error) {
	switch {
	case text == StrEmpty:
		key := IndexKey(p.implicit)
		p.implicit++
		return key, nil
	case IsIndex(text):
		index, err := strconv.Atoi(text)
		if err != nil {
			return ArgumentKey{}, newSyntaxError(ErrMsgIndexOverflow, offset)
		}
		return IndexKey(index), nil
	case IsIdentifier(text):
		return NameKey(text), nil
	}
	return ArgumentKey{}, newSyntaxError(ErrMsgInvalidKey, offset)
}

func (p *Parser) flushLiteral() {
	if p.litStart < p.pos {
		p.pieces = append(p.pieces, NewLiteralPiece(p.source[p.litStart:p.pos], p.litStart))
	}
	p.litStart = p.pos
}

func (p *Parser) advance(n int) {
	p.pos += n
	p.litStart = p.pos
}

func (p *Parser) peekAt(n int) byte {
	if p.pos+n >= len(p.source) {
		return 0
	}
	return p.source[p.pos+n]
}

// fail resolves the line and column of a syntax error against the source.
func (p *Parser) fail(err error) error {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		syntaxErr.Position = PositionAt(p.source, syntaxErr.Position.Offset)
		p.logger.Debug(LogMsgParserFailed,
			zap.Int(LogFieldOffset, syntaxErr.Position.Offset),
			zap.String(LogFieldError, syntaxErr.Message))
	}
	return err
}

// rebase shifts a specifier-relative error offset to a source offset.
func rebase(err error, base int) error {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		syntaxErr.Position.Offset += base
	}
	return err
}

// ParsePieces is a convenience wrapper around NewParser(source, logger).Parse().
func ParsePieces(source string, logger *zap.Logger) ([]Piece, error) {
	return NewParser(source, logger).Parse()
}
