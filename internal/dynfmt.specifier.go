package internal

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Alignment of a value inside its field.
type Alignment uint8

// Alignment constants. AlignAuto lets the value decide: numbers right, text left.
const (
	AlignAuto Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns the alignment character, "" for AlignAuto.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return string(rune(CharAlignLeft))
	case AlignCenter:
		return string(rune(CharAlignCenter))
	case AlignRight:
		return string(rune(CharAlignRight))
	}
	return StrEmpty
}

func alignmentOf(ch byte) (Alignment, bool) {
	switch ch {
	case CharAlignLeft:
		return AlignLeft, true
	case CharAlignCenter:
		return AlignCenter, true
	case CharAlignRight:
		return AlignRight, true
	}
	return AlignAuto, false
}

// Width is the minimum field width: a literal amount or a reference to an argument.
// Fixed(0) means no constraint.
type Width struct {
	Dynamic bool
	Fixed   uint16
	Key     ArgumentKey
}

// FixedWidth returns a literal width.
func FixedWidth(amount uint16) Width {
	return Width{Fixed: amount}
}

// DynamicWidth returns a width read from the argument bound to key.
func DynamicWidth(key ArgumentKey) Width {
	return Width{Dynamic: true, Key: key}
}

func (w Width) String() string {
	if w.Dynamic {
		return w.Key.String() + string(rune(CharDollar))
	}
	if w.Fixed == 0 {
		return StrEmpty
	}
	return strconv.Itoa(int(w.Fixed))
}

// PrecisionKind tells how a precision is obtained.
type PrecisionKind uint8

// PrecisionKind constants
const (
	PrecisionAuto PrecisionKind = iota
	PrecisionFixed
	PrecisionDynamic
)

// Precision is the fractional digit count for floats and the maximum length for text.
type Precision struct {
	Kind  PrecisionKind
	Fixed uint16
	Key   ArgumentKey
}

// FixedPrecision returns a literal precision.
func FixedPrecision(amount uint16) Precision {
	return Precision{Kind: PrecisionFixed, Fixed: amount}
}

// DynamicPrecision returns a precision read from the argument bound to key.
func DynamicPrecision(key ArgumentKey) Precision {
	return Precision{Kind: PrecisionDynamic, Key: key}
}

func (p Precision) String() string {
	switch p.Kind {
	case PrecisionFixed:
		return string(rune(CharDot)) + strconv.Itoa(int(p.Fixed))
	case PrecisionDynamic:
		return string(rune(CharDot)) + p.Key.String() + string(rune(CharDollar))
	}
	return StrEmpty
}

// Specifier is the parsed directive after the ':' of a placeholder.
type Specifier struct {
	Form      Form
	Alternate bool
	Fill      rune
	Align     Alignment
	Sign      bool
	SignMinus bool
	ZeroPad   bool
	Width     Width
	Precision Precision
}

// DefaultSpecifier returns the specifier of a bare placeholder.
func DefaultSpecifier() Specifier {
	return Specifier{
		Form:  FormDisplay,
		Fill:  CharSpace,
		Align: AlignAuto,
	}
}

// String re-serialises the specifier in canonical grammar order.
func (s Specifier) String() string {
	var sb strings.Builder
	if s.Align != AlignAuto {
		sb.WriteRune(s.Fill)
		sb.WriteString(s.Align.String())
	}
	if s.Sign {
		sb.WriteByte(CharSignPlus)
	} else if s.SignMinus {
		sb.WriteByte(CharSignMinus)
	}
	if s.Alternate {
		sb.WriteByte(CharAlternate)
	}
	if s.ZeroPad {
		sb.WriteByte(CharZero)
	}
	sb.WriteString(s.Width.String())
	sb.WriteString(s.Precision.String())
	sb.WriteString(s.Form.Letter())
	return sb.String()
}

// ParseSpecifier parses the text after the first ':' of a placeholder.
// A ".*" precision takes the next implicit index from implicit and advances it.
// Error offsets are relative to text.
func ParseSpecifier(text string, implicit *int) (Specifier, error) {
	sc := specScanner{text: text}
	spec := DefaultSpecifier()

	sc.scanFillAlign(&spec)

	switch sc.peek() {
	case CharSignPlus:
		spec.Sign = true
		sc.pos++
	case CharSignMinus:
		spec.SignMinus = true
		sc.pos++
	}

	if sc.peek() == CharAlternate {
		spec.Alternate = true
		sc.pos++
	}

	// "0$" is a width taken from argument 0, not the zero flag
	if sc.peek() == CharZero && sc.peekAt(1) != CharDollar {
		spec.ZeroPad = true
		sc.pos++
	}

	width, err := sc.scanWidth()
	if err != nil {
		return Specifier{}, err
	}
	spec.Width = width

	if sc.peek() == CharDot {
		sc.pos++
		precision, err := sc.scanPrecision(implicit)
		if err != nil {
			return Specifier{}, err
		}
		spec.Precision = precision
	}

	if !sc.atEnd() {
		if form, ok := FormFromLetter(sc.peek()); ok {
			spec.Form = form
			sc.pos++
		}
	}

	if !sc.atEnd() {
		return Specifier{}, newSyntaxError(ErrMsgInvalidSpecifier, sc.pos)
	}
	return spec, nil
}

// specScanner walks the specifier text byte by byte, decoding runes only for
// the fill character and identifiers.
type specScanner struct {
	text string
	pos  int
}

func (sc *specScanner) atEnd() bool {
	return sc.pos >= len(sc.text)
}

func (sc *specScanner) peek() byte {
	return sc.peekAt(0)
}

func (sc *specScanner) peekAt(n int) byte {
	if sc.pos+n >= len(sc.text) {
		return 0
	}
	return sc.text[sc.pos+n]
}

// scanFillAlign consumes "[fill]align". The fill is recognised by looking one
// code point ahead for an alignment character.
func (sc *specScanner) scanFillAlign(spec *Specifier) {
	if sc.atEnd() {
		return
	}
	fill, size := utf8.DecodeRuneInString(sc.text[sc.pos:])
	if align, ok := alignmentOf(sc.peekAt(size)); ok && sc.pos+size < len(sc.text) {
		spec.Fill = fill
		spec.Align = align
		sc.pos += size + 1
		return
	}
	if align, ok := alignmentOf(sc.peek()); ok {
		spec.Align = align
		sc.pos++
	}
}

func (sc *specScanner) scanWidth() (Width, error) {
	start := sc.pos
	if isDigit(sc.peek()) {
		digits := sc.scanDigits()
		if sc.peek() == CharDollar {
			sc.pos++
			index, err := parseIndex(digits, start)
			if err != nil {
				return Width{}, err
			}
			return DynamicWidth(IndexKey(index)), nil
		}
		amount, err := parseAmount(digits, start)
		if err != nil {
			return Width{}, err
		}
		return FixedWidth(amount), nil
	}

	if name := sc.scanIdentifier(); name != StrEmpty {
		if sc.peek() == CharDollar {
			sc.pos++
			return DynamicWidth(NameKey(name)), nil
		}
		// not a width: the identifier is the form letter
		sc.pos = start
	}
	return FixedWidth(0), nil
}

func (sc *specScanner) scanPrecision(implicit *int) (Precision, error) {
	start := sc.pos
	switch {
	case sc.peek() == CharStar:
		sc.pos++
		key := IndexKey(*implicit)
		*implicit++
		return DynamicPrecision(key), nil

	case isDigit(sc.peek()):
		digits := sc.scanDigits()
		if sc.peek() == CharDollar {
			sc.pos++
			index, err := parseIndex(digits, start)
			if err != nil {
				return Precision{}, err
			}
			return DynamicPrecision(IndexKey(index)), nil
		}
		amount, err := parseAmount(digits, start)
		if err != nil {
			return Precision{}, err
		}
		return FixedPrecision(amount), nil
	}

	name := sc.scanIdentifier()
	if name == StrEmpty {
		return Precision{}, newSyntaxError(ErrMsgMissingPrecision, start)
	}
	if sc.peek() != CharDollar {
		return Precision{}, newSyntaxError(ErrMsgMissingDollar, sc.pos)
	}
	sc.pos++
	return DynamicPrecision(NameKey(name)), nil
}

func (sc *specScanner) scanDigits() string {
	start := sc.pos
	for isDigit(sc.peek()) {
		sc.pos++
	}
	return sc.text[start:sc.pos]
}

func (sc *specScanner) scanIdentifier() string {
	start := sc.pos
	n := identifierLength(sc.text[sc.pos:])
	sc.pos += n
	return sc.text[start:sc.pos]
}

// identifierLength returns the byte length of the identifier prefix of s:
// a letter or '_' followed by letters, digits and '_'.
func identifierLength(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		ok := r == CharUnderscore || unicode.IsLetter(r)
		if n > 0 {
			ok = ok || unicode.IsDigit(r)
		}
		if !ok {
			break
		}
		n += size
	}
	return n
}

// IsIdentifier reports whether s is a valid argument name.
func IsIdentifier(s string) bool {
	return s != StrEmpty && identifierLength(s) == len(s)
}

// IsIndex reports whether s consists of ASCII digits only.
func IsIndex(s string) bool {
	if s == StrEmpty {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func parseAmount(digits string, offset int) (uint16, error) {
	amount, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, newSyntaxError(ErrMsgAmountOverflow, offset)
	}
	return uint16(amount), nil
}

func parseIndex(digits string, offset int) (int, error) {
	index, err := strconv.Atoi(digits)
	if err != nil {
		return 0, newSyntaxError(ErrMsgIndexOverflow, offset)
	}
	return index, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
