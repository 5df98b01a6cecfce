package internal

// Template grammar characters
const (
	CharOpenBrace   = '{'
	CharCloseBrace  = '}'
	CharSeparator   = ':'
	CharAlignLeft   = '<'
	CharAlignCenter = '^'
	CharAlignRight  = '>'
	CharSignPlus    = '+'
	CharSignMinus   = '-'
	CharAlternate   = '#'
	CharZero        = '0'
	CharDollar      = '$'
	CharDot         = '.'
	CharStar        = '*'
	CharSpace       = ' '
	CharNewline     = '\n'
	CharUnderscore  = '_'
)

// Form letters
const (
	LetterDebug    = '?'
	LetterDisplay  = 'd'
	LetterOctal    = 'o'
	LetterLowerHex = 'x'
	LetterUpperHex = 'X'
	LetterBinary   = 'b'
	LetterLowerExp = 'e'
	LetterUpperExp = 'E'
	LetterPointer  = 'p'
)

// Escaped brace literals
const (
	StrEscapedOpen  = "{{"
	StrEscapedClose = "}}"
)

// Numeric prefixes for the alternate form
const (
	PrefixBinary = "0b"
	PrefixOctal  = "0o"
	PrefixHex    = "0x"
)

// Special float renderings
const (
	StrNaN         = "NaN"
	StrInf         = "inf"
	StrNegative    = "-"
	StrPositive    = "+"
	StrDecimalZero = ".0"
	StrNil         = "<nil>"
)

// SentinelFill is the code point padding is written with before fill substitution.
const SentinelFill = 'ꙮ'

// Sizing and limits
const (
	DefaultPlaceholderEstimate = 16
	DefaultPieceCapacity       = 10
	MaxAmount                  = 1<<16 - 1
	PointerHexDigits           = 16
	DebugExpLowerBound         = 1e-4
	DebugExpUpperBound         = 1e16
)

// fmt verb fragments used for values that format themselves
const (
	VerbPercent       = "%"
	VerbValue         = "v"
	VerbFlagPlus      = "+"
	VerbFlagSharp     = "#"
	VerbFlagZero      = "0"
	VerbPrecisionMark = "."
)

// Log message constants
const (
	LogMsgParserCreated   = "parser created"
	LogMsgParserStart     = "starting parse"
	LogMsgParserEnd       = "parse complete"
	LogMsgParserFailed    = "parse failed"
	LogMsgRendererCreated = "renderer created"
	LogMsgRenderStart     = "starting render"
	LogMsgRenderEnd       = "render complete"
	LogMsgRenderFailed    = "render failed"
)

// Log field names
const (
	LogFieldSource       = "source_length"
	LogFieldPieces       = "piece_count"
	LogFieldOffset       = "offset"
	LogFieldOutput       = "output_length"
	LogFieldDisplayWidth = "display_width"
	LogFieldError        = "error"
)

// Error message constants
const (
	ErrMsgUnexpectedToken    = "unexpected token"
	ErrMsgUnmatchedClose     = "unmatched closing brace"
	ErrMsgUnterminated       = "unterminated placeholder"
	ErrMsgNestedOpen         = "opening brace inside placeholder"
	ErrMsgInvalidKey         = "invalid argument key"
	ErrMsgInvalidSpecifier   = "trailing characters in format specifier"
	ErrMsgAmountOverflow     = "width or precision exceeds 65535"
	ErrMsgIndexOverflow      = "argument index out of range"
	ErrMsgMissingPrecision   = "missing precision after '.'"
	ErrMsgMissingDollar      = "expected '$' after argument reference"
	ErrMsgArgumentNotFound   = "argument not found"
	ErrMsgDuplicateArgument  = "duplicate argument"
	ErrMsgCapabilityMismatch = "argument cannot be rendered in the requested form"
	ErrMsgWriterFailed       = "output writer failed"
	ErrMsgAmountNotInteger   = "width or precision argument is not an integer"
	ErrFmtWithPosition       = "%s at %s"
	ErrFmtArgument           = "%s: key '%s'"
	ErrFmtArgumentForm       = "%s: key '%s' form %s"
	ErrFmtWithCause          = "%s: %v"
	StrPositionFmt           = "line %d, column %d"
	StrFormSetOpen           = "{"
	StrFormSetClose          = "}"
	StrFormSetSeparator      = ","
	StrEmpty                 = ""
)
