package internal

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Field holds the resolved parameters of one placeholder. Width and precision
// are concrete amounts; Precision is -1 when unset.
type Field struct {
	Form      Form
	Fill      rune
	Align     Alignment
	Sign      bool
	Alternate bool
	ZeroPad   bool
	Width     int
	Precision int
}

// FieldFor returns the field of spec with literal amounts filled in.
// Dynamic amounts are left at their zero value for the caller to resolve.
func FieldFor(spec *Specifier) Field {
	if spec == nil {
		return Field{Form: FormDisplay, Fill: CharSpace, Precision: -1}
	}
	f := Field{
		Form:      spec.Form,
		Fill:      spec.Fill,
		Align:     spec.Align,
		Sign:      spec.Sign,
		Alternate: spec.Alternate,
		ZeroPad:   spec.ZeroPad,
		Precision: -1,
	}
	if !spec.Width.Dynamic {
		f.Width = int(spec.Width.Fixed)
	}
	if spec.Precision.Kind == PrecisionFixed {
		f.Precision = int(spec.Precision.Fixed)
	}
	return f
}

// number is a numeric rendering split into the parts sign-aware padding
// works on.
type number struct {
	negative bool
	signless bool
	prefix   string
	digits   string
}

// WriteValue renders value through f.Form into sb. It reports false when the
// value has no rendering for that form.
func WriteValue(sb *strings.Builder, value any, f Field, metrics TextMetrics) bool {
	if f.Form == FormPointer {
		n, ok := pointerNumber(value)
		if !ok {
			return false
		}
		if f.Alternate {
			f.ZeroPad = true
			if f.Width == 0 {
				f.Width = PointerHexDigits + len(PrefixHex)
			}
		}
		writeNumber(sb, n, f, metrics)
		return true
	}

	kind := reflect.Invalid
	var rv reflect.Value
	if value != nil {
		rv = reflect.ValueOf(value)
		kind = rv.Kind()
	}

	if isIntegerKind(kind) || isFloatKind(kind) {
		if f.Form == FormDisplay {
			if text, ok := stringerText(value); ok {
				writeText(sb, text, f, metrics)
				return true
			}
		}
		var n number
		var ok bool
		if isIntegerKind(kind) {
			n, ok = integerNumber(rv, f)
		} else {
			n, ok = floatNumber(rv, f)
		}
		if !ok {
			return false
		}
		writeNumber(sb, n, f, metrics)
		return true
	}

	if formatter, ok := value.(fmt.Formatter); ok {
		return writeFormatter(sb, formatter, f, metrics)
	}

	switch f.Form {
	case FormDisplay:
		text, ok := displayText(value, rv, kind)
		if !ok {
			return false
		}
		writeText(sb, text, f, metrics)
	case FormDebug:
		if kind == reflect.String {
			// quoted strings ignore width and precision
			sb.WriteString(strconv.Quote(rv.String()))
			return true
		}
		writeText(sb, debugText(value, rv, kind, f.Alternate), f, metrics)
	default:
		return false
	}
	return true
}

func writeText(sb *strings.Builder, text string, f Field, metrics TextMetrics) {
	if f.Precision >= 0 {
		text = metrics.Truncate(text, f.Precision)
	}
	writeAligned(sb, text, f.Width, f.Align, f.Fill, false, metrics)
}

// writeNumber applies sign, zero padding and alignment. Zero padding goes
// between the sign/prefix and the digits and overrides fill and alignment.
func writeNumber(sb *strings.Builder, n number, f Field, metrics TextMetrics) {
	sign := StrEmpty
	switch {
	case n.signless:
	case n.negative:
		sign = StrNegative
	case f.Sign:
		sign = StrPositive
	}

	if f.ZeroPad {
		head := sign + n.prefix
		sb.WriteString(head)
		writeRepeated(sb, CharZero, f.Width-len(head)-metrics.Width(n.digits))
		sb.WriteString(n.digits)
		return
	}
	writeAligned(sb, sign+n.prefix+n.digits, f.Width, f.Align, f.Fill, true, metrics)
}

func integerNumber(rv reflect.Value, f Field) (number, bool) {
	var negative bool
	var magnitude, raw uint64
	if isSignedKind(rv.Kind()) {
		v := rv.Int()
		negative = v < 0
		magnitude = uint64(v)
		if negative {
			magnitude = uint64(-v)
		}
		raw = uint64(v) & bitMask(rv.Type().Bits())
	} else {
		magnitude = rv.Uint()
		raw = magnitude
	}

	n := number{}
	switch f.Form {
	case FormDisplay, FormDebug:
		n.negative = negative
		n.digits = strconv.FormatUint(magnitude, 10)
	case FormLowerExp, FormUpperExp:
		n.negative = negative
		n.digits = integerExp(strconv.FormatUint(magnitude, 10), f.Precision, f.Form == FormUpperExp)
	case FormBinary:
		n.digits = strconv.FormatUint(raw, 2)
		n.prefix = alternatePrefix(f.Alternate, PrefixBinary)
	case FormOctal:
		n.digits = strconv.FormatUint(raw, 8)
		n.prefix = alternatePrefix(f.Alternate, PrefixOctal)
	case FormLowerHex:
		n.digits = strconv.FormatUint(raw, 16)
		n.prefix = alternatePrefix(f.Alternate, PrefixHex)
	case FormUpperHex:
		n.digits = strings.ToUpper(strconv.FormatUint(raw, 16))
		n.prefix = alternatePrefix(f.Alternate, PrefixHex)
	default:
		return number{}, false
	}
	return n, true
}

func floatNumber(rv reflect.Value, f Field) (number, bool) {
	switch f.Form {
	case FormDisplay, FormDebug, FormLowerExp, FormUpperExp:
	default:
		return number{}, false
	}

	v := rv.Float()
	bitSize := rv.Type().Bits()
	if math.IsNaN(v) {
		return number{signless: true, digits: StrNaN}, true
	}

	n := number{negative: math.Signbit(v)}
	abs := math.Abs(v)
	switch {
	case math.IsInf(v, 0):
		n.digits = StrInf
	case f.Form == FormDisplay:
		n.digits = strconv.FormatFloat(abs, 'f', f.Precision, bitSize)
	case f.Form == FormDebug && f.Precision >= 0:
		n.digits = strconv.FormatFloat(abs, 'f', f.Precision, bitSize)
	case f.Form == FormDebug:
		n.digits = debugFloat(abs, bitSize)
	default:
		n.digits = floatExp(abs, f.Precision, bitSize, f.Form == FormUpperExp)
	}
	return n, true
}

// debugFloat renders the shortest round-trip decimal, always with a fractional
// part, switching to exponent notation for very small and very large magnitudes.
func debugFloat(abs float64, bitSize int) string {
	if abs != 0 && (abs < DebugExpLowerBound || abs >= DebugExpUpperBound) {
		return floatExp(abs, -1, bitSize, false)
	}
	s := strconv.FormatFloat(abs, 'f', -1, bitSize)
	if !strings.ContainsRune(s, CharDot) {
		s += StrDecimalZero
	}
	return s
}

// floatExp renders abs as "<mantissa>e<exponent>" with an unpadded exponent
// that carries a sign only when negative.
func floatExp(abs float64, precision, bitSize int, upper bool) string {
	s := strconv.FormatFloat(abs, 'e', precision, bitSize)
	mark := strings.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[mark+1:])
	return joinExp(s[:mark], exp, upper)
}

// integerExp renders the decimal digits of an integer in exponent notation.
// With a precision the mantissa is rounded half to even.
func integerExp(digits string, precision int, upper bool) string {
	exp := len(digits) - 1
	if precision < 0 {
		mantissa := digits[:1]
		if rest := strings.TrimRight(digits[1:], string(rune(CharZero))); rest != StrEmpty {
			mantissa += string(rune(CharDot)) + rest
		}
		return joinExp(mantissa, exp, upper)
	}

	significant := precision + 1
	kept := digits
	if len(digits) > significant {
		var carry bool
		kept, carry = roundDigits(digits, significant)
		if carry {
			exp++
		}
	} else {
		kept += strings.Repeat(string(rune(CharZero)), significant-len(digits))
	}

	mantissa := kept[:1]
	if precision > 0 {
		mantissa += string(rune(CharDot)) + kept[1:]
	}
	return joinExp(mantissa, exp, upper)
}

// roundDigits rounds digits to n significant digits, half to even. It reports
// whether rounding carried into a new leading digit.
func roundDigits(digits string, n int) (string, bool) {
	kept := []byte(digits[:n])
	first := digits[n]
	tailNonZero := strings.Trim(digits[n+1:], string(rune(CharZero))) != StrEmpty
	lastOdd := (kept[n-1]-CharZero)%2 == 1
	if first < '5' || (first == '5' && !tailNonZero && !lastOdd) {
		return string(kept), false
	}

	for i := n - 1; i >= 0; i-- {
		if kept[i] != '9' {
			kept[i]++
			return string(kept), false
		}
		kept[i] = CharZero
	}
	return "1" + string(kept[:n-1]), true
}

func joinExp(mantissa string, exp int, upper bool) string {
	mark := "e"
	if upper {
		mark = "E"
	}
	return mantissa + mark + strconv.Itoa(exp)
}

func pointerNumber(value any) (number, bool) {
	if value == nil {
		return number{}, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return number{prefix: PrefixHex, digits: strconv.FormatUint(uint64(rv.Pointer()), 16)}, true
	}
	return number{}, false
}

// writeFormatter hands the value its own fmt verb built from the field.
func writeFormatter(sb *strings.Builder, formatter fmt.Formatter, f Field, metrics TextMetrics) bool {
	letter, ok := verbLetter(f.Form)
	if !ok {
		return false
	}

	var verb strings.Builder
	verb.WriteString(VerbPercent)
	if f.Sign && f.Form != FormDebug {
		verb.WriteString(VerbFlagPlus)
	}
	if f.Alternate {
		verb.WriteString(VerbFlagSharp)
	}
	zeroPadded := f.ZeroPad && f.Width > 0
	if zeroPadded {
		verb.WriteString(VerbFlagZero)
		verb.WriteString(strconv.Itoa(f.Width))
	}
	if f.Precision >= 0 {
		verb.WriteString(VerbPrecisionMark)
		verb.WriteString(strconv.Itoa(f.Precision))
	}
	verb.WriteString(letter)

	text := fmt.Sprintf(verb.String(), formatter)
	if zeroPadded {
		sb.WriteString(text)
		return true
	}
	writeAligned(sb, text, f.Width, f.Align, f.Fill, true, metrics)
	return true
}

func verbLetter(form Form) (string, bool) {
	switch form {
	case FormDisplay, FormDebug:
		return VerbValue, true
	case FormBinary:
		return string(rune(LetterBinary)), true
	case FormOctal:
		return string(rune(LetterOctal)), true
	case FormLowerHex:
		return string(rune(LetterLowerHex)), true
	case FormUpperHex:
		return string(rune(LetterUpperHex)), true
	case FormLowerExp:
		return string(rune(LetterLowerExp)), true
	case FormUpperExp:
		return string(rune(LetterUpperExp)), true
	}
	return StrEmpty, false
}

func stringerText(value any) (string, bool) {
	switch v := value.(type) {
	case error:
		return v.Error(), true
	case fmt.Stringer:
		return v.String(), true
	}
	return StrEmpty, false
}

func displayText(value any, rv reflect.Value, kind reflect.Kind) (string, bool) {
	if text, ok := stringerText(value); ok {
		return text, true
	}
	switch kind {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, rv.Type().Bits()), true
	}
	return StrEmpty, false
}

func debugText(value any, rv reflect.Value, kind reflect.Kind, alternate bool) string {
	switch kind {
	case reflect.Invalid:
		return StrNil
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	if alternate {
		return fmt.Sprintf(VerbPercent+VerbFlagSharp+VerbValue, value)
	}
	return fmt.Sprintf(VerbPercent+VerbFlagPlus+VerbValue, value)
}

func alternatePrefix(alternate bool, prefix string) string {
	if alternate {
		return prefix
	}
	return StrEmpty
}

func bitMask(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(bits) - 1
}

func isSignedKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isIntegerKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return isSignedKind(kind)
}

func isFloatKind(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}
