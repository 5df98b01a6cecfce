package internal

import (
	"math/bits"
	"strings"
)

// Form is the rendering mode of one placeholder use.
type Form uint8

// Form constants. FormAmount is only requested by dynamic width and precision references.
const (
	FormDisplay Form = iota
	FormDebug
	FormBinary
	FormOctal
	FormLowerHex
	FormUpperHex
	FormLowerExp
	FormUpperExp
	FormPointer
	FormAmount
	formCount
)

// Form names for logging and error metadata
const (
	FormNameDisplay  = "display"
	FormNameDebug    = "debug"
	FormNameBinary   = "binary"
	FormNameOctal    = "octal"
	FormNameLowerHex = "lower_hex"
	FormNameUpperHex = "upper_hex"
	FormNameLowerExp = "lower_exp"
	FormNameUpperExp = "upper_exp"
	FormNamePointer  = "pointer"
	FormNameAmount   = "width_or_precision_amount"
	FormNameUnknown  = "unknown"
)

var formNames = [formCount]string{
	FormDisplay:  FormNameDisplay,
	FormDebug:    FormNameDebug,
	FormBinary:   FormNameBinary,
	FormOctal:    FormNameOctal,
	FormLowerHex: FormNameLowerHex,
	FormUpperHex: FormNameUpperHex,
	FormLowerExp: FormNameLowerExp,
	FormUpperExp: FormNameUpperExp,
	FormPointer:  FormNamePointer,
	FormAmount:   FormNameAmount,
}

// FormFromLetter maps a specifier form letter to its Form.
func FormFromLetter(letter byte) (Form, bool) {
	switch letter {
	case LetterDebug:
		return FormDebug, true
	case LetterDisplay:
		return FormDisplay, true
	case LetterOctal:
		return FormOctal, true
	case LetterLowerHex:
		return FormLowerHex, true
	case LetterUpperHex:
		return FormUpperHex, true
	case LetterBinary:
		return FormBinary, true
	case LetterLowerExp:
		return FormLowerExp, true
	case LetterUpperExp:
		return FormUpperExp, true
	case LetterPointer:
		return FormPointer, true
	}
	return FormDisplay, false
}

// Letter returns the specifier letter of the form. Display and Amount have none.
func (f Form) Letter() string {
	switch f {
	case FormDebug:
		return string(rune(LetterDebug))
	case FormBinary:
		return string(rune(LetterBinary))
	case FormOctal:
		return string(rune(LetterOctal))
	case FormLowerHex:
		return string(rune(LetterLowerHex))
	case FormUpperHex:
		return string(rune(LetterUpperHex))
	case FormLowerExp:
		return string(rune(LetterLowerExp))
	case FormUpperExp:
		return string(rune(LetterUpperExp))
	case FormPointer:
		return string(rune(LetterPointer))
	}
	return StrEmpty
}

// String returns the form name.
func (f Form) String() string {
	if f < formCount {
		return formNames[f]
	}
	return FormNameUnknown
}

// FormSet is a set of forms, used both for the aggregated requirements of a key
// and for the capabilities a bound value offers.
type FormSet uint16

// NewFormSet returns the set containing forms.
func NewFormSet(forms ...Form) FormSet {
	var s FormSet
	for _, f := range forms {
		s = s.With(f)
	}
	return s
}

// With returns s plus f.
func (s FormSet) With(f Form) FormSet {
	return s | 1<<f
}

// Without returns s minus f.
func (s FormSet) Without(f Form) FormSet {
	return s &^ (1 << f)
}

// Has reports whether f is in s.
func (s FormSet) Has(f Form) bool {
	return s&(1<<f) != 0
}

// Covers reports whether every form of other is in s.
func (s FormSet) Covers(other FormSet) bool {
	return s&other == other
}

// Overlaps reports whether s and other share a form.
func (s FormSet) Overlaps(other FormSet) bool {
	return s&other != 0
}

// IsEmpty reports whether s has no forms.
func (s FormSet) IsEmpty() bool {
	return s == 0
}

// Len returns the number of forms in s.
func (s FormSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Forms lists the forms of s in declaration order.
func (s FormSet) Forms() []Form {
	forms := make([]Form, 0, s.Len())
	for f := Form(0); f < formCount; f++ {
		if s.Has(f) {
			forms = append(forms, f)
		}
	}
	return forms
}

// String renders the set as {display,debug}.
func (s FormSet) String() string {
	var sb strings.Builder
	sb.WriteString(StrFormSetOpen)
	for i, f := range s.Forms() {
		if i > 0 {
			sb.WriteString(StrFormSetSeparator)
		}
		sb.WriteString(f.String())
	}
	sb.WriteString(StrFormSetClose)
	return sb.String()
}
