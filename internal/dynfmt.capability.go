package internal

import (
	"fmt"
	"reflect"
)

// Bundle is a predefined capability bundle a bound value is tagged with.
type Bundle uint8

// Bundle constants, ordered by size so the first covering bundle is the smallest.
const (
	BundleDisplay Bundle = iota
	BundleDebug
	BundleBinary
	BundleOctal
	BundleLowerHex
	BundleUpperHex
	BundleLowerExp
	BundleUpperExp
	BundlePointer
	BundleAmount
	BundleDisplayDebug
	BundleFloatLike
	BundleIntegerLike
	// BundleOffered tags unchecked bindings with everything the value offers.
	BundleOffered
)

// Bundle names
const (
	BundleNameDisplayDebug = "display_debug"
	BundleNameFloatLike    = "float_like"
	BundleNameIntegerLike  = "integer_like"
	BundleNameOffered      = "offered"
)

// Capability sets of the multi-form bundles
var (
	FormsDisplayDebug = NewFormSet(FormDisplay, FormDebug)
	FormsFloatLike    = NewFormSet(FormDisplay, FormDebug, FormLowerExp, FormUpperExp)
	FormsIntegerLike  = NewFormSet(FormDisplay, FormDebug, FormLowerExp, FormUpperExp,
		FormLowerHex, FormUpperHex, FormBinary, FormOctal)
	formsFormatter = FormsIntegerLike
	formsPointer   = NewFormSet(FormPointer, FormDebug)
	formsDebug     = NewFormSet(FormDebug)
)

// bundleTable lists the bundles a checked binding may select, smallest first.
var bundleTable = []struct {
	bundle Bundle
	forms  FormSet
}{
	{BundleDisplay, NewFormSet(FormDisplay)},
	{BundleDebug, NewFormSet(FormDebug)},
	{BundleBinary, NewFormSet(FormBinary)},
	{BundleOctal, NewFormSet(FormOctal)},
	{BundleLowerHex, NewFormSet(FormLowerHex)},
	{BundleUpperHex, NewFormSet(FormUpperHex)},
	{BundleLowerExp, NewFormSet(FormLowerExp)},
	{BundleUpperExp, NewFormSet(FormUpperExp)},
	{BundlePointer, NewFormSet(FormPointer)},
	{BundleAmount, NewFormSet(FormAmount)},
	{BundleDisplayDebug, FormsDisplayDebug},
	{BundleFloatLike, FormsFloatLike},
	{BundleIntegerLike, FormsIntegerLike},
}

// Forms returns the capability set of the bundle. BundleOffered has none of its own.
func (b Bundle) Forms() FormSet {
	if int(b) < len(bundleTable) {
		return bundleTable[b].forms
	}
	return 0
}

func (b Bundle) String() string {
	switch b {
	case BundleDisplayDebug:
		return BundleNameDisplayDebug
	case BundleFloatLike:
		return BundleNameFloatLike
	case BundleIntegerLike:
		return BundleNameIntegerLike
	case BundleOffered:
		return BundleNameOffered
	}
	if b < BundleDisplayDebug {
		return Form(b).String()
	}
	return FormNameUnknown
}

// SelectBundle picks the smallest bundle B with required ⊆ B ⊆ offered.
func SelectBundle(required, offered FormSet) (Bundle, bool) {
	for _, entry := range bundleTable {
		if entry.forms.Covers(required) && offered.Covers(entry.forms) {
			return entry.bundle, true
		}
	}
	return 0, false
}

// CoverRequirement selects the bundles one value is bound through.
// A single bundle is preferred; otherwise the width/precision amount is bound
// on its own and the remaining forms must fit one bundle.
func CoverRequirement(required, offered FormSet) ([]Bundle, bool) {
	if bundle, ok := SelectBundle(required, offered); ok {
		return []Bundle{bundle}, true
	}
	if !required.Has(FormAmount) {
		return nil, false
	}
	amount, ok := SelectBundle(NewFormSet(FormAmount), offered)
	if !ok {
		return nil, false
	}
	rest, ok := SelectBundle(required.Without(FormAmount), offered)
	if !ok {
		return nil, false
	}
	return []Bundle{rest, amount}, true
}

// OfferedForms infers the forms a value can natively be rendered through from
// its dynamic type.
func OfferedForms(value any) FormSet {
	if value == nil {
		return formsDebug
	}

	var offered FormSet
	switch reflect.TypeOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		offered = FormsIntegerLike.With(FormAmount)
	case reflect.Float32, reflect.Float64:
		offered = FormsFloatLike
	case reflect.String, reflect.Bool, reflect.Complex64, reflect.Complex128:
		offered = FormsDisplayDebug
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		offered = formsPointer
	default:
		offered = formsDebug
	}

	switch value.(type) {
	case fmt.Formatter:
		offered |= formsFormatter
	case fmt.Stringer, error:
		offered |= FormsDisplayDebug
	}
	return offered
}

// AmountOf converts an integer argument to a width or precision: negative
// values clamp to 0 and values above 65535 saturate.
func AmountOf(value any) (int, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return 0, true
		}
		if n > MaxAmount {
			return MaxAmount, true
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > MaxAmount {
			return MaxAmount, true
		}
		return int(n), true
	}
	return 0, false
}
