package internal

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type celsius float64

type level int

func (l level) String() string { return "level" }

func TestOfferedForms(t *testing.T) {
	ptr := new(int)
	tests := []struct {
		name     string
		value    any
		expected FormSet
	}{
		{name: "int", value: 42, expected: FormsIntegerLike.With(FormAmount)},
		{name: "uint8", value: uint8(7), expected: FormsIntegerLike.With(FormAmount)},
		{name: "named int", value: level(1), expected: FormsIntegerLike.With(FormAmount)},
		{name: "float64", value: 1.5, expected: FormsFloatLike},
		{name: "named float", value: celsius(21.5), expected: FormsFloatLike},
		{name: "string", value: "text", expected: FormsDisplayDebug},
		{name: "bool", value: true, expected: FormsDisplayDebug},
		{name: "complex", value: complex(1, 2), expected: FormsDisplayDebug},
		{name: "pointer", value: ptr, expected: NewFormSet(FormPointer, FormDebug)},
		{name: "slice", value: []int{1}, expected: NewFormSet(FormPointer, FormDebug)},
		{name: "struct", value: struct{ A int }{1}, expected: NewFormSet(FormDebug)},
		{name: "nil", value: nil, expected: NewFormSet(FormDebug)},
		{name: "error", value: errors.New("boom"), expected: NewFormSet(FormPointer, FormDebug, FormDisplay)},
		{name: "stringer struct", value: time.Second, expected: FormsIntegerLike.With(FormAmount)},
		{name: "formatter", value: big.NewInt(5), expected: FormsIntegerLike.With(FormPointer)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OfferedForms(tt.value))
		})
	}
}

func TestSelectBundle(t *testing.T) {
	integer := FormsIntegerLike.With(FormAmount)
	tests := []struct {
		name     string
		required FormSet
		offered  FormSet
		expected Bundle
		ok       bool
	}{
		{name: "single form", required: NewFormSet(FormDisplay), offered: integer, expected: BundleDisplay, ok: true},
		{name: "display and debug", required: FormsDisplayDebug, offered: integer, expected: BundleDisplayDebug, ok: true},
		{name: "float forms", required: NewFormSet(FormDisplay, FormLowerExp), offered: integer, expected: BundleFloatLike, ok: true},
		{name: "integer forms", required: NewFormSet(FormDisplay, FormLowerHex), offered: integer, expected: BundleIntegerLike, ok: true},
		{name: "amount", required: NewFormSet(FormAmount), offered: integer, expected: BundleAmount, ok: true},
		{name: "hex from string", required: NewFormSet(FormLowerHex), offered: FormsDisplayDebug, ok: false},
		{name: "pointer with debug", required: NewFormSet(FormPointer, FormDebug), offered: NewFormSet(FormPointer, FormDebug), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, ok := SelectBundle(tt.required, tt.offered)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, bundle)
				assert.True(t, bundle.Forms().Covers(tt.required))
				assert.True(t, tt.offered.Covers(bundle.Forms()))
			}
		})
	}
}

func TestSelectBundle_IsMinimal(t *testing.T) {
	offered := FormsIntegerLike.With(FormAmount)
	for _, required := range []FormSet{
		NewFormSet(FormDebug),
		NewFormSet(FormDisplay, FormDebug),
		NewFormSet(FormUpperExp, FormDebug),
		NewFormSet(FormOctal, FormBinary),
	} {
		bundle, ok := SelectBundle(required, offered)
		assert.True(t, ok)
		for _, entry := range bundleTable {
			if entry.forms.Covers(required) && offered.Covers(entry.forms) {
				assert.LessOrEqual(t, bundle.Forms().Len(), entry.forms.Len())
			}
		}
	}
}

func TestCoverRequirement(t *testing.T) {
	integer := FormsIntegerLike.With(FormAmount)

	bundles, ok := CoverRequirement(NewFormSet(FormDisplay, FormAmount), integer)
	assert.True(t, ok)
	assert.Equal(t, []Bundle{BundleDisplay, BundleAmount}, bundles)

	bundles, ok = CoverRequirement(NewFormSet(FormLowerHex), integer)
	assert.True(t, ok)
	assert.Equal(t, []Bundle{BundleLowerHex}, bundles)

	_, ok = CoverRequirement(NewFormSet(FormDisplay, FormAmount), FormsFloatLike)
	assert.False(t, ok)

	_, ok = CoverRequirement(NewFormSet(FormPointer, FormDebug), NewFormSet(FormPointer, FormDebug))
	assert.False(t, ok)
}

func TestAmountOf(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int
		ok       bool
	}{
		{name: "int", value: 8, expected: 8, ok: true},
		{name: "negative clamps to zero", value: -3, expected: 0, ok: true},
		{name: "saturates", value: 1 << 20, expected: MaxAmount, ok: true},
		{name: "uint64 saturates", value: uint64(1 << 40), expected: MaxAmount, ok: true},
		{name: "int8", value: int8(12), expected: 12, ok: true},
		{name: "float is not an amount", value: 2.0, ok: false},
		{name: "string is not an amount", value: "3", ok: false},
		{name: "nil", value: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := AmountOf(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, amount)
		})
	}
}
