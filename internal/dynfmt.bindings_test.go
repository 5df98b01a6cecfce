package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindings_Lookup(t *testing.T) {
	b := NewBindings(4)
	b.Append(BoundValue{Key: NameKey("x"), Value: "first", Forms: NewFormSet(FormDisplay), Bundle: BundleDisplay})
	b.Append(BoundValue{Key: NameKey("x"), Value: "second", Forms: FormsDisplayDebug, Bundle: BundleDisplayDebug})
	b.Append(BoundValue{Key: IndexKey(0), Value: 3, Forms: NewFormSet(FormAmount), Bundle: BundleAmount})

	t.Run("first match wins", func(t *testing.T) {
		v, err := b.Lookup(NameKey("x"), FormDisplay)
		require.NoError(t, err)
		assert.Equal(t, "first", v)
	})

	t.Run("later binding serves other forms", func(t *testing.T) {
		v, err := b.Lookup(NameKey("x"), FormDebug)
		require.NoError(t, err)
		assert.Equal(t, "second", v)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := b.Lookup(NameKey("y"), FormDisplay)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrArgumentNotFound))
	})

	t.Run("bound key without the form", func(t *testing.T) {
		_, err := b.Lookup(IndexKey(0), FormDisplay)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCapabilityMismatch))

		var argErr *ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, FormDisplay, argErr.Form)
		assert.Equal(t, NewFormSet(FormAmount), argErr.Offered)
	})

	t.Run("bound forms are merged", func(t *testing.T) {
		assert.Equal(t, FormsDisplayDebug, b.BoundForms(NameKey("x")))
		assert.Equal(t, 3, b.Len())
		assert.Len(t, b.Values(), 3)
	})
}
