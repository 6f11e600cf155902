package guard_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("Item must be created via NewItem")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type menuEntry struct {
		description string
		guard       guard.ConstructorGuard
	}
	errEntryNotConstructed := errors.New("menuEntry must be created via newMenuEntry")

	newMenuEntry := func(description string) menuEntry {
		return menuEntry{description: description, guard: guard.NewConstructorGuard()}
	}

	t.Run("copy_keeps_constructed_state", func(t *testing.T) {
		entry := newMenuEntry("Fries")
		entryCopy := entry

		require.NoError(t, entry.guard.Validate(errEntryNotConstructed))
		require.NoError(t, entryCopy.guard.Validate(errEntryNotConstructed))
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var entry menuEntry

		assert.Equal(t, errEntryNotConstructed, entry.guard.Validate(errEntryNotConstructed))
	})
}
