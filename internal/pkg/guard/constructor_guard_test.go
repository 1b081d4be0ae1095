package guard_test

import (
	"errors"
	"testing"

	"orderadmin/internal/pkg/guard"

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
		expectedError := errors.New("session not constructed")

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
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuardEmbedded(t *testing.T) {
	errDraftNotConstructed := errors.New("Draft must be created via NewDraft")

	type Draft struct {
		values []string
		guard  guard.ConstructorGuard
	}

	newDraft := func(values []string) (Draft, error) {
		if len(values) == 0 {
			return Draft{}, errors.New("values are required")
		}
		return Draft{values: values, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		d, err := newDraft([]string{"Main St"})

		// Then
		require.NoError(t, err)
		require.NoError(t, d.guard.Validate(errDraftNotConstructed))
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var d Draft

		// Then
		assert.Equal(t, errDraftNotConstructed, d.guard.Validate(errDraftNotConstructed))
	})
}
