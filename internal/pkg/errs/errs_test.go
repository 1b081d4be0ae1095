package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"orderadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 42)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, 42, err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: orderId 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("snapshot is empty")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", 42, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 42 (cause: snapshot is empty)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("price")

		assert.Equal(t, "price", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: price", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("not a number")
		err := errs.NewValueIsInvalidErrorWithCause("price", cause)

		assert.Equal(t, "value is invalid: price (cause: not a number)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("ship-to.name")

		assert.Equal(t, "value is required: ship-to.name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("ship-to.name", errors.New("blank"))

		assert.Equal(t, "value is required: ship-to.name (cause: blank)", err.Error())
	})
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewNetworkError("GET", "http://localhost:3000/api/Orders", cause)

	require.ErrorIs(t, err, errs.ErrNetwork)
	require.ErrorIs(t, err, cause)
	assert.Equal(t,
		"network error: GET http://localhost:3000/api/Orders (cause: connection refused)",
		err.Error())
}

func TestRemoteRejectionError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := errs.NewRemoteRejectionError("DELETE", "/Orders/1", 404, "Unknown\n\"Order\" id 1")

		require.ErrorIs(t, err, errs.ErrRemoteRejection)
		assert.Equal(t, 404, err.Status)
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "responded 404")
	})

	t.Run("without message", func(t *testing.T) {
		err := errs.NewRemoteRejectionError("PUT", "/Orders", 500, "")

		assert.Equal(t, "remote rejection: PUT /Orders responded 500", err.Error())
	})

	t.Run("as target", func(t *testing.T) {
		var wrapped error = fmt.Errorf("create order: %w", errs.NewRemoteRejectionError("PUT", "/Orders", 422, "bad"))

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, wrapped, &rejection)
		assert.Equal(t, 422, rejection.Status)
	})
}

func TestSyncError(t *testing.T) {
	cause := errs.NewNetworkError("GET", "/OrderProducts", errors.New("timeout"))
	err := errs.NewSyncError(cause)

	require.ErrorIs(t, err, errs.ErrSync)
	require.ErrorIs(t, err, errs.ErrNetwork)
	assert.Contains(t, err.Error(), "repository sync failed")
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("name")))
	assert.True(t, errs.IsValidation(errors.Join(errs.NewValueIsInvalidError("price"), errors.New("x"))))
	assert.False(t, errs.IsValidation(errs.ErrNoActiveOrder))
	assert.False(t, errs.IsValidation(nil))
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "no active order", errs.ErrNoActiveOrder.Error())
	assert.Equal(t, "user declined", errs.ErrUserDeclined.Error())
}
