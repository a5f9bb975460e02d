package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"roomservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", int64(123))

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, int64(123), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("id", -5, 1, 10, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is id, min value is 1, max value is 10 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("userName")

		assert.Equal(t, "userName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: userName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank after trim")
		err := errs.NewValueIsRequiredErrorWithCause("room", cause)

		assert.Equal(t, "value is required: room (cause: blank after trim)", err.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("order", "completed", "edit")

	assert.Equal(t, "invalid state: cannot edit order in completed state", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestStoreError(t *testing.T) {
	t.Run("nil cause yields nil", func(t *testing.T) {
		require.NoError(t, errs.NewStoreError("insert order", nil))
	})

	t.Run("wraps cause and sentinel", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewStoreError("insert order", cause)

		require.ErrorIs(t, err, errs.ErrStore)
		require.ErrorIs(t, err, cause)
		assert.Equal(t, "store failure: insert order: connection refused", err.Error())

		var storeErr *errs.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "insert order", storeErr.Op)
	})

	t.Run("plus verb prints stack", func(t *testing.T) {
		err := errs.NewStoreError("insert order", errors.New("boom"))
		assert.Contains(t, fmt.Sprintf("%+v", err), "errs_test.go")
	})
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("room")))
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("id")))
	assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("id", 0, 1, 2)))
	assert.True(t, errs.IsValidation(errors.Join(errs.NewValueIsRequiredError("room"), errors.New("x"))))
	assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("order", 1)))
	assert.False(t, errs.IsValidation(errs.NewStoreError("op", errors.New("x"))))
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
	assert.Equal(t, "store failure", errs.ErrStore.Error())
}
