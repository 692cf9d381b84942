package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "equipment"}
		assert.Equal(t, "equipment not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrEquipmentNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading: %w", ErrRequestNotFound)
		assert.True(t, errors.Is(wrapped, ErrRequestNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrEquipmentNotFound))
		assert.False(t, IsNotFound(ErrSerialNumberTaken))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "serialNumber", Message: "serial number already exists"}
		assert.Equal(t, "validation error: serialNumber - serial number already exists", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "no fields to update"}
		assert.Equal(t, "validation error: no fields to update", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("type", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestStorageError(t *testing.T) {
	t.Run("Wraps and unwraps the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewStorageError("update equipment", cause)
		assert.Equal(t, "update equipment: connection refused", err.Error())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, IsStorage(err))
	})

	t.Run("Nil cause stays nil", func(t *testing.T) {
		assert.NoError(t, NewStorageError("noop", nil))
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindNotFound, Kind(ErrEquipmentNotFound))
	assert.Equal(t, KindNotFound, Kind(fmt.Errorf("wrapped: %w", ErrTeamNotFound)))
	assert.Equal(t, KindValidation, Kind(ErrEquipmentRefMissing))
	assert.Equal(t, KindStorage, Kind(NewStorageError("save", errors.New("boom"))))
	assert.Equal(t, KindStorage, Kind(errors.New("anything else")))
}
