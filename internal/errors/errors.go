package errors

import (
	"errors"
	"fmt"
)

// Kind values exposed to API clients alongside the error message
const (
	KindNotFound   = "not_found"
	KindValidation = "validation"
	KindStorage    = "storage"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// StorageError wraps a persistence failure. The core treats it as opaque.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying driver error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrEquipmentNotFound = &NotFoundError{Entity: "equipment"}
	ErrTeamNotFound      = &NotFoundError{Entity: "team"}
	ErrRequestNotFound   = &NotFoundError{Entity: "request"}
)

// Validation Errors
var (
	ErrSerialNumberTaken     = &ValidationError{Field: "serialNumber", Message: "serial number already exists"}
	ErrEquipmentRefMissing   = &ValidationError{Field: "equipment", Message: "referenced equipment does not exist"}
	ErrTeamRefMissing        = &ValidationError{Field: "team", Message: "referenced team does not exist"}
	ErrTeamRefInvalid        = &ValidationError{Field: "team", Message: "invalid team ID"}
	ErrInvalidPeriodFormat   = &ValidationError{Field: "month", Message: "expected YYYY-MM"}
	ErrInvalidEquipmentID    = &ValidationError{Field: "id", Message: "invalid equipment ID"}
	ErrInvalidRequestID      = &ValidationError{Field: "id", Message: "invalid request ID"}
	ErrInvalidTeamID         = &ValidationError{Field: "id", Message: "invalid team ID"}
	ErrEmptyUpdate           = &ValidationError{Message: "no fields to update"}
	ErrCompletedDateRequired = &ValidationError{Field: "completedDate", Message: "is required while repaired"}
	ErrUnsupportedAsOfValue  = &ValidationError{Field: "asOf", Message: "expected YYYY-MM-DD"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// Kind classifies an error for API responses. Anything that is neither a
// NotFoundError nor a ValidationError is reported as a storage failure.
func Kind(err error) string {
	switch {
	case IsNotFound(err):
		return KindNotFound
	case IsValidation(err):
		return KindValidation
	default:
		return KindStorage
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStorageError wraps err as a StorageError; nil stays nil
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
