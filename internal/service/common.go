package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "gearguard-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// dateLayouts are the accepted encodings for date fields in payloads
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

// parseDate parses an optional date field. nil and "" both yield nil.
func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(*value)); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperrors.NewValidationError(field, fmt.Sprintf("invalid date %q", *value))
}

// validationError turns validator failures into a ValidationError naming the first bad field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return apperrors.NewValidationError(fieldName(fe), "is required")
		case "oneof":
			return apperrors.NewValidationError(fieldName(fe), fmt.Sprintf("must be one of [%s]", fe.Param()))
		default:
			return apperrors.NewValidationError(fieldName(fe), fmt.Sprintf("failed %s validation", fe.Tag()))
		}
	}
	return apperrors.NewValidationError("", err.Error())
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// storageError maps gorm.ErrRecordNotFound to notFound and wraps everything else
func storageError(op string, err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}
	return apperrors.NewStorageError(op, err)
}
