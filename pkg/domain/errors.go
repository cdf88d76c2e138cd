package domain

import (
	"errors"

	"cosmic/pkg/serrors"
)

// ErrMissingRequiredField is matched (errors.Is) by every validation error
// caused by an empty or unset required field.
var ErrMissingRequiredField = errors.New("missing required field")

// ErrUnknownReference is matched by errors raised when a mission points at a
// scientist or planet that does not exist.
var ErrUnknownReference = errors.New("unknown reference")

// FieldError describes a single field that failed validation.
type FieldError struct {
	// Entity is the entity kind the field belongs to, e.g. "scientist".
	Entity string
	// Field is the serialized field name, e.g. "field_of_study".
	Field string
	// Message is a human-readable reason.
	Message string

	cause error
}

func (e *FieldError) Error() string {
	return e.Entity + "." + e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match ErrMissingRequiredField or ErrUnknownReference.
func (e *FieldError) Unwrap() error {
	if e.cause == nil {
		return ErrMissingRequiredField
	}

	return e.cause
}

func missingField(entity, field string) error {
	return serrors.Wrap(serrors.ErrBadRequest, &FieldError{
		Entity:  entity,
		Field:   field,
		Message: field + " must be provided",
	}, "invalid %s", entity)
}

// UnknownReference reports that field of entity names a referred entity that
// does not exist.
func UnknownReference(entity, field, referred string) error {
	return serrors.Wrap(serrors.ErrBadRequest, &FieldError{
		Entity:  entity,
		Field:   field,
		Message: field + " does not reference an existing " + referred,
		cause:   ErrUnknownReference,
	}, "invalid %s", entity)
}

// AsFieldError extracts the FieldError from err, if any.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}

	return nil, false
}
