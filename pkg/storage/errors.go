package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")

	// ErrForeignKeyViolation is returned when a write references a row that does
	// not exist, or a delete would leave rows referencing a removed one.
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrUniqueViolation is returned when a write collides with a unique or
	// primary key constraint.
	ErrUniqueViolation = errors.New("unique violation")
	// ErrCheckViolation is returned when a write violates a check or not-null constraint.
	ErrCheckViolation = errors.New("check violation")
	// ErrValueOutOfRange is returned when a value does not fit the column type.
	ErrValueOutOfRange = errors.New("value out of range")
)

// ConstraintError is returned by backends when the database rejects a write.
// errors.Is matches both Kind and the driver error.
type ConstraintError struct {
	// Kind is one of ErrForeignKeyViolation, ErrUniqueViolation,
	// ErrCheckViolation or ErrValueOutOfRange.
	Kind error
	// Constraint is the violated constraint name when the backend reports it.
	Constraint string
	// Column is the offending column when it can be resolved, e.g. "planet_id".
	Column string

	err error
}

// NewConstraintError wraps a driver error.
func NewConstraintError(kind error, constraint, column string, err error) *ConstraintError {
	return &ConstraintError{Kind: kind, Constraint: constraint, Column: column, err: err}
}

func (e *ConstraintError) Error() string {
	msg := e.Kind.Error()
	if e.Constraint != "" {
		msg += " (" + e.Constraint + ")"
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}

	return msg
}

// Unwrap exposes both the kind sentinel and the driver error.
func (e *ConstraintError) Unwrap() []error {
	if e.err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.err}
}

// AsConstraintError extracts the ConstraintError from err, if any.
func AsConstraintError(err error) (*ConstraintError, bool) {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce, true
	}

	return nil, false
}
