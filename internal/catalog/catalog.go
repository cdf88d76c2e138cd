package catalog

import (
	"errors"

	"cosmic/pkg/serrors"
	"cosmic/pkg/storage"
)

// catalog is the concrete implementation of the Catalog interface.
type catalog struct {
	storage storage.Storage
}

// New creates a Catalog backed by the provided storage.
func New(storage storage.Storage) Catalog {
	return &catalog{storage: storage}
}

// storageError maps a failed storage write to a semantic error. Errors that
// already carry a kind are passed through. Deletes blocked by references are
// conflicts; other constraint failures are bad requests.
func storageError(err error, deleting bool, msgFmt string, args ...any) error {
	var se *serrors.Error
	if errors.As(err, &se) {
		return err
	}

	ce, ok := storage.AsConstraintError(err)
	if !ok {
		return serrors.Wrap(serrors.ErrInternal, err, msgFmt, args...)
	}

	switch {
	case errors.Is(ce.Kind, storage.ErrForeignKeyViolation) && deleting:
		return serrors.Wrap(serrors.ErrConflict, err, msgFmt+": still referenced by missions", args...)
	case errors.Is(ce.Kind, storage.ErrUniqueViolation):
		return serrors.Wrap(serrors.ErrConflict, err, msgFmt, args...)
	default:
		return serrors.Wrap(serrors.ErrBadRequest, err, msgFmt, args...)
	}
}
