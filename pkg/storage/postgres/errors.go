package postgres

import (
	"errors"

	"cosmic/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateError maps constraint related postgres errors to a
// storage.ConstraintError. Other errors are returned unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	var kind error
	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		kind = storage.ErrForeignKeyViolation
	case pgerrcode.UniqueViolation:
		kind = storage.ErrUniqueViolation
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		kind = storage.ErrCheckViolation
	case pgerrcode.NumericValueOutOfRange:
		kind = storage.ErrValueOutOfRange
	default:
		return err
	}

	column := pgErr.ColumnName
	if column == "" {
		column = storage.ColumnOfConstraint(pgErr.ConstraintName)
	}

	return storage.NewConstraintError(kind, pgErr.ConstraintName, column, err)
}
