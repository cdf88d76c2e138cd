package sqlite

import (
	"errors"
	"strings"

	"cosmic/pkg/storage"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// translateError maps SQLite constraint failures to a storage.ConstraintError.
// SQLite does not name the violated foreign key, so Constraint and Column are
// only filled for named CHECK constraints.
func translateError(err error) error {
	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) {
		return err
	}

	code := liteErr.Code()
	if code&0xff != sqlite3.SQLITE_CONSTRAINT {
		return err
	}

	msg := liteErr.Error()
	var kind error
	switch {
	case code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY || strings.Contains(msg, "FOREIGN KEY constraint failed"):
		kind = storage.ErrForeignKeyViolation
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY ||
		strings.Contains(msg, "UNIQUE constraint failed"):
		kind = storage.ErrUniqueViolation
	case code == sqlite3.SQLITE_CONSTRAINT_CHECK || code == sqlite3.SQLITE_CONSTRAINT_NOTNULL ||
		strings.Contains(msg, "CHECK constraint failed") || strings.Contains(msg, "NOT NULL constraint failed"):
		kind = storage.ErrCheckViolation
	default:
		return err
	}

	var constraint string
	if _, after, ok := strings.Cut(msg, "CHECK constraint failed: "); ok {
		constraint = strings.TrimSpace(strings.SplitN(after, " ", 2)[0])
	}

	return storage.NewConstraintError(kind, constraint, storage.ColumnOfConstraint(constraint), err)
}
