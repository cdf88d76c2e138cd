package storage

// Constraint identifiers follow one fixed template per constraint kind so that
// names are deterministic and can be mapped back to the table and column they
// guard:
//
//	index        ix_<table>_<column>
//	unique       uq_<table>_<column>
//	check        ck_<table>_<name>
//	foreign key  fk_<table>_<column>_<referred table>
//	primary key  pk_<table>

// Table names.
const (
	PlanetsTable    = "planets"
	ScientistsTable = "scientists"
	MissionsTable   = "missions"
)

// IndexName returns the index name for column of table.
func IndexName(table, column string) string { return "ix_" + table + "_" + column }

// UniqueName returns the unique constraint name for column of table.
func UniqueName(table, column string) string { return "uq_" + table + "_" + column }

// CheckName returns the check constraint name for the named check on table.
func CheckName(table, name string) string { return "ck_" + table + "_" + name }

// ForeignKeyName returns the foreign key name for column of table referencing referredTable.
func ForeignKeyName(table, column, referredTable string) string {
	return "fk_" + table + "_" + column + "_" + referredTable
}

// PrimaryKeyName returns the primary key name of table.
func PrimaryKeyName(table string) string { return "pk_" + table }

// ForeignKeys lists the foreign keys of the schema, keyed by constraint name.
// The value is the referencing column.
func ForeignKeys() map[string]string {
	return map[string]string{
		ForeignKeyName(MissionsTable, "scientist_id", ScientistsTable): "scientist_id",
		ForeignKeyName(MissionsTable, "planet_id", PlanetsTable):       "planet_id",
	}
}

// ColumnOfConstraint resolves the column guarded by a named constraint of the
// schema. It returns "" for unknown names.
func ColumnOfConstraint(constraint string) string {
	if col, ok := ForeignKeys()[constraint]; ok {
		return col
	}

	checks := map[string]string{
		CheckName(ScientistsTable, "name_not_empty"):           "name",
		CheckName(ScientistsTable, "field_of_study_not_empty"): "field_of_study",
		CheckName(MissionsTable, "name_not_empty"):             "name",
	}

	return checks[constraint]
}
