package sqlite

import (
	"context"
	"fmt"

	"cosmic/pkg/domain"
	"cosmic/pkg/storage"
	"cosmic/pkg/storage/sqlrow"

	"github.com/doug-martin/goqu/v9"
)

// StoreScientist inserts a scientist and returns the stored row.
func (s *SQLite) StoreScientist(ctx context.Context, scientist domain.Scientist) (*domain.Scientist, error) {
	var row sqlrow.Scientist
	row.FromDomain(scientist)

	res, err := s.Builder.Insert(storage.ScientistsTable).Rows(row).Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not store scientist into sqlite: %w", translateError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not read scientist id: %w", err)
	}

	return s.ScientistByID(ctx, domain.ScientistID(id))
}

// UpdateScientist overwrites the scientist identified by scientist.ID.
func (s *SQLite) UpdateScientist(ctx context.Context, scientist domain.Scientist) (*domain.Scientist, error) {
	var row sqlrow.Scientist
	row.FromDomain(scientist)

	res, err := s.Builder.Update(storage.ScientistsTable).
		Set(row).
		Where(goqu.C("id").Eq(int64(scientist.ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update scientist in sqlite: %w", translateError(err))
	}
	updated, err := changed(res)
	if err != nil {
		return nil, fmt.Errorf("could not update scientist in sqlite: %w", err)
	}
	if !updated {
		return nil, nil
	}

	return s.ScientistByID(ctx, scientist.ID)
}

// DeleteScientist removes the scientist with the given ID, returning the removed row.
func (s *SQLite) DeleteScientist(ctx context.Context, id domain.ScientistID) (*domain.Scientist, error) {
	scientist, err := s.ScientistByID(ctx, id)
	if err != nil || scientist == nil {
		return nil, err
	}

	if _, err := s.Builder.Delete(storage.ScientistsTable).
		Where(goqu.C("id").Eq(int64(id))).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not delete scientist in sqlite: %w", translateError(err))
	}

	return scientist, nil
}

// ScientistByID returns the scientist with the given ID, or nil.
func (s *SQLite) ScientistByID(ctx context.Context, id domain.ScientistID) (*domain.Scientist, error) {
	var row sqlrow.Scientist
	found, err := s.Builder.From(storage.ScientistsTable).
		Where(goqu.C("id").Eq(int64(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scientist by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Scientists returns all scientists ordered by id.
func (s *SQLite) Scientists(ctx context.Context) ([]domain.Scientist, error) {
	var rows []sqlrow.Scientist
	if err := s.Builder.From(storage.ScientistsTable).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scientists from sqlite: %w", err)
	}

	return sqlrow.ScientistsToDomain(rows), nil
}

// ScientistsByIDs returns the existing scientists among ids, ordered by id.
func (s *SQLite) ScientistsByIDs(ctx context.Context, ids ...domain.ScientistID) ([]domain.Scientist, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []sqlrow.Scientist
	if err := s.Builder.From(storage.ScientistsTable).
		Where(goqu.C("id").In(sqlrow.Int64s(ids))).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scientists by ids from sqlite: %w", err)
	}

	return sqlrow.ScientistsToDomain(rows), nil
}

// ScientistsByPlanet returns the distinct scientists with missions to the planet.
func (s *SQLite) ScientistsByPlanet(ctx context.Context, planetID domain.PlanetID) ([]domain.Scientist, error) {
	visitors := s.Builder.From(storage.MissionsTable).
		Select(goqu.C("scientist_id")).
		Where(goqu.C("planet_id").Eq(int64(planetID)))

	var rows []sqlrow.Scientist
	if err := s.Builder.From(storage.ScientistsTable).
		Where(goqu.C("id").In(visitors)).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scientists by planet from sqlite: %w", err)
	}

	return sqlrow.ScientistsToDomain(rows), nil
}
