package sqlite

import (
	"context"
	"fmt"

	"cosmic/pkg/domain"
	"cosmic/pkg/storage"
	"cosmic/pkg/storage/sqlrow"

	"github.com/doug-martin/goqu/v9"
)

// StorePlanet inserts a planet and returns the stored row.
func (s *SQLite) StorePlanet(ctx context.Context, planet domain.Planet) (*domain.Planet, error) {
	var row sqlrow.Planet
	row.FromDomain(planet)

	res, err := s.Builder.Insert(storage.PlanetsTable).Rows(row).Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not store planet into sqlite: %w", translateError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not read planet id: %w", err)
	}

	return s.PlanetByID(ctx, domain.PlanetID(id))
}

// UpdatePlanet overwrites the planet identified by planet.ID.
func (s *SQLite) UpdatePlanet(ctx context.Context, planet domain.Planet) (*domain.Planet, error) {
	var row sqlrow.Planet
	row.FromDomain(planet)

	res, err := s.Builder.Update(storage.PlanetsTable).
		Set(row).
		Where(goqu.C("id").Eq(int64(planet.ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update planet in sqlite: %w", translateError(err))
	}
	updated, err := changed(res)
	if err != nil {
		return nil, fmt.Errorf("could not update planet in sqlite: %w", err)
	}
	if !updated {
		return nil, nil
	}

	return s.PlanetByID(ctx, planet.ID)
}

// DeletePlanet removes the planet with the given ID, returning the removed row.
func (s *SQLite) DeletePlanet(ctx context.Context, id domain.PlanetID) (*domain.Planet, error) {
	planet, err := s.PlanetByID(ctx, id)
	if err != nil || planet == nil {
		return nil, err
	}

	if _, err := s.Builder.Delete(storage.PlanetsTable).
		Where(goqu.C("id").Eq(int64(id))).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not delete planet in sqlite: %w", translateError(err))
	}

	return planet, nil
}

// PlanetByID returns the planet with the given ID, or nil.
func (s *SQLite) PlanetByID(ctx context.Context, id domain.PlanetID) (*domain.Planet, error) {
	var row sqlrow.Planet
	found, err := s.Builder.From(storage.PlanetsTable).
		Where(goqu.C("id").Eq(int64(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch planet by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Planets returns all planets ordered by id.
func (s *SQLite) Planets(ctx context.Context) ([]domain.Planet, error) {
	var rows []sqlrow.Planet
	if err := s.Builder.From(storage.PlanetsTable).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch planets from sqlite: %w", err)
	}

	return sqlrow.PlanetsToDomain(rows), nil
}

// PlanetsByIDs returns the existing planets among ids, ordered by id.
func (s *SQLite) PlanetsByIDs(ctx context.Context, ids ...domain.PlanetID) ([]domain.Planet, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []sqlrow.Planet
	if err := s.Builder.From(storage.PlanetsTable).
		Where(goqu.C("id").In(sqlrow.Int64s(ids))).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch planets by ids from sqlite: %w", err)
	}

	return sqlrow.PlanetsToDomain(rows), nil
}

// PlanetsByScientist returns the distinct planets visited by the scientist's missions.
func (s *SQLite) PlanetsByScientist(ctx context.Context, scientistID domain.ScientistID) ([]domain.Planet, error) {
	visited := s.Builder.From(storage.MissionsTable).
		Select(goqu.C("planet_id")).
		Where(goqu.C("scientist_id").Eq(int64(scientistID)))

	var rows []sqlrow.Planet
	if err := s.Builder.From(storage.PlanetsTable).
		Where(goqu.C("id").In(visited)).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch planets by scientist from sqlite: %w", err)
	}

	return sqlrow.PlanetsToDomain(rows), nil
}
