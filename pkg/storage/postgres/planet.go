package postgres

import (
	"context"
	"fmt"

	"cosmic/pkg/domain"
	"cosmic/pkg/storage"
	"cosmic/pkg/storage/sqlrow"

	"github.com/doug-martin/goqu/v9"
)

// StorePlanet inserts a planet and returns the stored row.
func (p *PgSQL) StorePlanet(ctx context.Context, planet domain.Planet) (*domain.Planet, error) {
	var row sqlrow.Planet
	row.FromDomain(planet)

	var stored sqlrow.Planet
	if _, err := p.Builder.Insert(storage.PlanetsTable).
		Rows(row).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store planet into pg: %w", translateError(err))
	}

	return stored.ToDomain(), nil
}

// UpdatePlanet overwrites the planet identified by planet.ID.
func (p *PgSQL) UpdatePlanet(ctx context.Context, planet domain.Planet) (*domain.Planet, error) {
	var row sqlrow.Planet
	row.FromDomain(planet)

	var stored sqlrow.Planet
	found, err := p.Builder.Update(storage.PlanetsTable).
		Set(row).
		Where(goqu.C("id").Eq(int64(planet.ID))).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not update planet in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}

// DeletePlanet removes the planet with the given ID, returning the removed row.
func (p *PgSQL) DeletePlanet(ctx context.Context, id domain.PlanetID) (*domain.Planet, error) {
	var deleted sqlrow.Planet
	found, err := p.Builder.Delete(storage.PlanetsTable).
		Where(goqu.C("id").Eq(int64(id))).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &deleted)
	if err != nil {
		return nil, fmt.Errorf("could not delete planet in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return deleted.ToDomain(), nil
}

// PlanetByID returns the planet with the given ID, or nil.
func (p *PgSQL) PlanetByID(ctx context.Context, id domain.PlanetID) (*domain.Planet, error) {
	var row sqlrow.Planet
	found, err := p.Builder.From(storage.PlanetsTable).
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
func (p *PgSQL) Planets(ctx context.Context) ([]domain.Planet, error) {
	var rows []sqlrow.Planet
	if err := p.Builder.From(storage.PlanetsTable).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch planets from pg: %w", err)
	}

	return sqlrow.PlanetsToDomain(rows), nil
}

// PlanetsByIDs returns the existing planets among ids, ordered by id.
func (p *PgSQL) PlanetsByIDs(ctx context.Context, ids ...domain.PlanetID) ([]domain.Planet, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []sqlrow.Planet
	if err := p.Builder.From(storage.PlanetsTable).
		Where(goqu.C("id").In(sqlrow.Int64s(ids))).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch planets by ids from pg: %w", err)
	}

	return sqlrow.PlanetsToDomain(rows), nil
}

// PlanetsByScientist returns the distinct planets visited by the scientist's missions.
func (p *PgSQL) PlanetsByScientist(ctx context.Context, scientistID domain.ScientistID) ([]domain.Planet, error) {
	visited := p.Builder.From(storage.MissionsTable).
		Select(goqu.C("planet_id")).
		Where(goqu.C("scientist_id").Eq(int64(scientistID)))

	var rows []sqlrow.Planet
	if err := p.Builder.From(storage.PlanetsTable).
		Where(goqu.C("id").In(visited)).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch planets by scientist from pg: %w", err)
	}

	return sqlrow.PlanetsToDomain(rows), nil
}
