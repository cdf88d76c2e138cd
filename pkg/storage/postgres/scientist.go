package postgres

import (
	"context"
	"fmt"

	"cosmic/pkg/domain"
	"cosmic/pkg/storage"
	"cosmic/pkg/storage/sqlrow"

	"github.com/doug-martin/goqu/v9"
)

// StoreScientist inserts a scientist and returns the stored row.
func (p *PgSQL) StoreScientist(ctx context.Context, scientist domain.Scientist) (*domain.Scientist, error) {
	var row sqlrow.Scientist
	row.FromDomain(scientist)

	var stored sqlrow.Scientist
	if _, err := p.Builder.Insert(storage.ScientistsTable).
		Rows(row).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store scientist into pg: %w", translateError(err))
	}

	return stored.ToDomain(), nil
}

// UpdateScientist overwrites the scientist identified by scientist.ID.
func (p *PgSQL) UpdateScientist(ctx context.Context, scientist domain.Scientist) (*domain.Scientist, error) {
	var row sqlrow.Scientist
	row.FromDomain(scientist)

	var stored sqlrow.Scientist
	found, err := p.Builder.Update(storage.ScientistsTable).
		Set(row).
		Where(goqu.C("id").Eq(int64(scientist.ID))).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not update scientist in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}

// DeleteScientist removes the scientist with the given ID, returning the removed row.
func (p *PgSQL) DeleteScientist(ctx context.Context, id domain.ScientistID) (*domain.Scientist, error) {
	var deleted sqlrow.Scientist
	found, err := p.Builder.Delete(storage.ScientistsTable).
		Where(goqu.C("id").Eq(int64(id))).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &deleted)
	if err != nil {
		return nil, fmt.Errorf("could not delete scientist in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return deleted.ToDomain(), nil
}

// ScientistByID returns the scientist with the given ID, or nil.
func (p *PgSQL) ScientistByID(ctx context.Context, id domain.ScientistID) (*domain.Scientist, error) {
	var row sqlrow.Scientist
	found, err := p.Builder.From(storage.ScientistsTable).
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
func (p *PgSQL) Scientists(ctx context.Context) ([]domain.Scientist, error) {
	var rows []sqlrow.Scientist
	if err := p.Builder.From(storage.ScientistsTable).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scientists from pg: %w", err)
	}

	return sqlrow.ScientistsToDomain(rows), nil
}

// ScientistsByIDs returns the existing scientists among ids, ordered by id.
func (p *PgSQL) ScientistsByIDs(ctx context.Context, ids ...domain.ScientistID) ([]domain.Scientist, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []sqlrow.Scientist
	if err := p.Builder.From(storage.ScientistsTable).
		Where(goqu.C("id").In(sqlrow.Int64s(ids))).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scientists by ids from pg: %w", err)
	}

	return sqlrow.ScientistsToDomain(rows), nil
}

// ScientistsByPlanet returns the distinct scientists with missions to the planet.
func (p *PgSQL) ScientistsByPlanet(ctx context.Context, planetID domain.PlanetID) ([]domain.Scientist, error) {
	visitors := p.Builder.From(storage.MissionsTable).
		Select(goqu.C("scientist_id")).
		Where(goqu.C("planet_id").Eq(int64(planetID)))

	var rows []sqlrow.Scientist
	if err := p.Builder.From(storage.ScientistsTable).
		Where(goqu.C("id").In(visitors)).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scientists by planet from pg: %w", err)
	}

	return sqlrow.ScientistsToDomain(rows), nil
}
