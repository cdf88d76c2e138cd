package postgres

import (
	"context"
	"fmt"

	"cosmic/pkg/domain"
	"cosmic/pkg/storage"
	"cosmic/pkg/storage/sqlrow"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// StoreMission inserts a mission. Unknown scientist or planet ids are rejected
// by the foreign keys and reported as storage.ErrForeignKeyViolation.
func (p *PgSQL) StoreMission(ctx context.Context, mission domain.Mission) (*domain.Mission, error) {
	var row sqlrow.Mission
	row.FromDomain(mission)

	var stored sqlrow.Mission
	if _, err := p.Builder.Insert(storage.MissionsTable).
		Rows(row).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store mission into pg: %w", translateError(err))
	}

	return stored.ToDomain(), nil
}

// UpdateMission overwrites the mission identified by mission.ID.
func (p *PgSQL) UpdateMission(ctx context.Context, mission domain.Mission) (*domain.Mission, error) {
	var row sqlrow.Mission
	row.FromDomain(mission)

	var stored sqlrow.Mission
	found, err := p.Builder.Update(storage.MissionsTable).
		Set(row).
		Where(goqu.C("id").Eq(int64(mission.ID))).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not update mission in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}

// DeleteMission removes the mission with the given ID, returning the removed row.
func (p *PgSQL) DeleteMission(ctx context.Context, id domain.MissionID) (*domain.Mission, error) {
	var deleted sqlrow.Mission
	found, err := p.Builder.Delete(storage.MissionsTable).
		Where(goqu.C("id").Eq(int64(id))).
		Returning(goqu.Star()).
		Executor().ScanStructContext(ctx, &deleted)
	if err != nil {
		return nil, fmt.Errorf("could not delete mission in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return deleted.ToDomain(), nil
}

// MissionByID returns the mission with the given ID, or nil.
func (p *PgSQL) MissionByID(ctx context.Context, id domain.MissionID) (*domain.Mission, error) {
	var row sqlrow.Mission
	found, err := p.Builder.From(storage.MissionsTable).
		Where(goqu.C("id").Eq(int64(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch mission by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Missions returns all missions ordered by id.
func (p *PgSQL) Missions(ctx context.Context) ([]domain.Mission, error) {
	return p.missionsWhere(ctx)
}

// MissionsByPlanet returns the missions targeting the planet.
func (p *PgSQL) MissionsByPlanet(ctx context.Context, planetID domain.PlanetID) ([]domain.Mission, error) {
	return p.missionsWhere(ctx, goqu.C("planet_id").Eq(int64(planetID)))
}

// MissionsByScientist returns the missions of the scientist.
func (p *PgSQL) MissionsByScientist(ctx context.Context, scientistID domain.ScientistID) ([]domain.Mission, error) {
	return p.missionsWhere(ctx, goqu.C("scientist_id").Eq(int64(scientistID)))
}

func (p *PgSQL) missionsWhere(ctx context.Context, where ...exp.Expression) ([]domain.Mission, error) {
	var rows []sqlrow.Mission
	if err := p.Builder.From(storage.MissionsTable).
		Where(where...).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch missions from pg: %w", err)
	}

	return sqlrow.MissionsToDomain(rows), nil
}
