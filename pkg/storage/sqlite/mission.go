package sqlite

import (
	"context"
	"fmt"

	"cosmic/pkg/domain"
	"cosmic/pkg/storage"
	"cosmic/pkg/storage/sqlrow"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// StoreMission inserts a mission and returns the stored row.
func (s *SQLite) StoreMission(ctx context.Context, mission domain.Mission) (*domain.Mission, error) {
	var row sqlrow.Mission
	row.FromDomain(mission)

	res, err := s.Builder.Insert(storage.MissionsTable).Rows(row).Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not store mission into sqlite: %w", translateError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not read mission id: %w", err)
	}

	return s.MissionByID(ctx, domain.MissionID(id))
}

// UpdateMission overwrites the mission identified by mission.ID.
func (s *SQLite) UpdateMission(ctx context.Context, mission domain.Mission) (*domain.Mission, error) {
	var row sqlrow.Mission
	row.FromDomain(mission)

	res, err := s.Builder.Update(storage.MissionsTable).
		Set(row).
		Where(goqu.C("id").Eq(int64(mission.ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not update mission in sqlite: %w", translateError(err))
	}
	updated, err := changed(res)
	if err != nil {
		return nil, fmt.Errorf("could not update mission in sqlite: %w", err)
	}
	if !updated {
		return nil, nil
	}

	return s.MissionByID(ctx, mission.ID)
}

// DeleteMission removes the mission with the given ID, returning the removed row.
func (s *SQLite) DeleteMission(ctx context.Context, id domain.MissionID) (*domain.Mission, error) {
	mission, err := s.MissionByID(ctx, id)
	if err != nil || mission == nil {
		return nil, err
	}

	if _, err := s.Builder.Delete(storage.MissionsTable).
		Where(goqu.C("id").Eq(int64(id))).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not delete mission in sqlite: %w", translateError(err))
	}

	return mission, nil
}

// MissionByID returns the mission with the given ID, or nil.
func (s *SQLite) MissionByID(ctx context.Context, id domain.MissionID) (*domain.Mission, error) {
	var row sqlrow.Mission
	found, err := s.Builder.From(storage.MissionsTable).
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
func (s *SQLite) Missions(ctx context.Context) ([]domain.Mission, error) {
	return s.missionsWhere(ctx)
}

// MissionsByPlanet returns the missions targeting the planet.
func (s *SQLite) MissionsByPlanet(ctx context.Context, planetID domain.PlanetID) ([]domain.Mission, error) {
	return s.missionsWhere(ctx, goqu.C("planet_id").Eq(int64(planetID)))
}

// MissionsByScientist returns the missions of the scientist.
func (s *SQLite) MissionsByScientist(ctx context.Context, scientistID domain.ScientistID) ([]domain.Mission, error) {
	return s.missionsWhere(ctx, goqu.C("scientist_id").Eq(int64(scientistID)))
}

func (s *SQLite) missionsWhere(ctx context.Context, where ...exp.Expression) ([]domain.Mission, error) {
	var rows []sqlrow.Mission
	if err := s.Builder.From(storage.MissionsTable).
		Where(where...).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch missions from sqlite: %w", err)
	}

	return sqlrow.MissionsToDomain(rows), nil
}
