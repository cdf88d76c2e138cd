package catalog

import (
	"context"
	"fmt"

	"cosmic/pkg/domain"
	"cosmic/pkg/logger"
	"cosmic/pkg/serrors"
	"cosmic/pkg/storage"

	"go.uber.org/zap"
)

const missionEntity = "mission"

func missionNotFound(id domain.MissionID) error {
	return serrors.With(serrors.ErrNotFound, "mission %d not found", id)
}

// CreateMission validates in, checks that both references exist and stores
// the mission.
func (c *catalog) CreateMission(ctx context.Context, in domain.MissionInput) (*domain.MissionDetail, error) {
	mission, err := domain.NewMission(in)
	if err != nil {
		return nil, err
	}

	var detail *domain.MissionDetail
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		scientist, planet, err := c.references(ctx, tx, mission)
		if err != nil {
			return err
		}

		stored, err := tx.StoreMission(ctx, mission)
		if err != nil {
			return fmt.Errorf("could not store mission: %w", err)
		}
		detail = &domain.MissionDetail{Mission: *stored, Scientist: *scientist, Planet: *planet}

		return nil
	}); err != nil {
		return nil, storageError(err, false, "could not create mission")
	}
	logger.Debug(ctx, "mission created",
		zap.Int64("mission_id", int64(detail.ID)),
		zap.Int64("scientist_id", int64(detail.ScientistID)),
		zap.Int64("planet_id", int64(detail.PlanetID)))

	return detail, nil
}

// UpdateMission applies patch to the mission with the given id.
func (c *catalog) UpdateMission(ctx context.Context,
	id domain.MissionID,
	patch domain.MissionPatch) (*domain.MissionDetail, error) {
	var detail *domain.MissionDetail
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.MissionByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get mission: %w", err)
		}
		if current == nil {
			return missionNotFound(id)
		}

		next, err := current.Apply(patch)
		if err != nil {
			return err
		}

		scientist, planet, err := c.references(ctx, tx, next)
		if err != nil {
			return err
		}

		updated, err := tx.UpdateMission(ctx, next)
		if err != nil {
			return fmt.Errorf("could not update mission: %w", err)
		}
		detail = &domain.MissionDetail{Mission: *updated, Scientist: *scientist, Planet: *planet}

		return nil
	}); err != nil {
		return nil, storageError(err, false, "could not update mission %d", id)
	}
	logger.Debug(ctx, "mission updated", zap.Int64("mission_id", int64(id)))

	return detail, nil
}

// DeleteMission removes a mission. Its scientist and planet are kept.
func (c *catalog) DeleteMission(ctx context.Context, id domain.MissionID) error {
	deleted, err := c.storage.DeleteMission(ctx, id)
	if err != nil {
		return storageError(err, true, "could not delete mission %d", id)
	}
	if deleted == nil {
		return missionNotFound(id)
	}
	logger.Debug(ctx, "mission deleted", zap.Int64("mission_id", int64(id)))

	return nil
}

// Missions lists every mission with both references resolved.
func (c *catalog) Missions(ctx context.Context) ([]domain.MissionDetail, error) {
	missions, err := c.storage.Missions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list missions: %w", err)
	}

	return c.details(ctx, c.storage, missions)
}

// Mission returns a single mission with both references resolved.
func (c *catalog) Mission(ctx context.Context, id domain.MissionID) (*domain.MissionDetail, error) {
	mission, err := c.storage.MissionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get mission: %w", err)
	}
	if mission == nil {
		return nil, missionNotFound(id)
	}

	details, err := c.details(ctx, c.storage, []domain.Mission{*mission})
	if err != nil {
		return nil, err
	}

	return &details[0], nil
}

// references loads the scientist and planet a mission points at. A missing
// reference is reported against the field that holds it.
func (c *catalog) references(ctx context.Context,
	st storage.AllStorage,
	mission domain.Mission) (*domain.Scientist, *domain.Planet, error) {
	scientist, err := st.ScientistByID(ctx, mission.ScientistID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get scientist: %w", err)
	}
	if scientist == nil {
		return nil, nil, domain.UnknownReference(missionEntity, "scientist_id", "scientist")
	}

	planet, err := st.PlanetByID(ctx, mission.PlanetID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get planet: %w", err)
	}
	if planet == nil {
		return nil, nil, domain.UnknownReference(missionEntity, "planet_id", "planet")
	}

	return scientist, planet, nil
}

// details resolves the scientist and planet of every mission with one lookup
// per table.
func (c *catalog) details(ctx context.Context,
	st storage.AllStorage,
	missions []domain.Mission) ([]domain.MissionDetail, error) {
	scientists, err := c.scientistsOf(ctx, st, missions)
	if err != nil {
		return nil, err
	}

	planetIDs := make([]domain.PlanetID, 0, len(missions))
	for _, m := range missions {
		planetIDs = append(planetIDs, m.PlanetID)
	}
	planets, err := st.PlanetsByIDs(ctx, planetIDs...)
	if err != nil {
		return nil, fmt.Errorf("could not get mission planets: %w", err)
	}
	planetsByID := make(map[domain.PlanetID]domain.Planet, len(planets))
	for _, p := range planets {
		planetsByID[p.ID] = p
	}

	details := make([]domain.MissionDetail, 0, len(missions))
	for _, m := range missions {
		scientist, ok := scientists[m.ScientistID]
		if !ok {
			return nil, serrors.With(serrors.ErrInternal, "scientist %d of mission %d is missing", m.ScientistID, m.ID)
		}
		planet, ok := planetsByID[m.PlanetID]
		if !ok {
			return nil, serrors.With(serrors.ErrInternal, "planet %d of mission %d is missing", m.PlanetID, m.ID)
		}
		details = append(details, domain.MissionDetail{Mission: m, Scientist: scientist, Planet: planet})
	}

	return details, nil
}
