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

func planetNotFound(id domain.PlanetID) error {
	return serrors.With(serrors.ErrNotFound, "planet %d not found", id)
}

// CreatePlanet stores a new planet. Planets carry no required fields.
func (c *catalog) CreatePlanet(ctx context.Context, in domain.PlanetInput) (*domain.Planet, error) {
	planet, err := c.storage.StorePlanet(ctx, domain.NewPlanet(in))
	if err != nil {
		return nil, storageError(err, false, "could not store planet")
	}
	logger.Debug(ctx, "planet created", zap.Int64("planet_id", int64(planet.ID)))

	return planet, nil
}

// UpdatePlanet applies patch to the planet with the given id.
func (c *catalog) UpdatePlanet(ctx context.Context, id domain.PlanetID, patch domain.PlanetPatch) (*domain.Planet, error) {
	var updated *domain.Planet
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.PlanetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get planet: %w", err)
		}
		if current == nil {
			return planetNotFound(id)
		}

		updated, err = tx.UpdatePlanet(ctx, current.Apply(patch))
		if err != nil {
			return fmt.Errorf("could not update planet: %w", err)
		}

		return nil
	}); err != nil {
		return nil, storageError(err, false, "could not update planet %d", id)
	}
	logger.Debug(ctx, "planet updated", zap.Int64("planet_id", int64(id)))

	return updated, nil
}

// DeletePlanet removes a planet. Planets targeted by missions are kept and a
// conflict is returned.
func (c *catalog) DeletePlanet(ctx context.Context, id domain.PlanetID) error {
	deleted, err := c.storage.DeletePlanet(ctx, id)
	if err != nil {
		return storageError(err, true, "could not delete planet %d", id)
	}
	if deleted == nil {
		return planetNotFound(id)
	}
	logger.Debug(ctx, "planet deleted", zap.Int64("planet_id", int64(id)))

	return nil
}

// Planets lists every planet.
func (c *catalog) Planets(ctx context.Context) ([]domain.Planet, error) {
	planets, err := c.storage.Planets(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list planets: %w", err)
	}

	return planets, nil
}

// Planet returns the planet with its missions, each mission carrying its
// scientist.
func (c *catalog) Planet(ctx context.Context, id domain.PlanetID) (*domain.PlanetDetail, error) {
	planet, err := c.storage.PlanetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get planet: %w", err)
	}
	if planet == nil {
		return nil, planetNotFound(id)
	}

	missions, err := c.storage.MissionsByPlanet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get planet missions: %w", err)
	}

	scientists, err := c.scientistsOf(ctx, c.storage, missions)
	if err != nil {
		return nil, err
	}

	detail := &domain.PlanetDetail{
		Planet:   *planet,
		Missions: make([]domain.PlanetMission, 0, len(missions)),
	}
	for _, m := range missions {
		scientist, ok := scientists[m.ScientistID]
		if !ok {
			return nil, serrors.With(serrors.ErrInternal, "scientist %d of mission %d is missing", m.ScientistID, m.ID)
		}
		detail.Missions = append(detail.Missions, domain.PlanetMission{Mission: m, Scientist: scientist})
	}

	return detail, nil
}

// PlanetScientists returns the distinct scientists with missions to the planet.
func (c *catalog) PlanetScientists(ctx context.Context, id domain.PlanetID) ([]domain.Scientist, error) {
	planet, err := c.storage.PlanetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get planet: %w", err)
	}
	if planet == nil {
		return nil, planetNotFound(id)
	}

	scientists, err := c.storage.ScientistsByPlanet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get planet scientists: %w", err)
	}

	return scientists, nil
}
