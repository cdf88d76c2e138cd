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

func scientistNotFound(id domain.ScientistID) error {
	return serrors.With(serrors.ErrNotFound, "scientist %d not found", id)
}

// CreateScientist validates in and stores the scientist.
func (c *catalog) CreateScientist(ctx context.Context, in domain.ScientistInput) (*domain.Scientist, error) {
	scientist, err := domain.NewScientist(in)
	if err != nil {
		return nil, err
	}

	stored, err := c.storage.StoreScientist(ctx, scientist)
	if err != nil {
		return nil, storageError(err, false, "could not store scientist")
	}
	logger.Debug(ctx, "scientist created", zap.Int64("scientist_id", int64(stored.ID)))

	return stored, nil
}

// UpdateScientist applies patch to the scientist with the given id. An invalid
// patch leaves the stored scientist untouched.
func (c *catalog) UpdateScientist(ctx context.Context,
	id domain.ScientistID,
	patch domain.ScientistPatch) (*domain.Scientist, error) {
	var updated *domain.Scientist
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.ScientistByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get scientist: %w", err)
		}
		if current == nil {
			return scientistNotFound(id)
		}

		next, err := current.Apply(patch)
		if err != nil {
			return err
		}

		updated, err = tx.UpdateScientist(ctx, next)
		if err != nil {
			return fmt.Errorf("could not update scientist: %w", err)
		}

		return nil
	}); err != nil {
		return nil, storageError(err, false, "could not update scientist %d", id)
	}
	logger.Debug(ctx, "scientist updated", zap.Int64("scientist_id", int64(id)))

	return updated, nil
}

// DeleteScientist removes a scientist. Scientists with missions are kept and
// a conflict is returned.
func (c *catalog) DeleteScientist(ctx context.Context, id domain.ScientistID) error {
	deleted, err := c.storage.DeleteScientist(ctx, id)
	if err != nil {
		return storageError(err, true, "could not delete scientist %d", id)
	}
	if deleted == nil {
		return scientistNotFound(id)
	}
	logger.Debug(ctx, "scientist deleted", zap.Int64("scientist_id", int64(id)))

	return nil
}

// Scientists lists every scientist.
func (c *catalog) Scientists(ctx context.Context) ([]domain.Scientist, error) {
	scientists, err := c.storage.Scientists(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list scientists: %w", err)
	}

	return scientists, nil
}

// Scientist returns a single scientist.
func (c *catalog) Scientist(ctx context.Context, id domain.ScientistID) (*domain.Scientist, error) {
	scientist, err := c.storage.ScientistByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scientist: %w", err)
	}
	if scientist == nil {
		return nil, scientistNotFound(id)
	}

	return scientist, nil
}

// ScientistPlanets returns the distinct planets the scientist has missions to.
func (c *catalog) ScientistPlanets(ctx context.Context, id domain.ScientistID) ([]domain.Planet, error) {
	if _, err := c.Scientist(ctx, id); err != nil {
		return nil, err
	}

	planets, err := c.storage.PlanetsByScientist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scientist planets: %w", err)
	}

	return planets, nil
}

// ScientistMissions returns the scientist's missions with both references resolved.
func (c *catalog) ScientistMissions(ctx context.Context, id domain.ScientistID) ([]domain.MissionDetail, error) {
	if _, err := c.Scientist(ctx, id); err != nil {
		return nil, err
	}

	missions, err := c.storage.MissionsByScientist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get scientist missions: %w", err)
	}

	return c.details(ctx, c.storage, missions)
}

// scientistsOf loads the scientists referenced by missions, keyed by id.
func (c *catalog) scientistsOf(ctx context.Context,
	st storage.AllStorage,
	missions []domain.Mission) (map[domain.ScientistID]domain.Scientist, error) {
	ids := make([]domain.ScientistID, 0, len(missions))
	for _, m := range missions {
		ids = append(ids, m.ScientistID)
	}

	scientists, err := st.ScientistsByIDs(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get mission scientists: %w", err)
	}

	byID := make(map[domain.ScientistID]domain.Scientist, len(scientists))
	for _, s := range scientists {
		byID[s.ID] = s
	}

	return byID, nil
}
