package storage

import (
	"context"

	"cosmic/pkg/domain"
)

// ScientistStorage defines CRUD and relationship queries for scientists.
// Lists are ordered by id ascending.
type ScientistStorage interface {
	// StoreScientist inserts a scientist and returns the stored row.
	StoreScientist(ctx context.Context, scientist domain.Scientist) (*domain.Scientist, error)
	// UpdateScientist overwrites the scientist with scientist.ID and returns the
	// stored row, or nil if no such scientist exists.
	UpdateScientist(ctx context.Context, scientist domain.Scientist) (*domain.Scientist, error)
	// DeleteScientist removes a scientist and returns it, or nil if it did not
	// exist. Scientists with missions are kept and ErrForeignKeyViolation is returned.
	DeleteScientist(ctx context.Context, ID domain.ScientistID) (*domain.Scientist, error)
	// ScientistByID returns nil when the scientist does not exist.
	ScientistByID(ctx context.Context, ID domain.ScientistID) (*domain.Scientist, error)
	// Scientists returns every scientist.
	Scientists(ctx context.Context) ([]domain.Scientist, error)
	// ScientistsByIDs returns the scientists among IDs that exist.
	ScientistsByIDs(ctx context.Context, IDs ...domain.ScientistID) ([]domain.Scientist, error)
	// ScientistsByPlanet returns the distinct scientists with missions to the
	// given planet.
	ScientistsByPlanet(ctx context.Context, planetID domain.PlanetID) ([]domain.Scientist, error)
}
