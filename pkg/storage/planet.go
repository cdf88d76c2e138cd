package storage

import (
	"context"

	"cosmic/pkg/domain"
)

// PlanetStorage defines CRUD and relationship queries for planets. Lists are
// ordered by id ascending.
type PlanetStorage interface {
	// StorePlanet inserts a planet and returns the stored row including its
	// generated ID. The ID of the argument is ignored.
	StorePlanet(ctx context.Context, planet domain.Planet) (*domain.Planet, error)
	// UpdatePlanet overwrites all columns of the planet with planet.ID and
	// returns the stored row, or nil if no such planet exists.
	UpdatePlanet(ctx context.Context, planet domain.Planet) (*domain.Planet, error)
	// DeletePlanet removes a planet and returns it, or nil if it did not exist.
	// Planets still referenced by missions are not deleted; ErrForeignKeyViolation
	// is returned instead.
	DeletePlanet(ctx context.Context, ID domain.PlanetID) (*domain.Planet, error)
	// PlanetByID returns nil when the planet does not exist.
	PlanetByID(ctx context.Context, ID domain.PlanetID) (*domain.Planet, error)
	// Planets returns every planet.
	Planets(ctx context.Context) ([]domain.Planet, error)
	// PlanetsByIDs returns the planets among IDs that exist.
	PlanetsByIDs(ctx context.Context, IDs ...domain.PlanetID) ([]domain.Planet, error)
	// PlanetsByScientist returns the distinct planets targeted by missions of
	// the given scientist.
	PlanetsByScientist(ctx context.Context, scientistID domain.ScientistID) ([]domain.Planet, error)
}
