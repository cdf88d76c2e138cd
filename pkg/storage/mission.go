package storage

import (
	"context"

	"cosmic/pkg/domain"
)

// MissionStorage defines CRUD and relationship queries for missions. Writes
// referencing a scientist or planet that does not exist fail with
// ErrForeignKeyViolation. Lists are ordered by id ascending.
type MissionStorage interface {
	// StoreMission inserts a mission and returns the stored row.
	StoreMission(ctx context.Context, mission domain.Mission) (*domain.Mission, error)
	// UpdateMission overwrites the mission with mission.ID and returns the
	// stored row, or nil if no such mission exists.
	UpdateMission(ctx context.Context, mission domain.Mission) (*domain.Mission, error)
	// DeleteMission removes a mission and returns it, or nil if it did not exist.
	// The referenced scientist and planet are left untouched.
	DeleteMission(ctx context.Context, ID domain.MissionID) (*domain.Mission, error)
	// MissionByID returns nil when the mission does not exist.
	MissionByID(ctx context.Context, ID domain.MissionID) (*domain.Mission, error)
	// Missions returns every mission.
	Missions(ctx context.Context) ([]domain.Mission, error)
	// MissionsByPlanet returns the missions targeting the given planet.
	MissionsByPlanet(ctx context.Context, planetID domain.PlanetID) ([]domain.Mission, error)
	// MissionsByScientist returns the missions of the given scientist.
	MissionsByScientist(ctx context.Context, scientistID domain.ScientistID) ([]domain.Mission, error)
}
