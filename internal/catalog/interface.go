// Package catalog is the service layer over planets, scientists and missions.
// It validates input before touching storage, resolves relationships into the
// detail views used for serialization and maps storage failures to serrors
// kinds.
package catalog

import (
	"context"

	"cosmic/pkg/domain"
)

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	CreatePlanet(ctx context.Context, in domain.PlanetInput) (*domain.Planet, error)
	UpdatePlanet(ctx context.Context, id domain.PlanetID, patch domain.PlanetPatch) (*domain.Planet, error)
	DeletePlanet(ctx context.Context, id domain.PlanetID) error
	Planets(ctx context.Context) ([]domain.Planet, error)
	Planet(ctx context.Context, id domain.PlanetID) (*domain.PlanetDetail, error)
	PlanetScientists(ctx context.Context, id domain.PlanetID) ([]domain.Scientist, error)

	CreateScientist(ctx context.Context, in domain.ScientistInput) (*domain.Scientist, error)
	UpdateScientist(ctx context.Context, id domain.ScientistID, patch domain.ScientistPatch) (*domain.Scientist, error)
	DeleteScientist(ctx context.Context, id domain.ScientistID) error
	Scientists(ctx context.Context) ([]domain.Scientist, error)
	Scientist(ctx context.Context, id domain.ScientistID) (*domain.Scientist, error)
	ScientistPlanets(ctx context.Context, id domain.ScientistID) ([]domain.Planet, error)
	ScientistMissions(ctx context.Context, id domain.ScientistID) ([]domain.MissionDetail, error)

	CreateMission(ctx context.Context, in domain.MissionInput) (*domain.MissionDetail, error)
	UpdateMission(ctx context.Context, id domain.MissionID, patch domain.MissionPatch) (*domain.MissionDetail, error)
	DeleteMission(ctx context.Context, id domain.MissionID) error
	Missions(ctx context.Context) ([]domain.MissionDetail, error)
	Mission(ctx context.Context, id domain.MissionID) (*domain.MissionDetail, error)
}
