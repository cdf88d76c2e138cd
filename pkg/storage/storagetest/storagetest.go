// Package storagetest holds behavior checks shared by every storage backend.
// Backends call Run from their own tests with a constructor for a freshly
// migrated, empty database.
package storagetest

import (
	"context"
	"testing"

	"cosmic/pkg/domain"
	"cosmic/pkg/storage"

	"github.com/stretchr/testify/require"
)

// Opener returns an empty, migrated storage. Cleanup is registered on t.
type Opener func(t *testing.T) storage.Storage

func ptr[T any](v T) *T { return &v }

// Run executes the shared suite against the backend returned by open.
func Run(t *testing.T, open Opener) {
	t.Helper()

	t.Run("Planets", func(t *testing.T) { testPlanets(t, open(t)) })
	t.Run("LargeDistance", func(t *testing.T) { testLargeDistance(t, open(t)) })
	t.Run("Scientists", func(t *testing.T) { testScientists(t, open(t)) })
	t.Run("Missions", func(t *testing.T) { testMissions(t, open(t)) })
	t.Run("Relationships", func(t *testing.T) { testRelationships(t, open(t)) })
	t.Run("DeleteRestrict", func(t *testing.T) { testDeleteRestrict(t, open(t)) })
	t.Run("UnknownReferences", func(t *testing.T) { testUnknownReferences(t, open(t)) })
	t.Run("CheckConstraints", func(t *testing.T) { testCheckConstraints(t, open(t)) })
	t.Run("WithTx", func(t *testing.T) { testWithTx(t, open(t)) })
}

// Seed stores one planet, one scientist and one mission linking them.
func Seed(t *testing.T, s storage.AllStorage) (*domain.Planet, *domain.Scientist, *domain.Mission) {
	t.Helper()
	ctx := context.Background()

	planet, err := s.StorePlanet(ctx, domain.Planet{Name: ptr("Mars"), DistanceFromEarth: ptr(int64(225))})
	require.NoError(t, err)
	scientist, err := s.StoreScientist(ctx, domain.Scientist{Name: "Ada", FieldOfStudy: "Astro"})
	require.NoError(t, err)
	mission, err := s.StoreMission(ctx, domain.Mission{Name: "M1", ScientistID: scientist.ID, PlanetID: planet.ID})
	require.NoError(t, err)

	return planet, scientist, mission
}

func testPlanets(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	empty, err := s.StorePlanet(ctx, domain.Planet{})
	require.NoError(t, err)
	require.NotZero(t, empty.ID)
	require.Nil(t, empty.Name)
	require.Nil(t, empty.DistanceFromEarth)
	require.Nil(t, empty.NearestStar)

	mars, err := s.StorePlanet(ctx, domain.Planet{
		Name: ptr("Mars"), DistanceFromEarth: ptr(int64(225)), NearestStar: ptr("Sun"),
	})
	require.NoError(t, err)
	require.Greater(t, mars.ID, empty.ID)
	require.Equal(t, "Mars", *mars.Name)
	require.Equal(t, int64(225), *mars.DistanceFromEarth)

	got, err := s.PlanetByID(ctx, mars.ID)
	require.NoError(t, err)
	require.Equal(t, mars, got)

	missing, err := s.PlanetByID(ctx, mars.ID+100)
	require.NoError(t, err)
	require.Nil(t, missing)

	mars.NearestStar = nil
	mars.Name = ptr("Red Planet")
	updated, err := s.UpdatePlanet(ctx, *mars)
	require.NoError(t, err)
	require.Equal(t, "Red Planet", *updated.Name)
	require.Nil(t, updated.NearestStar)

	updated, err = s.UpdatePlanet(ctx, domain.Planet{ID: mars.ID + 100})
	require.NoError(t, err)
	require.Nil(t, updated)

	all, err := s.Planets(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, empty.ID, all[0].ID)

	byIDs, err := s.PlanetsByIDs(ctx, mars.ID, mars.ID+100)
	require.NoError(t, err)
	require.Len(t, byIDs, 1)

	byIDs, err = s.PlanetsByIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, byIDs)

	deleted, err := s.DeletePlanet(ctx, empty.ID)
	require.NoError(t, err)
	require.Equal(t, empty.ID, deleted.ID)

	deleted, err = s.DeletePlanet(ctx, empty.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

// Distances past the int32 range must survive a round trip on every backend.
func testLargeDistance(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	const proximaB = int64(40_208_000_000_000)

	planet, err := s.StorePlanet(ctx, domain.Planet{Name: ptr("Proxima Centauri b"), DistanceFromEarth: ptr(proximaB)})
	require.NoError(t, err)
	require.Equal(t, proximaB, *planet.DistanceFromEarth)

	got, err := s.PlanetByID(ctx, planet.ID)
	require.NoError(t, err)
	require.Equal(t, proximaB, *got.DistanceFromEarth)

	got.DistanceFromEarth = ptr(int64(1<<62 + 7))
	updated, err := s.UpdatePlanet(ctx, *got)
	require.NoError(t, err)
	require.Equal(t, int64(1<<62+7), *updated.DistanceFromEarth)
}

func testScientists(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	ada, err := s.StoreScientist(ctx, domain.Scientist{Name: "Ada", FieldOfStudy: "Astro"})
	require.NoError(t, err)
	require.NotZero(t, ada.ID)

	got, err := s.ScientistByID(ctx, ada.ID)
	require.NoError(t, err)
	require.Equal(t, ada, got)

	ada.FieldOfStudy = "Geology"
	updated, err := s.UpdateScientist(ctx, *ada)
	require.NoError(t, err)
	require.Equal(t, "Geology", updated.FieldOfStudy)

	updated, err = s.UpdateScientist(ctx, domain.Scientist{ID: ada.ID + 1, Name: "x", FieldOfStudy: "y"})
	require.NoError(t, err)
	require.Nil(t, updated)

	all, err := s.Scientists(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	byIDs, err := s.ScientistsByIDs(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, byIDs, 1)

	deleted, err := s.DeleteScientist(ctx, ada.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", deleted.Name)

	got, err = s.ScientistByID(ctx, ada.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func testMissions(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	planet, scientist, m1 := Seed(t, s)

	require.Equal(t, planet.ID, m1.PlanetID)
	require.Equal(t, scientist.ID, m1.ScientistID)

	m1.Name = "M1b"
	updated, err := s.UpdateMission(ctx, *m1)
	require.NoError(t, err)
	require.Equal(t, "M1b", updated.Name)

	all, err := s.Missions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	deleted, err := s.DeleteMission(ctx, m1.ID)
	require.NoError(t, err)
	require.Equal(t, m1.ID, deleted.ID)

	// the endpoints of a removed mission survive
	p, err := s.PlanetByID(ctx, planet.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	sc, err := s.ScientistByID(ctx, scientist.ID)
	require.NoError(t, err)
	require.NotNil(t, sc)

	deleted, err = s.DeleteMission(ctx, m1.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func testRelationships(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	mars, ada, m1 := Seed(t, s)

	venus, err := s.StorePlanet(ctx, domain.Planet{Name: ptr("Venus")})
	require.NoError(t, err)
	grace, err := s.StoreScientist(ctx, domain.Scientist{Name: "Grace", FieldOfStudy: "Physics"})
	require.NoError(t, err)

	m2, err := s.StoreMission(ctx, domain.Mission{Name: "M2", ScientistID: ada.ID, PlanetID: mars.ID})
	require.NoError(t, err)
	m3, err := s.StoreMission(ctx, domain.Mission{Name: "M3", ScientistID: grace.ID, PlanetID: venus.ID})
	require.NoError(t, err)

	missions, err := s.MissionsByPlanet(ctx, mars.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.MissionID{m1.ID, m2.ID}, missionIDs(missions))

	missions, err = s.MissionsByScientist(ctx, grace.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.MissionID{m3.ID}, missionIDs(missions))

	// two missions to mars still yield ada once
	scientists, err := s.ScientistsByPlanet(ctx, mars.ID)
	require.NoError(t, err)
	require.Len(t, scientists, 1)
	require.Equal(t, ada.ID, scientists[0].ID)

	planets, err := s.PlanetsByScientist(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, planets, 1)
	require.Equal(t, mars.ID, planets[0].ID)

	planets, err = s.PlanetsByScientist(ctx, ada.ID+grace.ID+100)
	require.NoError(t, err)
	require.Empty(t, planets)
}

func testDeleteRestrict(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	planet, scientist, mission := Seed(t, s)

	_, err := s.DeletePlanet(ctx, planet.ID)
	require.ErrorIs(t, err, storage.ErrForeignKeyViolation)

	_, err = s.DeleteScientist(ctx, scientist.ID)
	require.ErrorIs(t, err, storage.ErrForeignKeyViolation)

	_, err = s.DeleteMission(ctx, mission.ID)
	require.NoError(t, err)

	_, err = s.DeletePlanet(ctx, planet.ID)
	require.NoError(t, err)
	_, err = s.DeleteScientist(ctx, scientist.ID)
	require.NoError(t, err)
}

func testUnknownReferences(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	planet, scientist, mission := Seed(t, s)

	_, err := s.StoreMission(ctx, domain.Mission{Name: "X", ScientistID: scientist.ID, PlanetID: planet.ID + 100})
	require.ErrorIs(t, err, storage.ErrForeignKeyViolation)
	_, ok := storage.AsConstraintError(err)
	require.True(t, ok)

	mission.ScientistID = scientist.ID + 100
	_, err = s.UpdateMission(ctx, *mission)
	require.ErrorIs(t, err, storage.ErrForeignKeyViolation)

	all, err := s.Missions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, scientist.ID, all[0].ScientistID)
}

func testCheckConstraints(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	_, err := s.StoreScientist(ctx, domain.Scientist{Name: "", FieldOfStudy: "Astro"})
	require.ErrorIs(t, err, storage.ErrCheckViolation)
	ce, ok := storage.AsConstraintError(err)
	require.True(t, ok)
	require.Equal(t, storage.CheckName(storage.ScientistsTable, "name_not_empty"), ce.Constraint)
	require.Equal(t, "name", ce.Column)

	_, err = s.StoreScientist(ctx, domain.Scientist{Name: "Ada", FieldOfStudy: ""})
	require.ErrorIs(t, err, storage.ErrCheckViolation)
	ce, ok = storage.AsConstraintError(err)
	require.True(t, ok)
	require.Equal(t, "field_of_study", ce.Column)
}

func testWithTx(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := tx.StorePlanet(ctx, domain.Planet{Name: ptr("Kept")})

		return err
	})
	require.NoError(t, err)

	err = s.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.StorePlanet(ctx, domain.Planet{Name: ptr("Dropped")}); err != nil {
			return err
		}
		_, err := tx.StoreMission(ctx, domain.Mission{Name: "X", ScientistID: 1000, PlanetID: 1000})

		return err
	})
	require.ErrorIs(t, err, storage.ErrForeignKeyViolation)

	planets, err := s.Planets(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 1)
	require.Equal(t, "Kept", *planets[0].Name)

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
}

func missionIDs(missions []domain.Mission) []domain.MissionID {
	ids := make([]domain.MissionID, 0, len(missions))
	for _, m := range missions {
		ids = append(ids, m.ID)
	}

	return ids
}
