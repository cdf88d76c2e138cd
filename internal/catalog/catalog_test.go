package catalog_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"cosmic"
	"cosmic/internal/catalog"
	"cosmic/pkg/domain"
	"cosmic/pkg/serrors"
	"cosmic/pkg/storage/sqlite"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newTestStorage(t *testing.T) *sqlite.SQLite {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.New(ctx, sqlite.Options{Path: sqlite.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, cosmic.Migrate(ctx, st.DB.(*sql.DB), cosmic.DialectSQLite))

	return st
}

func newTestCatalog(t *testing.T) catalog.Catalog {
	t.Helper()

	return catalog.New(newTestStorage(t))
}

type fixture struct {
	mars *domain.Planet
	ada  *domain.Scientist
	m1   *domain.MissionDetail
}

func seed(t *testing.T, c catalog.Catalog) fixture {
	t.Helper()
	ctx := context.Background()

	mars, err := c.CreatePlanet(ctx, domain.PlanetInput{Name: ptr("Mars")})
	require.NoError(t, err)
	ada, err := c.CreateScientist(ctx, domain.ScientistInput{Name: "Ada", FieldOfStudy: "Astrophysics"})
	require.NoError(t, err)
	m1, err := c.CreateMission(ctx, domain.MissionInput{Name: "M1", ScientistID: ada.ID, PlanetID: mars.ID})
	require.NoError(t, err)

	return fixture{mars: mars, ada: ada, m1: m1}
}

func TestCatalog_RoundTrip(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()
	f := seed(t, c)

	require.Equal(t, f.ada.ID, f.m1.ScientistID)
	require.Equal(t, f.mars.ID, f.m1.PlanetID)
	require.Equal(t, "Ada", f.m1.Scientist.Name)
	require.Equal(t, "Mars", *f.m1.Planet.Name)

	_, err := c.CreateMission(ctx, domain.MissionInput{Name: "M2", PlanetID: f.mars.ID})
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	fe, ok := domain.AsFieldError(err)
	require.True(t, ok)
	require.Equal(t, "scientist_id", fe.Field)

	missions, err := c.Missions(ctx)
	require.NoError(t, err)
	require.Len(t, missions, 1)
}

func TestCatalog_ScientistValidation(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     domain.ScientistInput
		wantField string
	}{
		{name: "empty name", input: domain.ScientistInput{FieldOfStudy: "Astro"}, wantField: "name"},
		{name: "empty field of study", input: domain.ScientistInput{Name: "Ada"}, wantField: "field_of_study"},
		{name: "both empty reports name", input: domain.ScientistInput{}, wantField: "name"},
		{name: "valid", input: domain.ScientistInput{Name: "Ada", FieldOfStudy: "Astro"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := c.CreateScientist(ctx, tt.input)
			if tt.wantField == "" {
				require.NoError(t, err)
				require.NotZero(t, s.ID)

				return
			}
			require.ErrorIs(t, err, domain.ErrMissingRequiredField)
			fe, ok := domain.AsFieldError(err)
			require.True(t, ok)
			require.Equal(t, tt.wantField, fe.Field)
			require.Equal(t, tt.wantField+" must be provided", fe.Message)
		})
	}

	all, err := c.Scientists(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCatalog_MissionValidation(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()
	f := seed(t, c)

	tests := []struct {
		name      string
		input     domain.MissionInput
		wantField string
		wantErr   error
	}{
		{
			name:      "empty name",
			input:     domain.MissionInput{ScientistID: f.ada.ID, PlanetID: f.mars.ID},
			wantField: "name",
			wantErr:   domain.ErrMissingRequiredField,
		},
		{
			name:      "missing planet",
			input:     domain.MissionInput{Name: "X", ScientistID: f.ada.ID},
			wantField: "planet_id",
			wantErr:   domain.ErrMissingRequiredField,
		},
		{
			name:      "unknown scientist",
			input:     domain.MissionInput{Name: "X", ScientistID: f.ada.ID + 10, PlanetID: f.mars.ID},
			wantField: "scientist_id",
			wantErr:   domain.ErrUnknownReference,
		},
		{
			name:      "unknown planet",
			input:     domain.MissionInput{Name: "X", ScientistID: f.ada.ID, PlanetID: f.mars.ID + 10},
			wantField: "planet_id",
			wantErr:   domain.ErrUnknownReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CreateMission(ctx, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			fe, ok := domain.AsFieldError(err)
			require.True(t, ok)
			require.Equal(t, tt.wantField, fe.Field)
		})
	}

	missions, err := c.Missions(ctx)
	require.NoError(t, err)
	require.Len(t, missions, 1)
}

func TestCatalog_UpdateIsAtomic(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()
	f := seed(t, c)

	_, err := c.UpdateScientist(ctx, f.ada.ID, domain.ScientistPatch{Name: ptr("Grace"), FieldOfStudy: ptr("")})
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)

	got, err := c.Scientist(ctx, f.ada.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", got.Name)

	updated, err := c.UpdateScientist(ctx, f.ada.ID, domain.ScientistPatch{Name: ptr("Grace")})
	require.NoError(t, err)
	require.Equal(t, "Grace", updated.Name)
	require.Equal(t, "Astrophysics", updated.FieldOfStudy)

	_, err = c.UpdateMission(ctx, f.m1.ID, domain.MissionPatch{PlanetID: ptr(f.mars.ID + 10)})
	require.ErrorIs(t, err, domain.ErrUnknownReference)

	venus, err := c.CreatePlanet(ctx, domain.PlanetInput{Name: ptr("Venus")})
	require.NoError(t, err)
	moved, err := c.UpdateMission(ctx, f.m1.ID, domain.MissionPatch{PlanetID: &venus.ID})
	require.NoError(t, err)
	require.Equal(t, venus.ID, moved.PlanetID)
	require.Equal(t, "Venus", *moved.Planet.Name)
	require.Equal(t, "Grace", moved.Scientist.Name)

	_, err = c.UpdateMission(ctx, f.m1.ID+10, domain.MissionPatch{Name: ptr("Y")})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_UpdatePlanet(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()

	p, err := c.CreatePlanet(ctx, domain.PlanetInput{Name: ptr("Mars"), NearestStar: ptr("Sun")})
	require.NoError(t, err)

	updated, err := c.UpdatePlanet(ctx, p.ID, domain.PlanetPatch{
		DistanceFromEarth: ptr(int64(225)),
		ClearNearestStar:  true,
	})
	require.NoError(t, err)
	require.Equal(t, "Mars", *updated.Name)
	require.Equal(t, int64(225), *updated.DistanceFromEarth)
	require.Nil(t, updated.NearestStar)

	_, err = c.UpdatePlanet(ctx, p.ID+1, domain.PlanetPatch{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_DeleteRestrict(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()
	f := seed(t, c)

	err := c.DeletePlanet(ctx, f.mars.ID)
	require.ErrorIs(t, err, serrors.ErrConflict)
	err = c.DeleteScientist(ctx, f.ada.ID)
	require.ErrorIs(t, err, serrors.ErrConflict)

	// both survive the refused deletes
	_, err = c.Planet(ctx, f.mars.ID)
	require.NoError(t, err)
	_, err = c.Scientist(ctx, f.ada.ID)
	require.NoError(t, err)

	require.NoError(t, c.DeleteMission(ctx, f.m1.ID))
	require.ErrorIs(t, c.DeleteMission(ctx, f.m1.ID), serrors.ErrNotFound)

	require.NoError(t, c.DeletePlanet(ctx, f.mars.ID))
	require.NoError(t, c.DeleteScientist(ctx, f.ada.ID))
	require.ErrorIs(t, c.DeletePlanet(ctx, f.mars.ID), serrors.ErrNotFound)
	require.ErrorIs(t, c.DeleteScientist(ctx, f.ada.ID), serrors.ErrNotFound)
}

func TestCatalog_Relationships(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()
	f := seed(t, c)

	m2, err := c.CreateMission(ctx, domain.MissionInput{Name: "M2", ScientistID: f.ada.ID, PlanetID: f.mars.ID})
	require.NoError(t, err)
	grace, err := c.CreateScientist(ctx, domain.ScientistInput{Name: "Grace", FieldOfStudy: "Geology"})
	require.NoError(t, err)
	_, err = c.CreateMission(ctx, domain.MissionInput{Name: "M3", ScientistID: grace.ID, PlanetID: f.mars.ID})
	require.NoError(t, err)

	detail, err := c.Planet(ctx, f.mars.ID)
	require.NoError(t, err)
	require.Len(t, detail.Missions, 3)
	require.Equal(t, f.m1.ID, detail.Missions[0].ID)
	require.Equal(t, m2.ID, detail.Missions[1].ID)
	require.Equal(t, "Grace", detail.Missions[2].Scientist.Name)

	scientists, err := c.PlanetScientists(ctx, f.mars.ID)
	require.NoError(t, err)
	require.Len(t, scientists, 2)

	planets, err := c.ScientistPlanets(ctx, f.ada.ID)
	require.NoError(t, err)
	require.Len(t, planets, 1)
	require.Equal(t, f.mars.ID, planets[0].ID)

	missions, err := c.ScientistMissions(ctx, f.ada.ID)
	require.NoError(t, err)
	require.Len(t, missions, 2)
	require.Equal(t, "Mars", *missions[0].Planet.Name)

	mission, err := c.Mission(ctx, m2.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", mission.Scientist.Name)

	_, err = c.Planet(ctx, f.mars.ID+10)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, err = c.PlanetScientists(ctx, f.mars.ID+10)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, err = c.ScientistPlanets(ctx, grace.ID+10)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, err = c.ScientistMissions(ctx, grace.ID+10)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, err = c.Mission(ctx, m2.ID+10)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_SerializedShapes(t *testing.T) {
	c := newTestCatalog(t)
	ctx := context.Background()
	f := seed(t, c)

	detail, err := c.Planet(ctx, f.mars.ID)
	require.NoError(t, err)
	raw, err := json.Marshal(detail)
	require.NoError(t, err)

	var planet map[string]any
	require.NoError(t, json.Unmarshal(raw, &planet))
	missions, ok := planet["missions"].([]any)
	require.True(t, ok)
	require.Len(t, missions, 1)
	entry := missions[0].(map[string]any)
	require.NotContains(t, entry, "planet")
	require.NotContains(t, entry["scientist"], "missions")

	raw, err = json.Marshal(f.m1)
	require.NoError(t, err)
	var mission map[string]any
	require.NoError(t, json.Unmarshal(raw, &mission))
	require.NotContains(t, mission["scientist"], "missions")
	require.NotContains(t, mission["planet"], "missions")

	raw, err = json.Marshal(f.ada)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "missions")
}

func TestCatalog_DanglingMissionIsInternal(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)
	c := catalog.New(st)

	mars, err := c.CreatePlanet(ctx, domain.PlanetInput{Name: ptr("Mars")})
	require.NoError(t, err)

	// memory databases use one connection, so the pragma sticks
	db := st.DB.(*sql.DB)
	_, err = db.ExecContext(ctx, `PRAGMA foreign_keys = OFF`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO missions (name, scientist_id, planet_id) VALUES ('Ghost', 99, ?)`, mars.ID)
	require.NoError(t, err)

	_, err = c.Planet(ctx, mars.ID)
	require.ErrorIs(t, err, serrors.ErrInternal)

	_, err = c.Mission(ctx, domain.MissionID(1))
	require.ErrorIs(t, err, serrors.ErrInternal)
}
