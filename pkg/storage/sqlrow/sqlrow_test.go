package sqlrow_test

import (
	"database/sql"
	"testing"

	"cosmic/pkg/domain"
	"cosmic/pkg/storage/sqlrow"

	"github.com/stretchr/testify/require"
)

func TestPlanet_NullableColumns(t *testing.T) {
	name := "Mars"

	var row sqlrow.Planet
	row.FromDomain(domain.Planet{ID: 4, Name: &name})
	require.Equal(t, sqlrow.Planet{
		ID:   4,
		Name: sql.NullString{String: "Mars", Valid: true},
	}, row)

	p := row.ToDomain()
	require.Equal(t, domain.PlanetID(4), p.ID)
	require.Equal(t, "Mars", *p.Name)
	require.Nil(t, p.DistanceFromEarth)
	require.Nil(t, p.NearestStar)
}

func TestMissionsToDomain(t *testing.T) {
	out := sqlrow.MissionsToDomain([]sqlrow.Mission{
		{ID: 1, Name: "M1", ScientistID: 2, PlanetID: 3},
	})
	require.Equal(t, []domain.Mission{{ID: 1, Name: "M1", ScientistID: 2, PlanetID: 3}}, out)
	require.Empty(t, sqlrow.MissionsToDomain(nil))
}

func TestInt64s(t *testing.T) {
	require.Equal(t, []int64{1, 5}, sqlrow.Int64s([]domain.PlanetID{1, 5}))
}
