package domain_test

import (
	"testing"

	"cosmic/pkg/domain"
	"cosmic/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewScientist(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.ScientistInput
		wantField string
	}{
		{
			name:  "valid",
			input: domain.ScientistInput{Name: "Ada", FieldOfStudy: "Astrophysics"},
		},
		{
			name:      "empty name",
			input:     domain.ScientistInput{FieldOfStudy: "Astrophysics"},
			wantField: "name",
		},
		{
			name:      "empty field of study",
			input:     domain.ScientistInput{Name: "Ada"},
			wantField: "field_of_study",
		},
		{
			name:      "both empty reports name first",
			input:     domain.ScientistInput{},
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := domain.NewScientist(tt.input)
			if tt.wantField == "" {
				require.NoError(t, err)
				require.Equal(t, tt.input.Name, s.Name)
				require.Equal(t, tt.input.FieldOfStudy, s.FieldOfStudy)

				return
			}

			require.Error(t, err)
			require.ErrorIs(t, err, domain.ErrMissingRequiredField)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			fe, ok := domain.AsFieldError(err)
			require.True(t, ok)
			require.Equal(t, "scientist", fe.Entity)
			require.Equal(t, tt.wantField, fe.Field)
			require.Equal(t, tt.wantField+" must be provided", fe.Message)
			require.Equal(t, domain.Scientist{}, s)
		})
	}
}

func TestScientist_Apply(t *testing.T) {
	orig := domain.Scientist{ID: 7, Name: "Ada", FieldOfStudy: "Astrophysics"}

	updated, err := orig.Apply(domain.ScientistPatch{FieldOfStudy: ptr("Cosmology")})
	require.NoError(t, err)
	require.Equal(t, domain.Scientist{ID: 7, Name: "Ada", FieldOfStudy: "Cosmology"}, updated)

	_, err = orig.Apply(domain.ScientistPatch{Name: ptr("")})
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	fe, _ := domain.AsFieldError(err)
	require.Equal(t, "name", fe.Field)

	// the receiver is a copy
	require.Equal(t, "Astrophysics", orig.FieldOfStudy)
}

func TestNewMission(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.MissionInput
		wantField string
	}{
		{
			name:  "valid",
			input: domain.MissionInput{Name: "M1", ScientistID: 1, PlanetID: 2},
		},
		{
			name:      "empty name",
			input:     domain.MissionInput{ScientistID: 1, PlanetID: 2},
			wantField: "name",
		},
		{
			name:      "missing scientist",
			input:     domain.MissionInput{Name: "M2", PlanetID: 2},
			wantField: "scientist_id",
		},
		{
			name:      "missing planet",
			input:     domain.MissionInput{Name: "M3", ScientistID: 1},
			wantField: "planet_id",
		},
		{
			name:  "negative ids are truthy",
			input: domain.MissionInput{Name: "M4", ScientistID: -1, PlanetID: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.NewMission(tt.input)
			if tt.wantField == "" {
				require.NoError(t, err)
				require.Equal(t, tt.input.ScientistID, m.ScientistID)
				require.Equal(t, tt.input.PlanetID, m.PlanetID)

				return
			}

			require.ErrorIs(t, err, domain.ErrMissingRequiredField)
			fe, ok := domain.AsFieldError(err)
			require.True(t, ok)
			require.Equal(t, "mission", fe.Entity)
			require.Equal(t, tt.wantField, fe.Field)
		})
	}
}

func TestMission_Apply(t *testing.T) {
	orig := domain.Mission{ID: 3, Name: "M1", ScientistID: 1, PlanetID: 2}

	updated, err := orig.Apply(domain.MissionPatch{PlanetID: ptr(domain.PlanetID(5))})
	require.NoError(t, err)
	require.Equal(t, domain.PlanetID(5), updated.PlanetID)
	require.Equal(t, domain.ScientistID(1), updated.ScientistID)

	_, err = orig.Apply(domain.MissionPatch{ScientistID: ptr(domain.ScientistID(0))})
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	fe, _ := domain.AsFieldError(err)
	require.Equal(t, "scientist_id", fe.Field)
}

func TestPlanet_NoRequiredFields(t *testing.T) {
	p := domain.NewPlanet(domain.PlanetInput{})
	require.Nil(t, p.Name)
	require.Nil(t, p.DistanceFromEarth)
	require.Nil(t, p.NearestStar)

	p = p.Apply(domain.PlanetPatch{Name: ptr("Mars"), DistanceFromEarth: ptr(int64(225))})
	require.Equal(t, "Mars", *p.Name)
	require.EqualValues(t, 225, *p.DistanceFromEarth)

	p = p.Apply(domain.PlanetPatch{ClearName: true, NearestStar: ptr("Sun")})
	require.Nil(t, p.Name)
	require.Equal(t, "Sun", *p.NearestStar)
	require.EqualValues(t, 225, *p.DistanceFromEarth)
}

func TestStringers(t *testing.T) {
	require.Equal(t, "<Planet id=1 name=Mars>", domain.Planet{ID: 1, Name: ptr("Mars")}.String())
	require.Equal(t, "<Planet id=2 name=None>", domain.Planet{ID: 2}.String())
	require.Equal(t, "<Scientist id=3 name=Ada>", domain.Scientist{ID: 3, Name: "Ada"}.String())
	require.Equal(t, "<Mission id=4 name=M1 scientist_id=3, planet_id=1>",
		domain.Mission{ID: 4, Name: "M1", ScientistID: 3, PlanetID: 1}.String())
}

func TestUnknownReference(t *testing.T) {
	err := domain.UnknownReference("mission", "planet_id", "planet")

	require.ErrorIs(t, err, domain.ErrUnknownReference)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.NotErrorIs(t, err, domain.ErrMissingRequiredField)

	fe, ok := domain.AsFieldError(err)
	require.True(t, ok)
	require.Equal(t, "planet_id", fe.Field)
	require.Equal(t, "planet_id does not reference an existing planet", fe.Message)
}
