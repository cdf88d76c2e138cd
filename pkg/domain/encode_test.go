package domain_test

import (
	"encoding/json"
	"testing"

	"cosmic/pkg/domain"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

var (
	mars = domain.Planet{ID: 1, Name: ptr("Mars"), DistanceFromEarth: ptr(int64(225)), NearestStar: ptr("Sun")}
	ada  = domain.Scientist{ID: 2, Name: "Ada", FieldOfStudy: "Astrophysics"}
	m1   = domain.Mission{ID: 3, Name: "M1", ScientistID: 2, PlanetID: 1}
)

func TestPlanet_Encode_NullOptionals(t *testing.T) {
	out, err := json.Marshal(domain.Planet{ID: 9})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":9,"name":null,"distance_from_earth":null,"nearest_star":null}`, string(out))
}

func TestPlanetDetail_Encode_OmitsMissionPlanet(t *testing.T) {
	m2 := domain.Mission{ID: 4, Name: "M2", ScientistID: 2, PlanetID: 1}
	d := domain.PlanetDetail{
		Planet: mars,
		Missions: []domain.PlanetMission{
			{Mission: m1, Scientist: ada},
			{Mission: m2, Scientist: ada},
		},
	}

	out, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"id":1,"name":"Mars","distance_from_earth":225,"nearest_star":"Sun",
		"missions":[
			{"id":3,"name":"M1","scientist_id":2,"planet_id":1,
			 "scientist":{"id":2,"name":"Ada","field_of_study":"Astrophysics"}},
			{"id":4,"name":"M2","scientist_id":2,"planet_id":1,
			 "scientist":{"id":2,"name":"Ada","field_of_study":"Astrophysics"}}
		]}`, string(out))

	var decoded struct {
		Missions []map[string]any `json:"missions"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Missions, 2)
	for _, m := range decoded.Missions {
		require.NotContains(t, m, "planet")
		require.NotContains(t, m["scientist"], "missions")
	}
}

func TestPlanetDetail_Encode_NoMissions(t *testing.T) {
	out, err := json.Marshal(domain.PlanetDetail{Planet: domain.Planet{ID: 5}})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":5,"name":null,"distance_from_earth":null,"nearest_star":null,"missions":[]}`,
		string(out))
}

func TestScientist_Encode_OmitsMissions(t *testing.T) {
	out, err := json.Marshal(ada)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":2,"name":"Ada","field_of_study":"Astrophysics"}`, string(out))
}

func TestMissionDetail_Encode_OmitsBackReferences(t *testing.T) {
	out, err := json.Marshal(domain.MissionDetail{Mission: m1, Scientist: ada, Planet: mars})
	require.NoError(t, err)
	require.JSONEq(t, `{
		"id":3,"name":"M1","scientist_id":2,"planet_id":1,
		"scientist":{"id":2,"name":"Ada","field_of_study":"Astrophysics"},
		"planet":{"id":1,"name":"Mars","distance_from_earth":225,"nearest_star":"Sun"}
	}`, string(out))
}

func TestEncodeList(t *testing.T) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	domain.EncodeList(e, []domain.Scientist{ada, {ID: 5, Name: "Carl", FieldOfStudy: "Planetary Science"}})
	require.JSONEq(t, `[
		{"id":2,"name":"Ada","field_of_study":"Astrophysics"},
		{"id":5,"name":"Carl","field_of_study":"Planetary Science"}
	]`, e.String())

	e.Reset()
	domain.EncodeList[domain.Mission](e, nil)
	require.Equal(t, "[]", e.String())
}
