package domain

import (
	"github.com/go-faster/jx"
)

// Serialization is written out per entity. Each representation includes only
// the relations listed below, which keeps the output a finite tree:
//
//	Planet          own fields
//	PlanetDetail    own fields + missions (each without planet, with scientist)
//	Scientist       own fields (missions omitted)
//	Mission         own fields
//	PlanetMission   own fields + scientist
//	MissionDetail   own fields + scientist + planet (neither with missions)

func encodeOptStr(e *jx.Encoder, v *string) {
	if v == nil {
		e.Null()

		return
	}
	e.Str(*v)
}

func encodeOptInt64(e *jx.Encoder, v *int64) {
	if v == nil {
		e.Null()

		return
	}
	e.Int64(*v)
}

func (p Planet) encodeFields(e *jx.Encoder) {
	e.FieldStart("id")
	e.Int64(int64(p.ID))
	e.FieldStart("name")
	encodeOptStr(e, p.Name)
	e.FieldStart("distance_from_earth")
	encodeOptInt64(e, p.DistanceFromEarth)
	e.FieldStart("nearest_star")
	encodeOptStr(e, p.NearestStar)
}

// Encode writes the planet without relations.
func (p Planet) Encode(e *jx.Encoder) {
	e.ObjStart()
	p.encodeFields(e)
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (p Planet) MarshalJSON() ([]byte, error) {
	return marshal(p)
}

// Encode writes the planet with its missions. Mission entries carry their
// scientist but never the planet they belong to.
func (d PlanetDetail) Encode(e *jx.Encoder) {
	e.ObjStart()
	d.Planet.encodeFields(e)
	e.FieldStart("missions")
	e.ArrStart()
	for _, m := range d.Missions {
		m.Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (d PlanetDetail) MarshalJSON() ([]byte, error) {
	return marshal(d)
}

func (s Scientist) encodeFields(e *jx.Encoder) {
	e.FieldStart("id")
	e.Int64(int64(s.ID))
	e.FieldStart("name")
	e.Str(s.Name)
	e.FieldStart("field_of_study")
	e.Str(s.FieldOfStudy)
}

// Encode writes the scientist. Missions are never included.
func (s Scientist) Encode(e *jx.Encoder) {
	e.ObjStart()
	s.encodeFields(e)
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (s Scientist) MarshalJSON() ([]byte, error) {
	return marshal(s)
}

func (m Mission) encodeFields(e *jx.Encoder) {
	e.FieldStart("id")
	e.Int64(int64(m.ID))
	e.FieldStart("name")
	e.Str(m.Name)
	e.FieldStart("scientist_id")
	e.Int64(int64(m.ScientistID))
	e.FieldStart("planet_id")
	e.Int64(int64(m.PlanetID))
}

// Encode writes the mission without relations.
func (m Mission) Encode(e *jx.Encoder) {
	e.ObjStart()
	m.encodeFields(e)
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (m Mission) MarshalJSON() ([]byte, error) {
	return marshal(m)
}

// Encode writes the mission with its scientist.
func (pm PlanetMission) Encode(e *jx.Encoder) {
	e.ObjStart()
	pm.Mission.encodeFields(e)
	e.FieldStart("scientist")
	pm.Scientist.Encode(e)
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (pm PlanetMission) MarshalJSON() ([]byte, error) {
	return marshal(pm)
}

// Encode writes the mission with its scientist and planet, both without
// their missions.
func (d MissionDetail) Encode(e *jx.Encoder) {
	e.ObjStart()
	d.Mission.encodeFields(e)
	e.FieldStart("scientist")
	d.Scientist.Encode(e)
	e.FieldStart("planet")
	d.Planet.Encode(e)
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (d MissionDetail) MarshalJSON() ([]byte, error) {
	return marshal(d)
}

// Encoder is implemented by every serializable entity in this package.
type Encoder interface {
	Encode(e *jx.Encoder)
}

// EncodeList writes items as a JSON array.
func EncodeList[T Encoder](e *jx.Encoder, items []T) {
	e.ArrStart()
	for _, item := range items {
		item.Encode(e)
	}
	e.ArrEnd()
}

func marshal(v Encoder) ([]byte, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	v.Encode(e)

	// the encoder buffer is reused after PutEncoder
	out := make([]byte, len(e.Bytes()))
	copy(out, e.Bytes())

	return out, nil
}
