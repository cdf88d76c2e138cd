package domain

import (
	"fmt"
)

// PlanetID uniquely identifies a planet. Zero means unset.
type PlanetID int64

// Planet is a celestial body that missions can target. All descriptive fields
// are optional; a nil pointer is an unknown value.
type Planet struct {
	ID PlanetID

	Name              *string
	DistanceFromEarth *int64
	NearestStar       *string
}

// PlanetInput carries the fields accepted when creating a planet.
type PlanetInput struct {
	Name              *string
	DistanceFromEarth *int64
	NearestStar       *string
}

// PlanetPatch carries the fields to change on an existing planet. A nil field
// is left untouched; to clear a value, set ClearX.
type PlanetPatch struct {
	Name              *string
	DistanceFromEarth *int64
	NearestStar       *string

	ClearName              bool
	ClearDistanceFromEarth bool
	ClearNearestStar       bool
}

// PlanetMission is a mission as seen from its planet: the planet back
// reference is dropped and the scientist is attached.
type PlanetMission struct {
	Mission
	Scientist Scientist
}

// PlanetDetail is a planet together with the missions that target it.
type PlanetDetail struct {
	Planet
	Missions []PlanetMission
}

// NewPlanet builds a planet from input. Planets carry no required fields.
func NewPlanet(in PlanetInput) Planet {
	return Planet{
		Name:              in.Name,
		DistanceFromEarth: in.DistanceFromEarth,
		NearestStar:       in.NearestStar,
	}
}

// Apply returns a copy of p with the patch applied.
func (p Planet) Apply(patch PlanetPatch) Planet {
	switch {
	case patch.ClearName:
		p.Name = nil
	case patch.Name != nil:
		p.Name = patch.Name
	}
	switch {
	case patch.ClearDistanceFromEarth:
		p.DistanceFromEarth = nil
	case patch.DistanceFromEarth != nil:
		p.DistanceFromEarth = patch.DistanceFromEarth
	}
	switch {
	case patch.ClearNearestStar:
		p.NearestStar = nil
	case patch.NearestStar != nil:
		p.NearestStar = patch.NearestStar
	}

	return p
}

func (p Planet) String() string {
	name := "None"
	if p.Name != nil {
		name = *p.Name
	}

	return fmt.Sprintf("<Planet id=%d name=%s>", p.ID, name)
}
