package domain

import "fmt"

// MissionID uniquely identifies a mission. Zero means unset.
type MissionID int64

const missionEntity = "mission"

// Mission joins one scientist to one planet. It references both without
// owning them.
type Mission struct {
	ID MissionID

	Name        string
	ScientistID ScientistID
	PlanetID    PlanetID
}

// MissionInput carries the fields accepted when creating a mission. Zero ids
// are treated as missing.
type MissionInput struct {
	Name        string
	ScientistID ScientistID
	PlanetID    PlanetID
}

// MissionPatch carries the fields to change on an existing mission.
type MissionPatch struct {
	Name        *string
	ScientistID *ScientistID
	PlanetID    *PlanetID
}

// MissionDetail is a mission with both of its references resolved.
type MissionDetail struct {
	Mission
	Scientist Scientist
	Planet    Planet
}

// NewMission validates in and builds a Mission. Whether the referenced
// scientist and planet exist is left to the store.
func NewMission(in MissionInput) (Mission, error) {
	m := Mission{
		Name:        in.Name,
		ScientistID: in.ScientistID,
		PlanetID:    in.PlanetID,
	}
	if err := m.Validate(); err != nil {
		return Mission{}, err
	}

	return m, nil
}

// Validate reports the first field, in declaration order, that is missing.
func (m Mission) Validate() error {
	if m.Name == "" {
		return missingField(missionEntity, "name")
	}
	if m.ScientistID == 0 {
		return missingField(missionEntity, "scientist_id")
	}
	if m.PlanetID == 0 {
		return missingField(missionEntity, "planet_id")
	}

	return nil
}

// Apply returns a copy of m with the patch applied, or a validation error.
func (m Mission) Apply(patch MissionPatch) (Mission, error) {
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.ScientistID != nil {
		m.ScientistID = *patch.ScientistID
	}
	if patch.PlanetID != nil {
		m.PlanetID = *patch.PlanetID
	}
	if err := m.Validate(); err != nil {
		return Mission{}, err
	}

	return m, nil
}

func (m Mission) String() string {
	return fmt.Sprintf("<Mission id=%d name=%s scientist_id=%d, planet_id=%d>",
		m.ID, m.Name, m.ScientistID, m.PlanetID)
}
