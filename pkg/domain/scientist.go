package domain

import "fmt"

// ScientistID uniquely identifies a scientist. Zero means unset.
type ScientistID int64

const scientistEntity = "scientist"

// Scientist is a researcher who takes part in missions.
type Scientist struct {
	ID ScientistID

	// Name must not be empty.
	Name string
	// FieldOfStudy must not be empty.
	FieldOfStudy string
}

// ScientistInput carries the fields accepted when creating a scientist.
type ScientistInput struct {
	Name         string
	FieldOfStudy string
}

// ScientistPatch carries the fields to change on an existing scientist. Nil
// fields are left untouched; set fields are validated like on creation.
type ScientistPatch struct {
	Name         *string
	FieldOfStudy *string
}

// NewScientist validates in and builds a Scientist.
func NewScientist(in ScientistInput) (Scientist, error) {
	s := Scientist{
		Name:         in.Name,
		FieldOfStudy: in.FieldOfStudy,
	}
	if err := s.Validate(); err != nil {
		return Scientist{}, err
	}

	return s, nil
}

// Validate reports the first required field that is empty.
func (s Scientist) Validate() error {
	if s.Name == "" {
		return missingField(scientistEntity, "name")
	}
	if s.FieldOfStudy == "" {
		return missingField(scientistEntity, "field_of_study")
	}

	return nil
}

// Apply returns a copy of s with the patch applied, or a validation error.
// s itself is never modified.
func (s Scientist) Apply(patch ScientistPatch) (Scientist, error) {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.FieldOfStudy != nil {
		s.FieldOfStudy = *patch.FieldOfStudy
	}
	if err := s.Validate(); err != nil {
		return Scientist{}, err
	}

	return s, nil
}

func (s Scientist) String() string {
	return fmt.Sprintf("<Scientist id=%d name=%s>", s.ID, s.Name)
}
