// Package sqlrow holds the row representations shared by the SQL backends
// and their conversions to and from domain entities. Struct tags drive goqu's
// column mapping.
package sqlrow

import (
	"database/sql"

	"cosmic/pkg/domain"
)

// Planet is a row of the planets table.
type Planet struct {
	ID                int64          `db:"id"                  goqu:"skipinsert,skipupdate"`
	Name              sql.NullString `db:"name"`
	DistanceFromEarth sql.NullInt64  `db:"distance_from_earth"`
	NearestStar       sql.NullString `db:"nearest_star"`
}

// Scientist is a row of the scientists table.
type Scientist struct {
	ID           int64  `db:"id"             goqu:"skipinsert,skipupdate"`
	Name         string `db:"name"`
	FieldOfStudy string `db:"field_of_study"`
}

// Mission is a row of the missions table.
type Mission struct {
	ID          int64  `db:"id"           goqu:"skipinsert,skipupdate"`
	Name        string `db:"name"`
	ScientistID int64  `db:"scientist_id"`
	PlanetID    int64  `db:"planet_id"`
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *v, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}

	return &v.String
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}

	return &v.Int64
}

// ToDomain converts the row into a domain.Planet.
func (p *Planet) ToDomain() *domain.Planet {
	return &domain.Planet{
		ID:                domain.PlanetID(p.ID),
		Name:              stringPtr(p.Name),
		DistanceFromEarth: int64Ptr(p.DistanceFromEarth),
		NearestStar:       stringPtr(p.NearestStar),
	}
}

// FromDomain fills the row from a domain.Planet.
func (p *Planet) FromDomain(planet domain.Planet) {
	*p = Planet{
		ID:                int64(planet.ID),
		Name:              nullString(planet.Name),
		DistanceFromEarth: nullInt64(planet.DistanceFromEarth),
		NearestStar:       nullString(planet.NearestStar),
	}
}

// ToDomain converts the row into a domain.Scientist.
func (s *Scientist) ToDomain() *domain.Scientist {
	return &domain.Scientist{
		ID:           domain.ScientistID(s.ID),
		Name:         s.Name,
		FieldOfStudy: s.FieldOfStudy,
	}
}

// FromDomain fills the row from a domain.Scientist.
func (s *Scientist) FromDomain(scientist domain.Scientist) {
	*s = Scientist{
		ID:           int64(scientist.ID),
		Name:         scientist.Name,
		FieldOfStudy: scientist.FieldOfStudy,
	}
}

// ToDomain converts the row into a domain.Mission.
func (m *Mission) ToDomain() *domain.Mission {
	return &domain.Mission{
		ID:          domain.MissionID(m.ID),
		Name:        m.Name,
		ScientistID: domain.ScientistID(m.ScientistID),
		PlanetID:    domain.PlanetID(m.PlanetID),
	}
}

// FromDomain fills the row from a domain.Mission.
func (m *Mission) FromDomain(mission domain.Mission) {
	*m = Mission{
		ID:          int64(mission.ID),
		Name:        mission.Name,
		ScientistID: int64(mission.ScientistID),
		PlanetID:    int64(mission.PlanetID),
	}
}

// PlanetsToDomain converts a slice of rows.
func PlanetsToDomain(rows []Planet) []domain.Planet {
	out := make([]domain.Planet, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

// ScientistsToDomain converts a slice of rows.
func ScientistsToDomain(rows []Scientist) []domain.Scientist {
	out := make([]domain.Scientist, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

// MissionsToDomain converts a slice of rows.
func MissionsToDomain(rows []Mission) []domain.Mission {
	out := make([]domain.Mission, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

// Int64s converts typed ids into plain int64 values for query arguments.
func Int64s[T ~int64](ids []T) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}

	return out
}
