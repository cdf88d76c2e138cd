package v1handler

import (
	"net/http"

	"cosmic/pkg/domain"
)

// ListPlanets returns every planet.
func (h Handler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.deps.Catalog.Planets(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeList(w, planets)
}

// CreatePlanet stores a planet from the request body.
func (h Handler) CreatePlanet(w http.ResponseWriter, r *http.Request) {
	d, err := readBody(r)
	if err != nil {
		writeError(w, r, badRequest(err, "could not read body"))

		return
	}
	in, err := decodePlanetInput(d)
	if err != nil {
		writeError(w, r, badRequest(err, "invalid planet"))

		return
	}

	planet, err := h.deps.Catalog.CreatePlanet(r.Context(), in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, planet.Encode)
}

// GetPlanet returns a planet with its missions.
func (h Handler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.PlanetID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	detail, err := h.deps.Catalog.Planet(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, detail.Encode)
}

// UpdatePlanet applies a partial update.
func (h Handler) UpdatePlanet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.PlanetID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	d, err := readBody(r)
	if err != nil {
		writeError(w, r, badRequest(err, "could not read body"))

		return
	}
	patch, err := decodePlanetPatch(d)
	if err != nil {
		writeError(w, r, badRequest(err, "invalid planet"))

		return
	}

	planet, err := h.deps.Catalog.UpdatePlanet(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, planet.Encode)
}

// DeletePlanet removes a planet.
func (h Handler) DeletePlanet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.PlanetID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.DeletePlanet(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPlanetScientists returns the scientists with missions to a planet.
func (h Handler) ListPlanetScientists(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.PlanetID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	scientists, err := h.deps.Catalog.PlanetScientists(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeList(w, scientists)
}
