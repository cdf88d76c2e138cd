package v1handler

import (
	"net/http"

	"cosmic/pkg/domain"
)

// ListScientists returns every scientist.
func (h Handler) ListScientists(w http.ResponseWriter, r *http.Request) {
	scientists, err := h.deps.Catalog.Scientists(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeList(w, scientists)
}

// CreateScientist validates and stores a scientist.
func (h Handler) CreateScientist(w http.ResponseWriter, r *http.Request) {
	d, err := readBody(r)
	if err != nil {
		writeError(w, r, badRequest(err, "could not read body"))

		return
	}
	in, err := decodeScientistInput(d)
	if err != nil {
		writeError(w, r, badRequest(err, "invalid scientist"))

		return
	}

	scientist, err := h.deps.Catalog.CreateScientist(r.Context(), in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, scientist.Encode)
}

func (h Handler) GetScientist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ScientistID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	scientist, err := h.deps.Catalog.Scientist(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, scientist.Encode)
}

func (h Handler) UpdateScientist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ScientistID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	d, err := readBody(r)
	if err != nil {
		writeError(w, r, badRequest(err, "could not read body"))

		return
	}
	patch, err := decodeScientistPatch(d)
	if err != nil {
		writeError(w, r, badRequest(err, "invalid scientist"))

		return
	}

	scientist, err := h.deps.Catalog.UpdateScientist(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, scientist.Encode)
}

func (h Handler) DeleteScientist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ScientistID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.DeleteScientist(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListScientistPlanets returns the planets a scientist has missions to.
func (h Handler) ListScientistPlanets(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ScientistID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	planets, err := h.deps.Catalog.ScientistPlanets(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeList(w, planets)
}

// ListScientistMissions returns a scientist's missions with their planets.
func (h Handler) ListScientistMissions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ScientistID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	missions, err := h.deps.Catalog.ScientistMissions(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeList(w, missions)
}
