package v1handler

import (
	"net/http"

	"cosmic/pkg/domain"
)

func (h Handler) ListMissions(w http.ResponseWriter, r *http.Request) {
	missions, err := h.deps.Catalog.Missions(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeList(w, missions)
}

// CreateMission validates and stores a mission, answering with both
// references resolved.
func (h Handler) CreateMission(w http.ResponseWriter, r *http.Request) {
	d, err := readBody(r)
	if err != nil {
		writeError(w, r, badRequest(err, "could not read body"))

		return
	}
	in, err := decodeMissionInput(d)
	if err != nil {
		writeError(w, r, badRequest(err, "invalid mission"))

		return
	}

	mission, err := h.deps.Catalog.CreateMission(r.Context(), in)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, mission.Encode)
}

func (h Handler) GetMission(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.MissionID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	mission, err := h.deps.Catalog.Mission(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, mission.Encode)
}

func (h Handler) UpdateMission(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.MissionID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	d, err := readBody(r)
	if err != nil {
		writeError(w, r, badRequest(err, "could not read body"))

		return
	}
	patch, err := decodeMissionPatch(d)
	if err != nil {
		writeError(w, r, badRequest(err, "invalid mission"))

		return
	}

	mission, err := h.deps.Catalog.UpdateMission(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, mission.Encode)
}

func (h Handler) DeleteMission(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.MissionID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Catalog.DeleteMission(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
