package v1handler

import (
	"net/http"
	"strconv"

	"cosmic/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// Routes returns the v1 router. Paths are relative to the mount point. Reads
// are public; writes pass through sec.
func (h *Handler) Routes(sec *SecHandler) chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "no route for %s", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: r.Method + " is not allowed on " + r.URL.Path,
		}.Encode)
	})

	r.Route("/planets", func(r chi.Router) {
		r.Get("/", h.ListPlanets)
		r.With(sec.Middleware).Post("/", h.CreatePlanet)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetPlanet)
			r.With(sec.Middleware).Patch("/", h.UpdatePlanet)
			r.With(sec.Middleware).Delete("/", h.DeletePlanet)
			r.Get("/scientists", h.ListPlanetScientists)
		})
	})

	r.Route("/scientists", func(r chi.Router) {
		r.Get("/", h.ListScientists)
		r.With(sec.Middleware).Post("/", h.CreateScientist)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetScientist)
			r.With(sec.Middleware).Patch("/", h.UpdateScientist)
			r.With(sec.Middleware).Delete("/", h.DeleteScientist)
			r.Get("/planets", h.ListScientistPlanets)
			r.Get("/missions", h.ListScientistMissions)
		})
	})

	r.Route("/missions", func(r chi.Router) {
		r.Get("/", h.ListMissions)
		r.With(sec.Middleware).Post("/", h.CreateMission)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetMission)
			r.With(sec.Middleware).Patch("/", h.UpdateMission)
			r.With(sec.Middleware).Delete("/", h.DeleteMission)
		})
	})

	return r
}

// pathID parses the {id} URL parameter. Ids are positive.
func pathID[T ~int64](r *http.Request) (T, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid id %q", raw)
	}

	return T(id), nil
}
