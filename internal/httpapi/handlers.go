package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/uniflowhq/uniflow/internal/planner"
	"github.com/uniflowhq/uniflow/internal/service"
)

// Handlers holds the HTTP handler dependencies.
type Handlers struct {
	Plans   service.PlanService
	Degrees service.DegreeService
	History service.HistoryService
}

// HandleGeneratePlan resolves a study plan for the posted request.
func (h *Handlers) HandleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[planner.PlanRequest](w, r)
	if !ok {
		return
	}
	resp, err := h.Plans.GeneratePlan(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleListDegrees returns every degree program in catalog order. With a
// ?name= query it returns the single matching program instead.
func (h *Handlers) HandleListDegrees(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		degree, err := h.Degrees.Get(r.Context(), name)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, degree)
		return
	}
	degrees, err := h.Degrees.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, degrees)
}

// HandleSearchCourses runs a ranked catalog search for ?q= with an
// optional ?limit=.
func (h *Handlers) HandleSearchCourses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := queryInt(r, "limit")

	courses, err := h.Degrees.SearchCourses(r.Context(), query, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

// HandleListHistory lists recent plan runs, optionally filtered by ?degree=.
func (h *Handlers) HandleListHistory(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")

	if degree := r.URL.Query().Get("degree"); degree != "" {
		records, err := h.History.ListByDegree(r.Context(), degree, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
		return
	}
	records, err := h.History.ListRecent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// HandleGetHistory returns one persisted plan run by id.
func (h *Handlers) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	record, err := h.History.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// HandleDeleteHistory removes one persisted plan run by id.
func (h *Handlers) HandleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.History.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
