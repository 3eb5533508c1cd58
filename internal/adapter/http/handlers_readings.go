package adapthttp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bptrack/internal/app"
	"bptrack/internal/domain"
)

func (s *Server) handleReadingsList(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 14)
	items, err := s.readings.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleReadingsCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Systolic  int    `json:"systolic"`
		Diastolic int    `json:"diastolic"`
		TakenAt   string `json:"takenAt"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	view, err := s.readings.RecordReading(r.Context(), body.Systolic, body.Diastolic, body.TakenAt)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"item": view})
}

func (s *Server) handleReadingsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, errors.New("id must be a positive integer"))
		return
	}
	if err := s.readings.Delete(r.Context(), id); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": true})
}

func (s *Server) handleReadingsUndoLast(w http.ResponseWriter, r *http.Request) {
	deleted, id, err := s.readings.UndoLast(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted, "id": id})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = domain.UnitMMHg
	}
	sys, err := pressureQuery(r, "systolic", unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	dia, err := pressureQuery(r, "diastolic", unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	view, err := app.Evaluate(domain.Reading{Systolic: sys, Diastolic: dia})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"systolic":   sys,
		"diastolic":  dia,
		"zone":       view.Zone,
		"messageKey": view.Zone.MessageKey(),
		"emergency":  view.Emergency,
		"point":      view.Point,
	})
}

func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", s.historyLimit)
	minPoints := intQuery(r, "minPoints", 0)

	view, err := s.assessment.Assess(r.Context(), limit, minPoints)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrReadingNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrOutOfRange),
		errors.Is(err, domain.ErrInvalidReading),
		errors.Is(err, domain.ErrUnparsableDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
