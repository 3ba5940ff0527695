package timeentry

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/rest"
)

type Renderer interface {
	RenderEntries(entries []TimeEntry) ([]byte, error)
}

type Handler struct {
	repo     Repository
	renderer Renderer
}

func NewHandler(repo Repository, renderer Renderer) *Handler {
	return &Handler{repo: repo, renderer: renderer}
}

// Export returns entries as CSV, optionally limited by startDate and endDate.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	log.Debug("Exporting time entries")
	from, err := rest.OptionalDateParam(r, "startDate")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid startDate", err.Error())
		return
	}
	to, err := rest.OptionalDateParam(r, "endDate")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid endDate", err.Error())
		return
	}

	entries, err := h.repo.FetchTimeEntries(r.Context(), Filter{From: from, To: to})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	csv, err := h.renderer.RenderEntries(entries)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fileName := "timeentries.csv"
	if !from.IsZero() && !to.IsZero() {
		fileName = fmt.Sprintf("timeentries_%s_%s.csv", from.Format(rest.DateLayout), to.Format(rest.DateLayout))
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(csv); err != nil {
		log.Errorf("failed to write csv response: %v", err)
	}
}
