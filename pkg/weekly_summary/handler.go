package weekly_summary

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/rest"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetWeeklySummary godoc
// @Summary Get weekly summary
// @Description Seven day grid with daily totals and per-project totals for the week containing the given date
// @Tags TimeEntries
// @Produce json
// @Param date query string true "Any day of the week, YYYY-MM-DD"
// @Param customerId query int false "Customer"
// @Param projectId query int false "Project"
// @Success 200 {object} WeeklySummaryDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid parameters"
// @Router /api/timeentries/weekly [get]
func (h *Handler) GetWeeklySummary(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting weekly summary")
	date, err := rest.DateParam(r, "date")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Incorrect date format", err.Error())
		return
	}
	customerId, err := rest.OptionalIntParam(r, "customerId")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid customerId", err.Error())
		return
	}
	projectId, err := rest.OptionalIntParam(r, "projectId")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid projectId", err.Error())
		return
	}

	summary, err := h.service.GetWeeklySummary(r.Context(), date, customerId, projectId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, WeeklySummaryToDTO(summary))
}
