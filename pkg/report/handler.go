package report

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/rest"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func yearMonthParams(r *http.Request) (int, time.Month, error) {
	year, err := rest.IntParam(r, "year")
	if err != nil {
		return 0, 0, err
	}
	month, err := rest.IntParam(r, "month")
	if err != nil {
		return 0, 0, err
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be between 1 and 12")
	}
	return year, time.Month(month), nil
}

func dateRangeParams(r *http.Request) (time.Time, time.Time, error) {
	from, err := rest.DateParam(r, "startDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := rest.DateParam(r, "endDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate must not be before startDate")
	}
	return from, to, nil
}

// MonthlyCustomer godoc
// @Summary Hours per customer for a month
// @Tags Reports
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month 1-12"
// @Success 200 {array} CustomerMonthDTO
// @Router /api/reports/monthly-customer [get]
func (h *Handler) MonthlyCustomer(w http.ResponseWriter, r *http.Request) {
	log.Debug("Monthly customer report")
	year, month, err := yearMonthParams(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid period", err.Error())
		return
	}
	rows, err := h.service.MonthlyByCustomer(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, mapAll(rows, CustomerMonthToDTO))
}

// MonthlyProject godoc
// @Summary Hours per project for a month
// @Tags Reports
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month 1-12"
// @Param customerId query int false "Customer"
// @Success 200 {array} ProjectMonthDTO
// @Router /api/reports/monthly-project [get]
func (h *Handler) MonthlyProject(w http.ResponseWriter, r *http.Request) {
	log.Debug("Monthly project report")
	year, month, err := yearMonthParams(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid period", err.Error())
		return
	}
	customerId, err := rest.OptionalIntParam(r, "customerId")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid customerId", err.Error())
		return
	}
	rows, err := h.service.MonthlyByProject(r.Context(), year, month, customerId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, mapAll(rows, ProjectMonthToDTO))
}

func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	log.Debug("Invoice preparation report")
	from, to, err := dateRangeParams(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date range", err.Error())
		return
	}
	customerId, err := rest.OptionalIntParam(r, "customerId")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid customerId", err.Error())
		return
	}
	entries, err := h.service.InvoicePreparation(r.Context(), from, to, customerId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, timeentry.EntriesToDTO(entries))
}

func (h *Handler) WeeklyTimesheet(w http.ResponseWriter, r *http.Request) {
	log.Debug("Weekly timesheet report")
	weekStart, err := rest.DateParam(r, "weekStartDate")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid weekStartDate", err.Error())
		return
	}
	entries, err := h.service.WeeklyTimesheet(r.Context(), weekStart)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, timeentry.EntriesToDTO(entries))
}

func (h *Handler) CustomerActivity(w http.ResponseWriter, r *http.Request) {
	log.Debug("Customer activity report")
	from, to, err := dateRangeParams(r)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date range", err.Error())
		return
	}
	rows, err := h.service.CustomerActivity(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, mapAll(rows, CustomerActivityToDTO))
}

func (h *Handler) ProjectStatus(w http.ResponseWriter, r *http.Request) {
	log.Debug("Project status report")
	rows, err := h.service.ProjectStatus(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, mapAll(rows, ProjectStatusToDTO))
}

func (h *Handler) YearToDate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Year to date summary")
	year, err := rest.IntParam(r, "year")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid year", err.Error())
		return
	}
	summary, err := h.service.YearToDate(r.Context(), year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, YearToDateToDTO(summary))
}

func (h *Handler) MonthlyComparison(w http.ResponseWriter, r *http.Request) {
	log.Debug("Monthly comparison report")
	monthsBack, err := rest.OptionalIntParam(r, "monthsBack")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid monthsBack", err.Error())
		return
	}
	rows, err := h.service.MonthlyComparison(r.Context(), monthsBack)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, mapAll(rows, MonthlyComparisonToDTO))
}
