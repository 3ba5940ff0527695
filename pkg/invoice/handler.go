package invoice

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/rest"
	"github.com/timelogger/timelogger/pkg/currency"
	"github.com/timelogger/timelogger/pkg/settings"
)

type Renderer interface {
	RenderInvoices(invoices []ProjectInvoice) ([]byte, error)
}

type Handler struct {
	service  Service
	renderer Renderer
}

func NewHandler(service Service, renderer Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// Export godoc
// @Summary Priced invoice breakdown per project
// @Tags Reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Param customerId query int false "Customer"
// @Success 200 {array} ProjectInvoiceDTO
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/reports/invoice-export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	log.Debug("Building invoice export")
	from, err := rest.DateParam(r, "startDate")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid startDate", err.Error())
		return
	}
	to, err := rest.DateParam(r, "endDate")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid endDate", err.Error())
		return
	}
	customerId, err := rest.OptionalIntParam(r, "customerId")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid customerId", err.Error())
		return
	}

	invoices, err := h.service.BuildInvoiceExport(r.Context(), from, to, customerId)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingsNotConfigured):
			rest.WriteError(w, http.StatusBadRequest, "Settings not configured", "rates must be configured before invoicing")
		case errors.Is(err, currency.ErrInvalidCurrency), errors.Is(err, currency.ErrInvalidRate):
			rest.WriteError(w, http.StatusUnprocessableEntity, "Invoice cannot be priced", err.Error())
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if strings.Contains(r.Header.Get("Accept"), XlsxContentType) {
		workbook, err := h.renderer.RenderInvoices(invoices)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fileName := fmt.Sprintf("Invoice_%s_%s.xlsx", from.Format(rest.DateLayout), to.Format(rest.DateLayout))
		w.Header().Set("Content-Type", XlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(workbook); err != nil {
			log.Errorf("failed to write workbook: %v", err)
		}
		return
	}

	dtos := make([]ProjectInvoiceDTO, 0, len(invoices))
	for _, inv := range invoices {
		dtos = append(dtos, ProjectInvoiceToDTO(inv))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}
