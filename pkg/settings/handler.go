package settings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/rest"
)

type SettingsDTO struct {
	SekToEurRate        float64    `json:"sekToEurRate"`
	HourlyRateEur       float64    `json:"hourlyRateEur"`
	TravelHourlyRateEur float64    `json:"travelHourlyRateEur"`
	KmCost              float64    `json:"kmCost"`
	CreatedDate         time.Time  `json:"createdDate"`
	ModifiedDate        *time.Time `json:"modifiedDate,omitempty"`
}

// UpdateSettingsDTO keeps the submitted rates exact.
type UpdateSettingsDTO struct {
	SekToEurRate        decimal.Decimal `json:"sekToEurRate"`
	HourlyRateEur       decimal.Decimal `json:"hourlyRateEur"`
	TravelHourlyRateEur decimal.Decimal `json:"travelHourlyRateEur"`
	KmCost              decimal.Decimal `json:"kmCost"`
}

func SettingsToDTO(s Settings) SettingsDTO {
	return SettingsDTO{
		SekToEurRate:        s.SekToEurRate.InexactFloat64(),
		HourlyRateEur:       s.HourlyRateEur.InexactFloat64(),
		TravelHourlyRateEur: s.TravelHourlyRateEur.InexactFloat64(),
		KmCost:              s.KmCost.InexactFloat64(),
		CreatedDate:         s.CreatedDate,
		ModifiedDate:        s.ModifiedDate,
	}
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Get godoc
// @Summary Get rate settings
// @Tags Settings
// @Produce json
// @Success 200 {object} SettingsDTO
// @Failure 404 {object} rest.ErrorResponse "Settings not configured"
// @Router /api/settings [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting settings")
	settings, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, ErrSettingsNotConfigured) {
			rest.WriteError(w, http.StatusNotFound, "Settings not configured", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SettingsToDTO(settings))
}

// Update godoc
// @Summary Create or replace rate settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body UpdateSettingsDTO true "Rates"
// @Success 200 {object} SettingsDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid settings"
// @Router /api/settings [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating settings")
	var dto UpdateSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.service.Update(r.Context(), Settings{
		SekToEurRate:        dto.SekToEurRate,
		HourlyRateEur:       dto.HourlyRateEur,
		TravelHourlyRateEur: dto.TravelHourlyRateEur,
		KmCost:              dto.KmCost,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidSettings) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid settings", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SettingsToDTO(updated))
}
