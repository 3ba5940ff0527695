package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Get_NotConfigured(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	// given
	handler := NewHandler(service)
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	w := httptest.NewRecorder()

	// when
	handler.Get(w, req)

	// then
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateAndGet(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	// given
	handler := NewHandler(service)
	body := `{"sekToEurRate": 11.36, "hourlyRateEur": "150", "travelHourlyRateEur": 75, "kmCost": 0.25}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body))
	w := httptest.NewRecorder()

	// when
	handler.Update(w, req)

	// then
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	w = httptest.NewRecorder()
	handler.Get(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var dto SettingsDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, 11.36, dto.SekToEurRate)
	assert.Equal(t, 150.0, dto.HourlyRateEur)
	assert.Equal(t, 75.0, dto.TravelHourlyRateEur)
	assert.Equal(t, 0.25, dto.KmCost)
	assert.NotNil(t, dto.ModifiedDate)
}

func TestHandler_Update_InvalidRates(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	handler := NewHandler(service)
	body := `{"sekToEurRate": 0, "hourlyRateEur": 150, "travelHourlyRateEur": 75, "kmCost": 0.25}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Update(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "sekToEurRate must be greater than 0")
}

func TestHandler_Update_MalformedBody(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	handler := NewHandler(service)
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader("{"))
	w := httptest.NewRecorder()

	handler.Update(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
