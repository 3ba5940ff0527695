package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timelogger/timelogger/pkg/project"
	"github.com/timelogger/timelogger/pkg/timeentry"
)

func setupHandlerTest(t *testing.T) *Handler {
	f := setup(t)
	for _, entry := range sampleMonth() {
		f.entries.Add(entry)
	}
	f.projects.Add(project.Project{Id: 10, CustomerId: volvo.id, CustomerName: "Volvo", ProjectNumber: "V-2", IsActive: true})
	f.projects.Add(project.Project{Id: 40, CustomerId: abb.id, CustomerName: "ABB", ProjectNumber: "A-4", IsActive: true})
	return NewHandler(f.service)
}

func get(t *testing.T, handlerFunc http.HandlerFunc, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	handlerFunc(w, req)
	return w
}

func TestHandler_MonthlyCustomer(t *testing.T) {
	// given
	handler := setupHandlerTest(t)

	// when
	w := get(t, handler.MonthlyCustomer, "/api/reports/monthly-customer?year=2026&month=3")

	// then
	require.Equal(t, http.StatusOK, w.Code)
	var rows []CustomerMonthDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "ABB", rows[0].Customer)
	assert.Equal(t, 8.0, rows[0].TotalHours)
	assert.Equal(t, 3, rows[1].TotalEntries)
	assert.Equal(t, "March 2026", rows[1].Period)
}

func TestHandler_InvalidParameters(t *testing.T) {
	handler := setupHandlerTest(t)
	tests := []struct {
		name    string
		handler http.HandlerFunc
		url     string
	}{
		{"month out of range", handler.MonthlyCustomer, "/api/reports/monthly-customer?year=2026&month=13"},
		{"missing year", handler.MonthlyProject, "/api/reports/monthly-project?month=3"},
		{"bad customer", handler.MonthlyProject, "/api/reports/monthly-project?year=2026&month=3&customerId=x"},
		{"inverted range", handler.Invoice, "/api/reports/invoice?startDate=2026-03-31&endDate=2026-03-01"},
		{"missing week start", handler.WeeklyTimesheet, "/api/reports/weekly-timesheet"},
		{"bad date", handler.CustomerActivity, "/api/reports/customer-activity?startDate=2026-3-1&endDate=2026-03-31"},
		{"bad year", handler.YearToDate, "/api/reports/ytd-summary?year=twenty"},
		{"bad months back", handler.MonthlyComparison, "/api/reports/monthly-comparison?monthsBack=six"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, tt.handler, tt.url)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.NotEmpty(t, body["details"])
		})
	}
}

func TestHandler_Invoice(t *testing.T) {
	handler := setupHandlerTest(t)

	w := get(t, handler.Invoice, "/api/reports/invoice?startDate=2026-03-01&endDate=2026-03-31&customerId=1")

	require.Equal(t, http.StatusOK, w.Code)
	var rows []timeentry.EntryDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "V-1", rows[0].ProjectNumber)
	assert.Equal(t, "2026-03-01", rows[1].Date)
	assert.Equal(t, "Sunday", rows[1].DayOfWeek)
}

func TestHandler_ProjectStatus(t *testing.T) {
	handler := setupHandlerTest(t)

	w := get(t, handler.ProjectStatus, "/api/reports/project-status")

	require.Equal(t, http.StatusOK, w.Code)
	var rows []ProjectStatusDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].LastActivity)
	assert.Equal(t, "2026-03-02", *rows[0].LastActivity)
	assert.Equal(t, 13, *rows[0].DaysSinceLastEntry)
	assert.Nil(t, rows[1].LastActivity)
	assert.Nil(t, rows[1].DaysSinceLastEntry)
}

func TestHandler_YearToDate_Empty(t *testing.T) {
	handler := setupHandlerTest(t)

	w := get(t, handler.YearToDate, "/api/reports/ytd-summary?year=2019")

	require.Equal(t, http.StatusOK, w.Code)
	var summary YearToDateDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
	assert.Equal(t, 2019, summary.Year)
	assert.Equal(t, 0, summary.TotalEntries)
	assert.Equal(t, 0.0, summary.AvgHoursPerEntry)
}
