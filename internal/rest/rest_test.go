package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x?from=2026-02-01&bad=01/02/2026", nil)

	date, err := DateParam(req, "from")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), date)

	_, err = DateParam(req, "bad")
	assert.EqualError(t, err, "bad must be in YYYY-MM-DD format")

	_, err = DateParam(req, "missing")
	assert.EqualError(t, err, "missing is required")

	date, err = OptionalDateParam(req, "missing")
	require.NoError(t, err)
	assert.True(t, date.IsZero())
}

func TestOptionalIntParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x?customerId=7&projectId=abc", nil)

	id, err := OptionalIntParam(req, "customerId")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	id, err = OptionalIntParam(req, "other")
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	_, err = OptionalIntParam(req, "projectId")
	assert.Error(t, err)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusBadRequest, "Invalid date", "startDate must be in YYYY-MM-DD format")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Invalid date", body.Error)
}
