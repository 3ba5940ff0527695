package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// DateLayout is the calendar-day format used by every query parameter.
const DateLayout = "2006-01-02"

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, status int, message string, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message, Details: details}); err != nil {
		log.Errorf("failed to encode error response: %v", err)
	}
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

// DateParam parses a required YYYY-MM-DD query parameter.
func DateParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be in YYYY-MM-DD format", name)
	}
	return date, nil
}

// OptionalDateParam returns the zero time when the parameter is absent.
func OptionalDateParam(r *http.Request, name string) (time.Time, error) {
	if !r.URL.Query().Has(name) {
		return time.Time{}, nil
	}
	return DateParam(r, name)
}

func IntParam(r *http.Request, name string) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return number, nil
}

// OptionalIntParam returns 0 when the parameter is absent. Ids start at 1, so 0 means "any".
func OptionalIntParam(r *http.Request, name string) (int, error) {
	if r.URL.Query().Get(name) == "" {
		return 0, nil
	}
	return IntParam(r, name)
}
