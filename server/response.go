package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/etnz/advisor"
)

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondFailure maps the session's error taxonomy to status codes.
func respondFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, advisor.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, advisor.ErrPlanIncomplete):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, advisor.ErrNoQuotes), errors.Is(err, advisor.ErrAdvisorUnavailable):
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
