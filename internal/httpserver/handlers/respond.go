package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"fitpet/internal/service"
)

// apiError is the uniform payload for every 4xx response.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func badRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, apiError{Code: "BAD_REQUEST", Message: message})
}

// translateError maps service failures to the uniform error payload.
// Unknown errors are deployment faults or bugs and leave unsanitized
// with a 500 so they surface loudly.
func translateError(w http.ResponseWriter, lg *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		respondJSON(w, http.StatusConflict, apiError{Code: "CONFLICT", Message: "Email already registered"})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, apiError{Code: "UNAUTHORIZED", Message: "Invalid credentials"})
	case errors.Is(err, service.ErrPetNotFound):
		respondJSON(w, http.StatusNotFound, apiError{Code: "NOT_FOUND", Message: "Pet not found"})
	default:
		lg.Errorw("unhandled error", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
