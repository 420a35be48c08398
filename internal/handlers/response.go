package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/briitney/daybook-backend/internal/apperror"
)

// errorResponse is the envelope for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// writeError logs the error and maps it to a status code and the {error}
// envelope. Nothing escapes as an unstructured failure.
func writeError(w http.ResponseWriter, err error) {
	log.Printf("request failed: %v", err)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrUpload), errors.Is(err, apperror.ErrPersistence):
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, errorResponse{Error: appErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Something went wrong!"})
}
