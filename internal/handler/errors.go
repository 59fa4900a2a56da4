package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pensees/internal/repository"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeLookupError maps a missing entity to the 404 view; everything else
// is an upstream failure.
func writeLookupError(w http.ResponseWriter, err error, notFoundMessage string) {
	if errors.Is(err, repository.ErrNotFound) {
		WriteError(w, notFoundMessage, http.StatusNotFound)
		return
	}
	WriteError(w, err.Error(), http.StatusInternalServerError)
}
