package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"pensees/internal/models"
)

// GetTags answers the tag cloud: registry labels with usage counts and
// derived font sizes.
func (h *Handlers) GetTags(w http.ResponseWriter, r *http.Request) {
	weights, err := h.ContentService.TagCloud(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, weights, http.StatusOK)
}

func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Tag label is required", http.StatusBadRequest)
		return
	}

	tag := &models.Tag{Label: strings.TrimSpace(req.Label)}

	if err := h.TagRepo.Create(r.Context(), tag); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			WriteError(w, "Tag already exists", http.StatusConflict)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, tag, http.StatusCreated)
}

// DeleteTag removes the registry entry only; content keeps its
// denormalized labels and tag queries on them still match.
func (h *Handlers) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tagID := mux.Vars(r)["id"]

	if err := h.TagRepo.Delete(r.Context(), tagID); err != nil {
		writeLookupError(w, err, "Tag not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
