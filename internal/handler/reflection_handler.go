package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pensees/internal/models"
	"pensees/internal/pagination"
	"pensees/internal/service"
)

// GetReflections lists published reflections with their comments attached,
// filtered in memory by tag and windowed.
func (h *Handlers) GetReflections(w http.ResponseWriter, r *http.Request) {
	reflections, err := h.ContentService.ListReflections(r.Context(), true)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	reflections = service.FilterReflectionsByTag(reflections, r.URL.Query().Get("tag"))

	visible := windowParam(r, pagination.GalleryInitial, len(reflections))

	WriteSuccess(w, ListResponse{
		Items:   pagination.Window(reflections, visible),
		Total:   len(reflections),
		Visible: visible,
	}, http.StatusOK)
}

// GetAllReflections is the dashboard list: drafts included.
func (h *Handlers) GetAllReflections(w http.ResponseWriter, r *http.Request) {
	reflections, err := h.ContentService.ListReflections(r.Context(), false)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, reflections, http.StatusOK)
}

func (h *Handlers) GetThemeReflections(w http.ResponseWriter, r *http.Request) {
	label := mux.Vars(r)["tag"]

	reflections, err := h.ContentService.ListReflectionsByTag(r.Context(), label)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	visible := windowParam(r, pagination.ThemeInitial, len(reflections))

	WriteSuccess(w, ListResponse{
		Items:   pagination.Window(reflections, visible),
		Total:   len(reflections),
		Visible: visible,
	}, http.StatusOK)
}

func (h *Handlers) GetReflectionBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	reflection, err := h.ContentService.GetReflectionBySlug(r.Context(), slug)
	if err != nil {
		writeLookupError(w, err, "Reflection not found")
		return
	}

	WriteSuccess(w, reflection, http.StatusOK)
}

func (h *Handlers) GetReflection(w http.ResponseWriter, r *http.Request) {
	reflectionID := mux.Vars(r)["id"]

	reflection, err := h.ContentService.GetReflectionByID(r.Context(), reflectionID)
	if err != nil {
		writeLookupError(w, err, "Reflection not found")
		return
	}

	WriteSuccess(w, reflection, http.StatusOK)
}

func (h *Handlers) CreateReflection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title     string   `json:"title" validate:"required"`
		Body      string   `json:"body" validate:"required"`
		Slug      string   `json:"slug"`
		Tags      []string `json:"tags"`
		Published bool     `json:"published"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title and body are required", http.StatusBadRequest)
		return
	}

	if req.Slug == "" {
		req.Slug = service.Slugify(req.Title)
	}

	reflection := &models.Reflection{
		Title:     req.Title,
		Body:      req.Body,
		Slug:      req.Slug,
		Tags:      req.Tags,
		Published: req.Published,
	}

	if err := h.ReflectionRepo.Create(r.Context(), reflection); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, reflection, http.StatusCreated)
}

func (h *Handlers) UpdateReflection(w http.ResponseWriter, r *http.Request) {
	reflectionID := mux.Vars(r)["id"]

	var req struct {
		Title     string   `json:"title" validate:"required"`
		Body      string   `json:"body" validate:"required"`
		Slug      string   `json:"slug"`
		Tags      []string `json:"tags"`
		Published bool     `json:"published"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title and body are required", http.StatusBadRequest)
		return
	}

	reflection, err := h.ReflectionRepo.GetByID(r.Context(), reflectionID)
	if err != nil {
		writeLookupError(w, err, "Reflection not found")
		return
	}

	reflection.Title = req.Title
	reflection.Body = req.Body
	reflection.Tags = req.Tags
	reflection.Published = req.Published
	if req.Slug != "" {
		reflection.Slug = req.Slug
	}

	if err := h.ReflectionRepo.Update(r.Context(), reflection); err != nil {
		writeLookupError(w, err, "Reflection not found")
		return
	}

	WriteSuccess(w, reflection, http.StatusOK)
}

func (h *Handlers) PublishReflection(w http.ResponseWriter, r *http.Request) {
	reflectionID := mux.Vars(r)["id"]

	var req struct {
		Published bool `json:"published"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.ReflectionRepo.SetPublished(r.Context(), reflectionID, req.Published); err != nil {
		writeLookupError(w, err, "Reflection not found")
		return
	}

	WriteSuccess(w, map[string]bool{"published": req.Published}, http.StatusOK)
}

func (h *Handlers) DeleteReflection(w http.ResponseWriter, r *http.Request) {
	reflectionID := mux.Vars(r)["id"]

	if err := h.ReflectionRepo.Delete(r.Context(), reflectionID); err != nil {
		writeLookupError(w, err, "Reflection not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
