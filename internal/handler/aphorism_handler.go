package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pensees/internal/models"
	"pensees/internal/pagination"
	"pensees/internal/service"
)

// ListResponse wraps every windowed list: the revealed slice, the size of
// the full filtered set and the current window, so the client knows
// whether another "load more" is worth issuing.
type ListResponse struct {
	Items   interface{} `json:"items"`
	Total   int         `json:"total"`
	Visible int         `json:"visible"`
}

// windowParam reads the requested window size, falling back to the
// surface's initial constant.
func windowParam(r *http.Request, initial, total int) int {
	requested, err := strconv.Atoi(r.URL.Query().Get("visible"))
	if err != nil {
		requested = initial
	}
	return pagination.Clamp(requested, initial, total)
}

// GetAphorisms is the gallery path: the full set is loaded and the tag
// filter is applied in memory, case-insensitively.
func (h *Handlers) GetAphorisms(w http.ResponseWriter, r *http.Request) {
	aphorisms, err := h.ContentService.ListAphorisms(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	aphorisms = service.FilterAphorismsByTag(aphorisms, r.URL.Query().Get("tag"))

	visible := windowParam(r, pagination.GalleryInitial, len(aphorisms))

	WriteSuccess(w, ListResponse{
		Items:   pagination.Window(aphorisms, visible),
		Total:   len(aphorisms),
		Visible: visible,
	}, http.StatusOK)
}

func (h *Handlers) GetFeaturedAphorisms(w http.ResponseWriter, r *http.Request) {
	aphorisms, err := h.ContentService.ListFeaturedAphorisms(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, aphorisms, http.StatusOK)
}

// GetThemeAphorisms is the theme-page path: the tag predicate runs in the
// database, the window starts smaller.
func (h *Handlers) GetThemeAphorisms(w http.ResponseWriter, r *http.Request) {
	label := mux.Vars(r)["tag"]

	aphorisms, err := h.ContentService.ListAphorismsByTag(r.Context(), label)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	visible := windowParam(r, pagination.ThemeInitial, len(aphorisms))

	WriteSuccess(w, ListResponse{
		Items:   pagination.Window(aphorisms, visible),
		Total:   len(aphorisms),
		Visible: visible,
	}, http.StatusOK)
}

func (h *Handlers) GetAphorism(w http.ResponseWriter, r *http.Request) {
	aphorismID := mux.Vars(r)["id"]

	aphorism, err := h.ContentService.GetAphorism(r.Context(), aphorismID)
	if err != nil {
		writeLookupError(w, err, "Aphorism not found")
		return
	}

	WriteSuccess(w, aphorism, http.StatusOK)
}

func (h *Handlers) CreateAphorism(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string   `json:"text" validate:"required"`
		Title    *string  `json:"title"`
		Tags     []string `json:"tags"`
		Featured bool     `json:"featured"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Aphorism text is required", http.StatusBadRequest)
		return
	}

	aphorism := &models.Aphorism{
		Text:     req.Text,
		Title:    req.Title,
		Tags:     req.Tags,
		Featured: req.Featured,
	}

	if err := h.AphorismRepo.Create(r.Context(), aphorism); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, aphorism, http.StatusCreated)
}

func (h *Handlers) UpdateAphorism(w http.ResponseWriter, r *http.Request) {
	aphorismID := mux.Vars(r)["id"]

	var req struct {
		Text     string   `json:"text" validate:"required"`
		Title    *string  `json:"title"`
		Tags     []string `json:"tags"`
		Featured bool     `json:"featured"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Aphorism text is required", http.StatusBadRequest)
		return
	}

	aphorism, err := h.AphorismRepo.GetByID(r.Context(), aphorismID)
	if err != nil {
		writeLookupError(w, err, "Aphorism not found")
		return
	}

	aphorism.Text = req.Text
	aphorism.Title = req.Title
	aphorism.Tags = req.Tags
	aphorism.Featured = req.Featured

	if err := h.AphorismRepo.Update(r.Context(), aphorism); err != nil {
		writeLookupError(w, err, "Aphorism not found")
		return
	}

	WriteSuccess(w, aphorism, http.StatusOK)
}

func (h *Handlers) DeleteAphorism(w http.ResponseWriter, r *http.Request) {
	aphorismID := mux.Vars(r)["id"]

	if err := h.AphorismRepo.Delete(r.Context(), aphorismID); err != nil {
		writeLookupError(w, err, "Aphorism not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
