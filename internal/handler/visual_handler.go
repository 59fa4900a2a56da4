package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"pensees/internal/prompt"
)

type GenerateCardRequest struct {
	prompt.Params
}

// GenerateCard renders the brief and calls the image model. The result is
// a preview only; nothing is persisted until SaveCard.
func (h *Handlers) GenerateCard(w http.ResponseWriter, r *http.Request) {
	var req GenerateCardRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Citation) == "" || strings.TrimSpace(req.Author) == "" {
		WriteError(w, "Citation and author are required", http.StatusBadRequest)
		return
	}

	result, err := h.VisualService.GenerateCard(r.Context(), req.Params)
	if err != nil {
		if strings.Contains(err.Error(), "not configured") {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		} else {
			WriteError(w, err.Error(), http.StatusBadGateway)
		}
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

type SaveCardRequest struct {
	DataURI string        `json:"dataUri" validate:"required"`
	Prompt  string        `json:"prompt" validate:"required"`
	Params  prompt.Params `json:"params"`
}

// SaveCard attaches a previewed card to an aphorism's library.
func (h *Handlers) SaveCard(w http.ResponseWriter, r *http.Request) {
	aphorismID := mux.Vars(r)["id"]

	var req SaveCardRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Image payload and prompt are required", http.StatusBadRequest)
		return
	}

	image, err := h.VisualService.SaveToAphorismLibrary(r.Context(), aphorismID, req.DataURI, req.Prompt, req.Params)
	if err != nil {
		if strings.Contains(err.Error(), "library already holds") {
			WriteError(w, err.Error(), http.StatusConflict)
			return
		}
		writeLookupError(w, err, "Aphorism not found")
		return
	}

	WriteSuccess(w, image, http.StatusCreated)
}

func (h *Handlers) DeleteSavedImage(w http.ResponseWriter, r *http.Request) {
	imageID := mux.Vars(r)["id"]

	if err := h.VisualService.DeleteSavedImage(r.Context(), imageID); err != nil {
		writeLookupError(w, err, "Image not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddReflectionImage accepts a multipart upload and appends the stored
// URL to the reflection, up to the four-image cap.
func (h *Handlers) AddReflectionImage(w http.ResponseWriter, r *http.Request) {
	reflectionID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "An image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.Cfg.MaxUploadSize {
		WriteError(w, "Image is too large", http.StatusRequestEntityTooLarge)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.Cfg.MaxUploadSize))
	if err != nil {
		WriteError(w, "Could not read uploaded file", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")

	imageURL, err := h.VisualService.AddReflectionImage(r.Context(), reflectionID, header.Filename, contentType, data)
	if err != nil {
		if strings.Contains(err.Error(), "at most") {
			WriteError(w, err.Error(), http.StatusConflict)
			return
		}
		if strings.Contains(err.Error(), "unsupported image type") {
			WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeLookupError(w, err, "Reflection not found")
		return
	}

	WriteSuccess(w, map[string]string{"imageUrl": imageURL}, http.StatusCreated)
}

func (h *Handlers) SetPrimaryImage(w http.ResponseWriter, r *http.Request) {
	aphorismID := mux.Vars(r)["id"]

	var req struct {
		ImageURL string `json:"imageUrl" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "imageUrl is required", http.StatusBadRequest)
		return
	}

	if err := h.VisualService.SetAphorismPrimaryImage(r.Context(), aphorismID, req.ImageURL); err != nil {
		writeLookupError(w, err, "Aphorism not found")
		return
	}

	WriteSuccess(w, map[string]string{"primaryImageUrl": req.ImageURL}, http.StatusOK)
}
