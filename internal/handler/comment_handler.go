package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pensees/internal/models"
)

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	reflectionID := mux.Vars(r)["id"]

	var req struct {
		Author string `json:"author"`
		Body   string `json:"body" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Comment body is required", http.StatusBadRequest)
		return
	}

	// The reflection must exist and be readable before accepting a comment.
	reflection, err := h.ReflectionRepo.GetByID(r.Context(), reflectionID)
	if err != nil {
		writeLookupError(w, err, "Reflection not found")
		return
	}
	if !reflection.Published {
		WriteError(w, "Reflection not found", http.StatusNotFound)
		return
	}

	comment := &models.Comment{
		ReflectionID: reflectionID,
		Author:       req.Author,
		Body:         req.Body,
	}

	if err := h.CommentRepo.Create(r.Context(), comment); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	reflectionID := mux.Vars(r)["id"]

	comments, err := h.CommentRepo.GetByReflectionID(r.Context(), reflectionID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) GetAllComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]

	if err := h.CommentRepo.Delete(r.Context(), commentID); err != nil {
		writeLookupError(w, err, "Comment not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
