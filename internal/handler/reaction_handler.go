package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// The reaction endpoints answer with the optimistic state right away; the
// counter mutation keeps running after the response is written.

func (h *Handlers) ToggleAphorismLike(w http.ResponseWriter, r *http.Request) {
	aphorismID := mux.Vars(r)["id"]

	state, err := h.ReactionService.ToggleAphorismLike(r.Context(), aphorismID)
	if err != nil {
		writeLookupError(w, err, "Aphorism not found")
		return
	}

	WriteSuccess(w, state, http.StatusOK)
}

func (h *Handlers) ToggleReflectionLike(w http.ResponseWriter, r *http.Request) {
	reflectionID := mux.Vars(r)["id"]

	state, err := h.ReactionService.ToggleReflectionLike(r.Context(), reflectionID)
	if err != nil {
		writeLookupError(w, err, "Reflection not found")
		return
	}

	WriteSuccess(w, state, http.StatusOK)
}

func (h *Handlers) ToggleReflectionDislike(w http.ResponseWriter, r *http.Request) {
	reflectionID := mux.Vars(r)["id"]

	state, err := h.ReactionService.ToggleReflectionDislike(r.Context(), reflectionID)
	if err != nil {
		writeLookupError(w, err, "Reflection not found")
		return
	}

	WriteSuccess(w, state, http.StatusOK)
}
