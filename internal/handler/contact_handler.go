package handlers

import (
	"encoding/json"
	"net/http"

	"pensees/internal/service"
)

func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Name, email, subject and message are required", http.StatusBadRequest)
		return
	}

	if err := h.ContactService.Send(r.Context(), req); err != nil {
		WriteError(w, "Could not deliver your message, please try again later", http.StatusBadGateway)
		return
	}

	WriteSuccess(w, map[string]string{"status": "sent"}, http.StatusOK)
}
