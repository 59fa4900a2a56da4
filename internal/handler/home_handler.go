package handlers

import "net/http"

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, "Page not found", http.StatusNotFound)
		return
	}

	WriteSuccess(w, map[string]string{
		"name":   "pensees",
		"status": "ok",
	}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "healthy"}, http.StatusOK)
}
