package handlers

import (
	"encoding/json"
	"net/http"

	"shikshamitra/internal/middleware"
)

// Home handles GET /api/v1/home (protected)
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	username, ok := r.Context().Value(middleware.UsernameKey).(string)
	if !ok || username == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"username": username,
		"message":  "Welcome, " + username + "! Choose an option from the sidebar.",
	})
}
