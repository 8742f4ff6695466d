package handlers

import (
	"encoding/json"
	"net/http"

	"shikshamitra/internal/faq"
)

// ListFAQs handles GET /api/v1/faqs
func ListFAQs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"sections": faq.Sections(),
		"faqs":     faq.All(),
	})
}

// SearchFAQs handles GET /api/v1/faqs/search?q=...
func SearchFAQs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, "q parameter is required", http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"results": faq.Search(q, 5)})
}
