package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shikshamitra/internal/models"
	"shikshamitra/internal/predictor"
)

// PredictorGroups handles GET /api/v1/predictor/groups (protected). The
// frontend populates its SFS/GAS selector from this.
func PredictorGroups(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"groups": Catalog.GroupLabels()})
}

// Predict handles POST /api/v1/predictor/predict (protected)
// Body: { "gender": "male", "group_label": "SFS", "category": "OBC", "rank": 4000 }
func Predict(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var query models.EligibilityQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := predictor.ValidateQuery(query); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	rows, err := predictor.Match(Catalog.Records(), query)
	if err != nil {
		var mismatch *predictor.SchemaMismatchError
		if errors.As(err, &mismatch) {
			http.Error(w, "Category column not found", http.StatusInternalServerError)
			return
		}
		http.Error(w, "prediction failed", http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"count":   len(rows),
		"results": rows,
	})
}
