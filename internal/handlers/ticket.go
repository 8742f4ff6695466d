package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"shikshamitra/internal/models"
	"shikshamitra/internal/tickets"
)

// SubmitTicket handles POST /api/v1/tickets (protected)
// Body: { "name": "...", "email": "...", "mobile": "...", "issue": "..." }
func SubmitTicket(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var in models.TicketInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	outcome := Pipeline.Submit(r.Context(), in)
	switch outcome.Status {
	case tickets.StatusRejected:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": outcome.Reason})
	case tickets.StatusPersistFailed:
		log.Println("ticket persist failed:", outcome.PersistErr)
		http.Error(w, "failed to save issue", http.StatusInternalServerError)
	case tickets.StatusCompletedNotifyFailed:
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ticket":     outcome.Ticket,
			"email_sent": false,
			"warning":    "Issue saved, but confirmation email failed",
		})
	case tickets.StatusCompleted:
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ticket":     outcome.Ticket,
			"email_sent": true,
			"message":    "Issue submitted. Confirmation email sent.",
		})
	}
}

// GetTicket handles GET /api/v1/tickets/{id} (protected)
func GetTicket(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid ticket id", http.StatusBadRequest)
		return
	}

	ticket, err := Tickets.FindByID(r.Context(), uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "ticket not found"})
		return
	}
	if err != nil {
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(ticket)
}
