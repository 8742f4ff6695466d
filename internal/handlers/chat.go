package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"shikshamitra/internal/chat"
	"shikshamitra/internal/middleware"
)

// ChatMessage handles POST /api/v1/chat/message (protected)
// Body: { "message": "..." }
func ChatMessage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	username, ok := r.Context().Value(middleware.UsernameKey).(string)
	if !ok || username == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	message, _ := body["message"].(string)
	if strings.TrimSpace(message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	reply, err := Chat.Generate(r.Context(), chat.ChatRequest{
		Persona:     chat.Persona,
		UserMessage: message,
	})
	fallback := false
	if err != nil {
		// A collaborator failure never crashes the session; the user gets
		// the apologetic reply and the conversation continues.
		log.Println("chat generation failed:", err)
		reply = chat.FallbackReply
		fallback = true
	} else {
		reply = chat.FormatReply(reply)
	}

	if err := Sessions.Append(r.Context(), username,
		chat.Message{Role: "user", Content: message},
		chat.Message{Role: "assistant", Content: reply},
	); err != nil {
		log.Println("failed to append chat history:", err)
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"reply":    reply,
		"fallback": fallback,
	})
}

// ChatHistory handles GET /api/v1/chat/history (protected)
func ChatHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	username, ok := r.Context().Value(middleware.UsernameKey).(string)
	if !ok || username == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	msgs, err := Sessions.History(r.Context(), username)
	if err != nil {
		http.Error(w, "failed to load chat history", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"history": msgs})
}
