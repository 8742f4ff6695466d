package router

import (
	"fmt"
	"net/http"

	"shikshamitra/internal/handlers"
	"shikshamitra/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	// Public auth + FAQ surface
	r.Post("/api/v1/auth/register", handlers.Register)
	r.Post("/api/v1/auth/login", handlers.Login)
	r.Get("/api/v1/faqs", handlers.ListFAQs)
	r.Get("/api/v1/faqs/search", handlers.SearchFAQs)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)
		r.Get("/api/v1/home", handlers.Home)
		r.Get("/api/v1/predictor/groups", handlers.PredictorGroups)
		r.Post("/api/v1/predictor/predict", handlers.Predict)
		r.Post("/api/v1/chat/message", handlers.ChatMessage)
		r.Get("/api/v1/chat/history", handlers.ChatHistory)
		r.Post("/api/v1/tickets", handlers.SubmitTicket)
		r.Get("/api/v1/tickets/{id}", handlers.GetTicket)
		r.Get("/api/v1/tickets/{id}/qrcode", handlers.GetTicketQRCode)
		r.Post("/api/v1/auth/logout", handlers.Logout)
	})
	return r
}
