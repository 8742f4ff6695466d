package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"shikshamitra/internal/auth"
	"shikshamitra/internal/catalog"
	"shikshamitra/internal/chat"
	"shikshamitra/internal/config"
	"shikshamitra/internal/db"
	"shikshamitra/internal/handlers"
	"shikshamitra/internal/mailer"
	"shikshamitra/internal/router"
	"shikshamitra/internal/tickets"
)

func main() {
	// .env is optional; a containerized deploy sets real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error: ", err)
	}

	db.Init(cfg.DatabaseURL)

	cutoffs, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("failed to load cutoff catalog: ", err)
	}
	log.Printf("loaded cutoff catalog: %d rows, %d groups", len(cutoffs.Records()), len(cutoffs.GroupLabels()))

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed: ", err)
	}

	gemini, err := chat.NewGemini(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal("gemini client init failed: ", err)
	}
	defer gemini.Close()

	ticketStore := tickets.NewGormStore(db.DB)
	notifier := mailer.New(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword, cfg.MailSender)

	handlers.Catalog = cutoffs
	handlers.Tickets = ticketStore
	handlers.Pipeline = tickets.NewPipeline(ticketStore, notifier)
	handlers.Auth = auth.NewService(auth.NewGormStore(db.DB))
	handlers.Chat = gemini
	handlers.Sessions = chat.NewSessionStore(rdb)
	handlers.AdminRegisterToken = cfg.AdminRegisterToken

	log.Println("listening on", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, router.RegisterRouter()); err != nil {
		log.Fatal(err)
	}
}
