package config

import (
	"errors"
	"os"
)

// Config is built once in main from the environment (after godotenv has
// loaded .env) and passed down; nothing re-reads the environment later.
type Config struct {
	ListenAddr   string
	DatabaseURL  string
	RedisAddr    string
	RedisPass    string
	JWTSecret    string
	GeminiAPIKey string
	CatalogPath  string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string
	MailSender   string

	// When set, registration requires a matching X-Admin-Token header.
	AdminRegisterToken string
}

func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:         getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisAddr:          getenv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		CatalogPath:        getenv("CATALOG_PATH", "data/cutoffs_modified.csv"),
		MailHost:           getenv("MAIL_HOST", "smtp.gmail.com"),
		MailPort:           getenv("MAIL_PORT", "465"),
		MailUsername:       os.Getenv("MAIL_USERNAME"),
		MailPassword:       os.Getenv("MAIL_PASSWORD"),
		MailSender:         os.Getenv("MAIL_SENDER"),
		AdminRegisterToken: os.Getenv("ADMIN_REGISTER_TOKEN"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.MailSender == "" {
		cfg.MailSender = cfg.MailUsername
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
