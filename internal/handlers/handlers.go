package handlers

import (
	"shikshamitra/internal/auth"
	"shikshamitra/internal/catalog"
	"shikshamitra/internal/chat"
	"shikshamitra/internal/tickets"
)

// Package-level collaborators, wired once from main before the router is
// mounted (same lifetime as db.DB).
var (
	Catalog  *catalog.Catalog
	Pipeline *tickets.Pipeline
	Tickets  tickets.TicketStore
	Auth     *auth.Service
	Chat     chat.Generator
	Sessions *chat.SessionStore

	// AdminRegisterToken gates registration when non-empty.
	AdminRegisterToken string
)
