package models

import "time"

// Ticket is a persisted support request. Tickets are write-once: the store
// assigns ID and CreatedAt on insert and no update or delete path exists.
type Ticket struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Mobile    string    `json:"mobile,omitempty"`
	Issue     string    `gorm:"not null" json:"issue"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketInput carries the user-supplied ticket fields before validation.
type TicketInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Issue  string `json:"issue"`
}
