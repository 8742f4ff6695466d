package tickets

import (
	"context"
	"fmt"

	"shikshamitra/internal/models"

	"gorm.io/gorm"
)

// GormStore implements TicketStore on the shared Postgres database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(ctx context.Context, in models.TicketInput) (models.Ticket, error) {
	ticket := models.Ticket{
		Name:   in.Name,
		Email:  in.Email,
		Mobile: in.Mobile,
		Issue:  in.Issue,
	}
	if err := s.db.WithContext(ctx).Create(&ticket).Error; err != nil {
		return models.Ticket{}, fmt.Errorf("failed to insert ticket: %w", err)
	}
	return ticket, nil
}

func (s *GormStore) FindByID(ctx context.Context, id uint) (models.Ticket, error) {
	var ticket models.Ticket
	if err := s.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}
