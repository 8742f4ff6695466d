package auth

import (
	"context"

	"shikshamitra/internal/models"

	"gorm.io/gorm"
)

// GormStore implements CredentialStore on the shared Postgres database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByUsername(ctx context.Context, username string) (models.Credential, error) {
	var cred models.Credential
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&cred).Error
	return cred, err
}

func (s *GormStore) Insert(ctx context.Context, cred models.Credential) error {
	return s.db.WithContext(ctx).Create(&cred).Error
}
