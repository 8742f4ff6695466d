package auth

import (
	"context"
	"errors"

	"shikshamitra/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrUsernameTaken is returned by Register when the username already exists.
var ErrUsernameTaken = errors.New("username already exists")

// CredentialStore holds username -> hashed-credential records.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (models.Credential, error)
	Insert(ctx context.Context, cred models.Credential) error
}

// Service implements registration and login over a credential store.
type Service struct {
	store CredentialStore
}

func NewService(store CredentialStore) *Service {
	return &Service{store: store}
}

// Register creates a credential for username. The uniqueness check is
// check-then-insert; the store's unique index backstops concurrent callers.
func (s *Service) Register(ctx context.Context, username, secret string) error {
	_, err := s.store.FindByUsername(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	insertErr := s.store.Insert(ctx, models.Credential{Username: username, HashedSecret: string(hashed)})
	if errors.Is(insertErr, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}
	return insertErr
}

// Login verifies username/secret against the store. Unknown usernames and
// wrong secrets both report false so a caller cannot probe which usernames
// exist. A store failure is reported separately.
func (s *Service) Login(ctx context.Context, username, secret string) (bool, error) {
	cred, err := s.store.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(cred.HashedSecret), []byte(secret)) == nil, nil
}
