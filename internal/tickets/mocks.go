package tickets

import (
	"context"

	"shikshamitra/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTicketStore is a testify mock for TicketStore.
type MockTicketStore struct {
	mock.Mock
}

func (m *MockTicketStore) Insert(ctx context.Context, in models.TicketInput) (models.Ticket, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Ticket), args.Error(1)
}

func (m *MockTicketStore) FindByID(ctx context.Context, id uint) (models.Ticket, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Ticket), args.Error(1)
}

// MockNotifier is a testify mock for Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}
