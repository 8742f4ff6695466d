package tickets

import (
	"context"
	"errors"
	"testing"
	"time"

	"shikshamitra/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory TicketStore for durability assertions.
type memStore struct {
	nextID  uint
	tickets map[uint]models.Ticket
}

func newMemStore() *memStore {
	return &memStore{nextID: 1, tickets: make(map[uint]models.Ticket)}
}

func (s *memStore) Insert(_ context.Context, in models.TicketInput) (models.Ticket, error) {
	t := models.Ticket{ID: s.nextID, Name: in.Name, Email: in.Email, Mobile: in.Mobile, Issue: in.Issue, CreatedAt: time.Now()}
	s.tickets[t.ID] = t
	s.nextID++
	return t, nil
}

func (s *memStore) FindByID(_ context.Context, id uint) (models.Ticket, error) {
	t, ok := s.tickets[id]
	if !ok {
		return models.Ticket{}, errors.New("ticket not found")
	}
	return t, nil
}

func validInput() models.TicketInput {
	return models.TicketInput{
		Name:   "Asha",
		Email:  "asha@example.com",
		Mobile: "9876543210",
		Issue:  "Cannot change my subject group",
	}
}

func TestPipelineSubmit(t *testing.T) {
	t.Run("successful submission sends a confirmation", func(t *testing.T) {
		store := new(MockTicketStore)
		notifier := new(MockNotifier)
		in := validInput()
		stored := models.Ticket{ID: 7, Name: in.Name, Email: in.Email, Mobile: in.Mobile, Issue: in.Issue, CreatedAt: time.Now()}

		store.On("Insert", mock.Anything, in).Return(stored, nil)
		notifier.On("Send", mock.Anything, in.Email, "Issue Submission Confirmation", mock.AnythingOfType("string")).Return(nil)

		outcome := NewPipeline(store, notifier).Submit(context.Background(), in)

		assert.Equal(t, StatusCompleted, outcome.Status)
		assert.Equal(t, stored, outcome.Ticket)
		assert.NoError(t, outcome.NotifyErr)
		store.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("confirmation body names the candidate and the ticket", func(t *testing.T) {
		store := new(MockTicketStore)
		notifier := new(MockNotifier)
		in := validInput()
		stored := models.Ticket{ID: 42, Name: in.Name, Email: in.Email, Issue: in.Issue}

		store.On("Insert", mock.Anything, in).Return(stored, nil)
		var gotBody string
		notifier.On("Send", mock.Anything, in.Email, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { gotBody = args.String(3) }).
			Return(nil)

		outcome := NewPipeline(store, notifier).Submit(context.Background(), in)

		require.Equal(t, StatusCompleted, outcome.Status)
		assert.Contains(t, gotBody, "Hello Asha")
		assert.Contains(t, gotBody, "Ticket Number: 42")
		assert.Contains(t, gotBody, in.Issue)
	})

	t.Run("notifier failure does not lose the stored ticket", func(t *testing.T) {
		store := new(MockTicketStore)
		notifier := new(MockNotifier)
		in := validInput()
		stored := models.Ticket{ID: 9, Name: in.Name, Email: in.Email, Issue: in.Issue}

		store.On("Insert", mock.Anything, in).Return(stored, nil)
		notifier.On("Send", mock.Anything, in.Email, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		outcome := NewPipeline(store, notifier).Submit(context.Background(), in)

		assert.Equal(t, StatusCompletedNotifyFailed, outcome.Status)
		assert.Equal(t, stored, outcome.Ticket)
		assert.EqualError(t, outcome.NotifyErr, "smtp down")
		store.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("ticket is durable even when every notification fails", func(t *testing.T) {
		store := newMemStore()
		notifier := new(MockNotifier)
		notifier.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("mail relay unreachable"))
		in := validInput()

		outcome := NewPipeline(store, notifier).Submit(context.Background(), in)

		require.Equal(t, StatusCompletedNotifyFailed, outcome.Status)
		found, err := store.FindByID(context.Background(), outcome.Ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, in.Issue, found.Issue)
	})

	t.Run("missing required fields reject before any side effect", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*models.TicketInput)
			reason string
		}{
			{"empty name", func(in *models.TicketInput) { in.Name = "" }, "name is required"},
			{"whitespace name", func(in *models.TicketInput) { in.Name = "   " }, "name is required"},
			{"empty email", func(in *models.TicketInput) { in.Email = "" }, "email is required"},
			{"empty issue", func(in *models.TicketInput) { in.Issue = "  " }, "issue is required"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store := new(MockTicketStore)
				notifier := new(MockNotifier)
				in := validInput()
				tc.mutate(&in)

				outcome := NewPipeline(store, notifier).Submit(context.Background(), in)

				assert.Equal(t, StatusRejected, outcome.Status)
				assert.Equal(t, tc.reason, outcome.Reason)
				store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
				notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("mobile is optional", func(t *testing.T) {
		store := new(MockTicketStore)
		notifier := new(MockNotifier)
		in := validInput()
		in.Mobile = ""

		store.On("Insert", mock.Anything, in).Return(models.Ticket{ID: 1, Name: in.Name, Email: in.Email, Issue: in.Issue}, nil)
		notifier.On("Send", mock.Anything, in.Email, mock.Anything, mock.Anything).Return(nil)

		outcome := NewPipeline(store, notifier).Submit(context.Background(), in)
		assert.Equal(t, StatusCompleted, outcome.Status)
	})

	t.Run("store failure is terminal and skips notification", func(t *testing.T) {
		store := new(MockTicketStore)
		notifier := new(MockNotifier)
		in := validInput()

		store.On("Insert", mock.Anything, in).Return(models.Ticket{}, errors.New("connection refused"))

		outcome := NewPipeline(store, notifier).Submit(context.Background(), in)

		assert.Equal(t, StatusPersistFailed, outcome.Status)
		assert.EqualError(t, outcome.PersistErr, "connection refused")
		notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
