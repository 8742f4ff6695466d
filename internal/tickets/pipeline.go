package tickets

import (
	"context"
	"fmt"
	"log"
	"strings"

	"shikshamitra/internal/models"
)

// TicketStore durably records tickets. Insert assigns identity and creation
// timestamp and is the pipeline's durability boundary.
type TicketStore interface {
	Insert(ctx context.Context, in models.TicketInput) (models.Ticket, error)
	FindByID(ctx context.Context, id uint) (models.Ticket, error)
}

// Notifier delivers a confirmation message. Its failure never undoes a
// completed insert.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Status of a submission outcome.
type Status string

const (
	StatusRejected              Status = "rejected"
	StatusPersistFailed         Status = "persist_failed"
	StatusCompleted             Status = "completed"
	StatusCompletedNotifyFailed Status = "completed_notify_failed"
)

// SubmissionOutcome is the pipeline's result. Ticket is set for every
// completed status; NotifyErr is set only when the ticket was stored but the
// confirmation could not be sent.
type SubmissionOutcome struct {
	Status     Status
	Reason     string
	Ticket     models.Ticket
	PersistErr error
	NotifyErr  error
}

// Pipeline runs validate, persist, notify in order for each submission.
type Pipeline struct {
	store    TicketStore
	notifier Notifier
}

func NewPipeline(store TicketStore, notifier Notifier) *Pipeline {
	return &Pipeline{store: store, notifier: notifier}
}

// Submit records a support request. Validation failures return before any
// side effect. A store failure is terminal for the attempt. A notifier
// failure is downgraded: the ticket is already durable, so the outcome still
// carries it, flagged so the caller can report the missing confirmation.
func (p *Pipeline) Submit(ctx context.Context, in models.TicketInput) SubmissionOutcome {
	if reason := validate(in); reason != "" {
		return SubmissionOutcome{Status: StatusRejected, Reason: reason}
	}

	ticket, err := p.store.Insert(ctx, in)
	if err != nil {
		return SubmissionOutcome{Status: StatusPersistFailed, PersistErr: err}
	}

	subject := "Issue Submission Confirmation"
	body := confirmationBody(ticket)
	if err := p.notifier.Send(ctx, ticket.Email, subject, body); err != nil {
		log.Println("ticket stored but confirmation mail failed:", err)
		return SubmissionOutcome{Status: StatusCompletedNotifyFailed, Ticket: ticket, NotifyErr: err}
	}
	return SubmissionOutcome{Status: StatusCompleted, Ticket: ticket}
}

// validate returns the rejection reason, or "" for a valid input. Mobile is
// optional and not validated beyond being a string.
func validate(in models.TicketInput) string {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return "name is required"
	case strings.TrimSpace(in.Email) == "":
		return "email is required"
	case strings.TrimSpace(in.Issue) == "":
		return "issue is required"
	}
	return ""
}

func confirmationBody(t models.Ticket) string {
	return fmt.Sprintf(
		"Hello %s,\n\nThank you for submitting your issue.\n\nYour Ticket Number: %d\nYour Issue: %s\n\nBest,\nShikshaMitra Support Team",
		t.Name, t.ID, t.Issue,
	)
}
