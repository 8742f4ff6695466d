package chat

import "context"

// Persona is the stable system context sent with every chat request. The
// assistant answers as the ShikshaMitra REAP counselling helper and is told
// to point users at the ticket flow when it has no answer.
const Persona = "If the user says 'hey' or 'hello', respond that you are ShikshaMitra " +
	"(REAP admission counselling helper). " +
	"I am applying for REAP (Rajasthan's engineering colleges' admission) counselling in Rajasthan. " +
	"Give a brief result. Generate data only on the basis of REAP counselling which you have or is available on the internet. " +
	"I don't want real-time data, I just want a rough idea. Even if you have no idea or it may vary, " +
	"if you have zero idea, you can say that you don't know about this and ask the user to raise a ticket."

// FallbackReply is returned to the user when generation fails; the session
// itself keeps going.
const FallbackReply = "Sorry, I could not process that right now. Please try again, or raise a ticket if the problem persists."

// ChatRequest separates the assistant's system context from the raw user
// message; the client layer decides how the two are combined.
type ChatRequest struct {
	Persona     string
	UserMessage string
}

// Generator produces an assistant reply for a chat request.
type Generator interface {
	Generate(ctx context.Context, req ChatRequest) (string, error)
}

// GenerationError wraps a collaborator failure during reply generation.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "chat generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
