package ai

import (
	"context"

	"github.com/truepass/chatbot-backend/internal/models"
)

// Completer is the external text-completion collaborator. It receives a
// system prompt, the recent history window and the new user message,
// and returns a single assistant message. Failures are generic: callers
// only need to know the call did not produce a completion.
type Completer interface {
	Complete(ctx context.Context, system string, history []models.ConversationTurn, message string) (string, error)
}
