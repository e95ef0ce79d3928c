package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/truepass/chatbot-backend/internal/ai"
	"github.com/truepass/chatbot-backend/internal/intent"
	"github.com/truepass/chatbot-backend/internal/knowledge"
	"github.com/truepass/chatbot-backend/internal/metrics"
	"github.com/truepass/chatbot-backend/internal/models"
	"github.com/truepass/chatbot-backend/internal/session"
)

// historyWindow is the number of recent turns included in the prompt.
// Storage is unbounded; only the prompt context is windowed.
const historyWindow = 8

const emptyMessageReply = "I'd love to help! Please ask me anything about TruePass - NFTs, tickets, payments, or technical support."

const apologyTemplate = `I apologize, but I'm experiencing some technical difficulties right now.

**What you can try:**
- Refresh the page and ask your question again
- Check your internet connection
- Try asking a more specific question

**Need immediate help?**
- Check our Help Center for common solutions
- Contact TruePass support team
- Join our community Discord for real-time help

Error details: %v`

// ChatService routes a user turn to either a canned response or the
// intent pipeline plus the external completion collaborator.
type ChatService struct {
	Completer ai.Completer
	KB        *knowledge.Base
	Logger    zerolog.Logger
}

// Respond processes one turn for a session. It never fails: empty input
// and completion errors both degrade to fixed replies.
//
// The canned (shortcut) path deliberately leaves history, lastTopic and
// currentPage untouched; only the full pipeline mutates session state.
func (s *ChatService) Respond(ctx context.Context, sess *session.Session, message, currentPage string) string {
	done := sess.BeginTurn()
	defer done()

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return emptyMessageReply
	}

	lower := strings.ToLower(trimmed)
	if canned, ok := matchShortcut(lower); ok {
		metrics.ChatTurns.WithLabelValues(metrics.PathCanned).Inc()
		s.Logger.Debug().Str("session_id", sess.ID()).Msg("shortcut response")
		return canned
	}

	res := intent.Score(trimmed)
	metrics.IntentDetected.WithLabelValues(res.Intent).Inc()

	sess.SetCurrentPage(currentPage)

	prompt := buildSystemPrompt(s.KB, res, sess.Context().CurrentPage)
	history := sess.RecentHistory(historyWindow)

	start := time.Now()
	reply, err := s.Completer.Complete(ctx, prompt, history, trimmed)
	metrics.CompletionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		// Degrade to the apology without touching history, so a failed
		// turn leaves no dangling user message.
		metrics.CompletionFailures.Inc()
		metrics.ChatTurns.WithLabelValues(metrics.PathFallback).Inc()
		s.Logger.Warn().Err(err).
			Str("session_id", sess.ID()).
			Str("intent", res.Intent).
			Msg("completion call failed")
		return fmt.Sprintf(apologyTemplate, err)
	}

	sess.AppendExchange(trimmed, reply)
	sess.SetLastTopic(res.Intent)
	metrics.ChatTurns.WithLabelValues(metrics.PathCompletion).Inc()

	s.Logger.Info().
		Str("session_id", sess.ID()).
		Str("intent", res.Intent).
		Float64("confidence", res.Confidence).
		Int("entities", len(res.Entities)).
		Dur("completion_latency", time.Since(start)).
		Msg("chat turn completed")
	return reply
}

// ChatContext assembles the frontend context payload for a session.
func (s *ChatService) ChatContext(sess *session.Session) models.ChatContext {
	sctx := sess.Context()
	return models.ChatContext{
		SessionID:          sess.ID(),
		PlatformName:       session.Platform,
		CurrentPage:        sctx.CurrentPage,
		ConversationLength: sess.HistoryLen(),
		SuggestedQuestions: SuggestedQuestions(sctx.LastTopic),
		UserType:           sctx.UserType,
		LastTopic:          sctx.LastTopic,
		AvailableFeatures:  s.KB.FeatureNames(),
		SessionSummary:     sess.Summary(),
	}
}
