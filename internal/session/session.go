package session

import (
	"errors"
	"sync"
	"time"

	"github.com/truepass/chatbot-backend/internal/models"
)

// Platform name stamped on exports and chat context payloads.
const Platform = "TruePass"

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Session is one user's conversation state. History is append-only and
// chronological; feedback is an append-only log. All accessors are safe
// for concurrent use, and BeginTurn additionally serializes whole turns
// so a session is only ever processed by one turn at a time.
type Session struct {
	turnMu sync.Mutex
	mu     sync.RWMutex

	id        string
	startedAt time.Time
	context   models.SessionContext
	history   []models.ConversationTurn
	feedback  []models.FeedbackEntry

	// persist, when set, is invoked after every mutation with the lock
	// held. The redis store uses it for write-through snapshots.
	persist func(*Session)
}

func newSession(id string) *Session {
	return &Session{
		id:        id,
		startedAt: time.Now().UTC(),
		context: models.SessionContext{
			SessionID: id,
			UserType:  models.UserTypeNew,
		},
	}
}

// BeginTurn acquires the turn lock and returns the release func. The
// lock is held across the external completion call so each session has
// a single writer per turn; only store-level map locks must never span
// the call.
func (s *Session) BeginTurn() func() {
	s.turnMu.Lock()
	return s.turnMu.Unlock
}

func (s *Session) ID() string { return s.id }

func (s *Session) StartedAt() time.Time { return s.startedAt }

// Context returns a copy of the session's mutable context fields.
func (s *Session) Context() models.SessionContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.context
}

func (s *Session) SetCurrentPage(page string) {
	if page == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context.CurrentPage = page
	s.persistLocked()
}

func (s *Session) SetLastTopic(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context.LastTopic = topic
	s.persistLocked()
}

// History returns a copy of the full conversation history.
func (s *Session) History() []models.ConversationTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ConversationTurn, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// RecentHistory returns up to n most recent turns, oldest first.
func (s *Session) RecentHistory(n int) []models.ConversationTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := len(s.history) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.ConversationTurn, len(s.history)-start)
	copy(out, s.history[start:])
	return out
}

// AppendExchange records a completed user/assistant exchange. Both
// turns land atomically so a failed completion never leaves a dangling
// user turn.
func (s *Session) AppendExchange(userMsg, assistantMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history,
		models.ConversationTurn{Role: models.RoleUser, Content: userMsg},
		models.ConversationTurn{Role: models.RoleAssistant, Content: assistantMsg},
	)
	s.persistLocked()
}

// AddFeedback validates and appends one feedback entry.
func (s *Session) AddFeedback(messageID string, rating int, comment string) (models.FeedbackEntry, error) {
	if rating < 1 || rating > 5 {
		return models.FeedbackEntry{}, ErrInvalidRating
	}
	entry := models.FeedbackEntry{
		MessageID: messageID,
		Rating:    rating,
		Comment:   comment,
		Timestamp: time.Now().UTC(),
		SessionID: s.id,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, entry)
	s.persistLocked()
	return entry, nil
}

func (s *Session) Feedback() []models.FeedbackEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FeedbackEntry, len(s.feedback))
	copy(out, s.feedback)
	return out
}

// Summary aggregates the session's analytics block.
func (s *Session) Summary() models.SessionSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := models.SessionSummary{
		SessionDuration:   time.Since(s.startedAt).Round(time.Second).String(),
		MessagesExchanged: len(s.history),
		UserContext:       s.context,
	}
	if n := len(s.history); n > 0 {
		last := s.history[n-1]
		sum.LastInteraction = &last
	}
	return sum
}

// Export aggregates the full session for the admin export endpoint.
// Read-only: no side effects. AverageRating stays nil with no feedback
// so an empty session can never divide by zero.
func (s *Session) Export() models.SessionExport {
	summary := s.Summary()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var exp models.SessionExport
	now := time.Now().UTC()
	exp.SessionInfo.SessionID = s.id
	exp.SessionInfo.StartTime = s.startedAt
	exp.SessionInfo.EndTime = now
	exp.SessionInfo.Duration = now.Sub(s.startedAt).Round(time.Second).String()
	exp.SessionInfo.Platform = Platform

	exp.ConversationData.Messages = make([]models.ConversationTurn, len(s.history))
	copy(exp.ConversationData.Messages, s.history)
	exp.ConversationData.MessageCount = len(s.history)
	exp.ConversationData.UserContext = s.context

	exp.FeedbackData.FeedbackEntries = make([]models.FeedbackEntry, len(s.feedback))
	copy(exp.FeedbackData.FeedbackEntries, s.feedback)
	if len(s.feedback) > 0 {
		total := 0
		for _, f := range s.feedback {
			total += f.Rating
		}
		avg := float64(total) / float64(len(s.feedback))
		exp.FeedbackData.AverageRating = &avg
	}

	exp.Analytics = summary
	return exp
}

func (s *Session) persistLocked() {
	if s.persist != nil {
		s.persist(s)
	}
}
