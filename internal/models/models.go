package models

import "time"

// User types tracked on a session.
const (
	UserTypeNew       = "new"
	UserTypeReturning = "returning"
	UserTypeTechnical = "technical"
)

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is a single message in a session's history.
// Turns are appended in chronological order and never mutated.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionContext carries the lightweight per-session state that survives
// between turns but not between process restarts.
type SessionContext struct {
	SessionID   string `json:"session_id"`
	CurrentPage string `json:"current_page,omitempty"`
	UserType    string `json:"user_type"`
	LastTopic   string `json:"last_topic,omitempty"`
}

// FeedbackEntry is one rating submitted against an assistant message.
type FeedbackEntry struct {
	MessageID string    `json:"message_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
}

// SessionSummary is the read-only analytics block of a session.
type SessionSummary struct {
	SessionDuration   string            `json:"session_duration"`
	MessagesExchanged int               `json:"messages_exchanged"`
	UserContext       SessionContext    `json:"user_context"`
	LastInteraction   *ConversationTurn `json:"last_interaction"`
}

// SessionExport is the full aggregation returned by the admin export
// endpoint. AverageRating is nil when no feedback exists.
type SessionExport struct {
	SessionInfo struct {
		SessionID string    `json:"session_id"`
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
		Duration  string    `json:"duration"`
		Platform  string    `json:"platform"`
	} `json:"session_info"`
	ConversationData struct {
		Messages     []ConversationTurn `json:"messages"`
		MessageCount int                `json:"message_count"`
		UserContext  SessionContext     `json:"user_context"`
	} `json:"conversation_data"`
	FeedbackData struct {
		FeedbackEntries []FeedbackEntry `json:"feedback_entries"`
		AverageRating   *float64        `json:"average_rating"`
	} `json:"feedback_data"`
	Analytics SessionSummary `json:"analytics"`
}

// ChatContext is the frontend-facing context block attached to every
// chat response.
type ChatContext struct {
	SessionID          string         `json:"session_id"`
	PlatformName       string         `json:"platform_name"`
	CurrentPage        string         `json:"current_page,omitempty"`
	ConversationLength int            `json:"conversation_length"`
	SuggestedQuestions []string       `json:"suggested_questions"`
	UserType           string         `json:"user_type"`
	LastTopic          string         `json:"last_topic,omitempty"`
	AvailableFeatures  []string       `json:"available_features"`
	SessionSummary     SessionSummary `json:"session_summary"`
}

type ChatRequest struct {
	SessionID   string `json:"session_id"`
	Message     string `json:"message"`
	CurrentPage string `json:"current_page"`
}

type ChatResponse struct {
	Success            bool        `json:"success"`
	Response           string      `json:"response"`
	SessionID          string      `json:"session_id"`
	SuggestedQuestions []string    `json:"suggested_questions"`
	Context            ChatContext `json:"context"`
	Timestamp          string      `json:"timestamp"`
}

type FeedbackRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	MessageID string `json:"message_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
