package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/truepass/chatbot-backend/internal/models"
	"github.com/truepass/chatbot-backend/internal/service"
	"github.com/truepass/chatbot-backend/internal/session"
)

const (
	ServiceName    = "TruePass AI Chatbot"
	ServiceVersion = "1.0.0"
)

type Handler struct {
	Store     session.Store
	Chat      *service.ChatService
	Validator *validator.Validate
	Logger    zerolog.Logger
	AdminKey  string
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	count, err := h.Store.Count(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusServiceUnavailable, "session store unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"service":         ServiceName,
		"version":         ServiceVersion,
		"active_sessions": count,
		"timestamp":       now(),
	})
}

// @Summary Chat with the assistant
// @Description Routes a message through shortcut matching, intent scoring and the completion collaborator
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "chat turn"
// @Success 200 {object} models.ChatResponse
// @Failure 500 {object} map[string]any
// @Router /api/chat [post]
func (h *Handler) ChatTurn(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusInternalServerError, "Chat processing failed: invalid request body")
		return
	}

	sess, err := h.Store.GetOrCreate(c.Request.Context(), req.SessionID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("session lookup failed")
		writeError(c, http.StatusInternalServerError, "Chat processing failed: session store error")
		return
	}

	reply := h.Chat.Respond(c.Request.Context(), sess, req.Message, req.CurrentPage)
	ctx := h.Chat.ChatContext(sess)

	c.JSON(http.StatusOK, models.ChatResponse{
		Success:            true,
		Response:           reply,
		SessionID:          sess.ID(),
		SuggestedQuestions: ctx.SuggestedQuestions,
		Context:            ctx,
		Timestamp:          now(),
	})
}

// @Summary Suggested questions
// @Tags chat
// @Produce json
// @Param session_id query string false "session id"
// @Success 200 {object} map[string]any
// @Router /api/suggestions [get]
func (h *Handler) Suggestions(c *gin.Context) {
	lastTopic := ""
	if id := c.Query("session_id"); id != "" {
		if sess, ok, err := h.Store.Get(c.Request.Context(), id); err == nil && ok {
			lastTopic = sess.Context().LastTopic
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"suggestions": service.SuggestedQuestions(lastTopic),
		"timestamp":   now(),
	})
}

// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body models.FeedbackRequest true "feedback"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/feedback [post]
func (h *Handler) Feedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusInternalServerError, "Feedback processing failed: invalid request body")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusInternalServerError, "Feedback processing failed: "+err.Error())
		return
	}

	sess, ok, err := h.Store.Get(c.Request.Context(), req.SessionID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("session lookup failed")
		writeError(c, http.StatusInternalServerError, "Feedback processing failed: session store error")
		return
	}
	if !ok {
		writeError(c, http.StatusNotFound, "Session not found")
		return
	}

	entry, err := sess.AddFeedback(req.MessageID, req.Rating, req.Comment)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Feedback processing failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"feedback_id": entry.Timestamp.Format(time.RFC3339Nano),
		"message":     "Thank you for your feedback!",
	})
}

// @Summary List active sessions
// @Tags sessions
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/sessions [get]
func (h *Handler) SessionsList(c *gin.Context) {
	ids, err := h.Store.ActiveIDs(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to list sessions")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"sessions":  ids,
		"count":     len(ids),
		"timestamp": now(),
	})
}

// @Summary Export session data
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} models.SessionExport
// @Failure 404 {object} map[string]any
// @Router /api/sessions/{id}/export [get]
func (h *Handler) SessionExport(c *gin.Context) {
	id := c.Param("id")
	sess, ok, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if !ok {
		writeError(c, http.StatusNotFound, "Session not found")
		return
	}
	c.JSON(http.StatusOK, sess.Export())
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success":   false,
		"error":     message,
		"timestamp": now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
