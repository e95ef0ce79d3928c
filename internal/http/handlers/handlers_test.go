package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/truepass/chatbot-backend/internal/ai"
	"github.com/truepass/chatbot-backend/internal/knowledge"
	"github.com/truepass/chatbot-backend/internal/models"
	"github.com/truepass/chatbot-backend/internal/service"
	"github.com/truepass/chatbot-backend/internal/session"
)

func newTestRouter(t *testing.T) (*gin.Engine, session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	h := &Handler{
		Store: store,
		Chat: &service.ChatService{
			Completer: &ai.MockCompleter{ModelVersion: "test"},
			KB:        knowledge.Default(),
			Logger:    zerolog.Nop(),
		},
		Validator: validator.New(),
		Logger:    zerolog.Nop(),
	}

	r := gin.New()
	r.GET("/api/health", h.Health)
	r.POST("/api/chat", h.ChatTurn)
	r.GET("/api/suggestions", h.Suggestions)
	r.POST("/api/feedback", h.Feedback)
	r.GET("/api/sessions", h.SessionsList)
	r.GET("/api/sessions/:id/export", h.SessionExport)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, store := newTestRouter(t)
	store.GetOrCreate(context.Background(), "web_h1")

	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("expected healthy status, got %v", body["status"])
	}
	if body["service"] != ServiceName || body["version"] != ServiceVersion {
		t.Fatalf("unexpected identity: %v / %v", body["service"], body["version"])
	}
	if body["active_sessions"] != float64(1) {
		t.Fatalf("expected 1 active session, got %v", body["active_sessions"])
	}
	if body["timestamp"] == "" {
		t.Fatalf("missing timestamp")
	}
}

func TestChatCreatesSession(t *testing.T) {
	r, store := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", models.ChatRequest{Message: "can I pay in rupees"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success")
	}
	if resp.SessionID == "" {
		t.Fatalf("expected generated session id")
	}
	if resp.Response == "" {
		t.Fatalf("expected a reply")
	}
	if len(resp.SuggestedQuestions) == 0 {
		t.Fatalf("expected suggested questions")
	}
	if resp.Context.ConversationLength != 2 {
		t.Fatalf("expected conversation length 2, got %d", resp.Context.ConversationLength)
	}

	if _, ok, _ := store.Get(context.Background(), resp.SessionID); !ok {
		t.Fatalf("session %s not tracked by store", resp.SessionID)
	}
}

func TestChatReusesSession(t *testing.T) {
	r, _ := newTestRouter(t)

	first := doJSON(t, r, http.MethodPost, "/api/chat", models.ChatRequest{Message: "can I pay in rupees"})
	var resp1 models.ChatResponse
	json.Unmarshal(first.Body.Bytes(), &resp1)

	second := doJSON(t, r, http.MethodPost, "/api/chat", models.ChatRequest{
		SessionID: resp1.SessionID,
		Message:   "how much do vip passes cost in rupees",
	})
	var resp2 models.ChatResponse
	if err := json.Unmarshal(second.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp2.SessionID != resp1.SessionID {
		t.Fatalf("expected session reuse, got %s then %s", resp1.SessionID, resp2.SessionID)
	}
	if resp2.Context.ConversationLength != 4 {
		t.Fatalf("expected 4 turns after two exchanges, got %d", resp2.Context.ConversationLength)
	}
}

func TestChatMalformedBody(t *testing.T) {
	r, _ := newTestRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if body["error"] == "" {
		t.Fatalf("expected error message")
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/suggestions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Success     bool     `json:"success"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || len(body.Suggestions) != 8 {
		t.Fatalf("expected 8 suggestions, got %d", len(body.Suggestions))
	}
}

func TestFeedbackUnknownSession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/feedback", models.FeedbackRequest{
		SessionID: "web_missing",
		MessageID: "m1",
		Rating:    5,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestFeedbackInvalidRating(t *testing.T) {
	r, store := newTestRouter(t)
	store.GetOrCreate(context.Background(), "web_f1")

	w := doJSON(t, r, http.MethodPost, "/api/feedback", models.FeedbackRequest{
		SessionID: "web_f1",
		MessageID: "m1",
		Rating:    9,
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for out-of-range rating, got %d", w.Code)
	}
}

func TestFeedbackAccepted(t *testing.T) {
	r, store := newTestRouter(t)
	store.GetOrCreate(context.Background(), "web_f2")

	w := doJSON(t, r, http.MethodPost, "/api/feedback", models.FeedbackRequest{
		SessionID: "web_f2",
		MessageID: "m1",
		Rating:    4,
		Comment:   "helpful",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "Thank you for your feedback!" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["feedback_id"] == "" {
		t.Fatalf("expected feedback id")
	}

	sess, _, _ := store.Get(context.Background(), "web_f2")
	if len(sess.Feedback()) != 1 {
		t.Fatalf("feedback not recorded")
	}
}

func TestSessionsList(t *testing.T) {
	r, store := newTestRouter(t)
	store.GetOrCreate(context.Background(), "web_s1")
	store.GetOrCreate(context.Background(), "web_s2")

	w := doJSON(t, r, http.MethodGet, "/api/sessions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Success  bool     `json:"success"`
		Sessions []string `json:"sessions"`
		Count    int      `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Count != 2 || len(body.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %+v", body)
	}
}

func TestSessionExport(t *testing.T) {
	r, store := newTestRouter(t)
	sess, _ := store.GetOrCreate(context.Background(), "web_e1")
	sess.AppendExchange("q", "a")

	w := doJSON(t, r, http.MethodGet, "/api/sessions/web_e1/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var exp models.SessionExport
	if err := json.Unmarshal(w.Body.Bytes(), &exp); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if exp.SessionInfo.SessionID != "web_e1" {
		t.Fatalf("unexpected export session id %q", exp.SessionInfo.SessionID)
	}
	if exp.ConversationData.MessageCount != 2 {
		t.Fatalf("expected 2 messages, got %d", exp.ConversationData.MessageCount)
	}
	if exp.FeedbackData.AverageRating != nil {
		t.Fatalf("expected nil average rating")
	}

	missing := doJSON(t, r, http.MethodGet, "/api/sessions/web_nope/export", nil)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", missing.Code)
	}
}
