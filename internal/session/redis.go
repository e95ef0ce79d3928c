package session

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/truepass/chatbot-backend/internal/models"
)

const keyPrefix = "truepass:session:"

// sessionState is the wire form of a session for the redis store.
type sessionState struct {
	ID        string                    `json:"id"`
	StartedAt time.Time                 `json:"started_at"`
	Context   models.SessionContext     `json:"context"`
	History   []models.ConversationTurn `json:"history"`
	Feedback  []models.FeedbackEntry    `json:"feedback"`
}

// RedisStore keeps session snapshots in redis so sessions survive
// process restarts and can be shared by a fleet behind sticky routing.
// Live sessions are cached in-process because the turn lock is a
// process-local mutex; a session must keep being served by the instance
// that holds it.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger

	mu    sync.RWMutex
	cache map[string]*Session
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
		cache:  make(map[string]*Session),
	}
}

// Ping verifies the redis connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) GetOrCreate(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		id = NewSessionID()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.cache[id]; ok {
		return s, nil
	}

	s, err := r.load(ctx, id)
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if s == nil {
		s = newSession(id)
	}
	s.persist = r.writeThrough
	r.cache[id] = s
	r.writeThrough(s)
	return s, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, bool, error) {
	r.mu.RLock()
	if s, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return s, true, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.cache[id]; ok {
		return s, true, nil
	}
	s, err := r.load(ctx, id)
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	s.persist = r.writeThrough
	r.cache[id] = s
	return s, true, nil
}

func (r *RedisStore) ActiveIDs(ctx context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		seen[iter.Val()[len(keyPrefix):]] = struct{}{}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	for id := range r.cache {
		seen[id] = struct{}{}
	}
	r.mu.RUnlock()

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *RedisStore) Count(ctx context.Context) (int, error) {
	ids, err := r.ActiveIDs(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (r *RedisStore) load(ctx context.Context, id string) (*Session, error) {
	raw, err := r.client.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		return nil, err
	}
	var st sessionState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, err
	}
	s := newSession(st.ID)
	s.startedAt = st.StartedAt
	s.context = st.Context
	s.history = st.History
	s.feedback = st.Feedback
	return s, nil
}

// writeThrough snapshots a session into redis. Invoked after every
// mutation with the session's field lock held; snapshot failures are
// logged, not surfaced, since the in-process copy stays authoritative.
func (r *RedisStore) writeThrough(s *Session) {
	st := sessionState{
		ID:        s.id,
		StartedAt: s.startedAt,
		Context:   s.context,
		History:   s.history,
		Feedback:  s.feedback,
	}
	raw, err := json.Marshal(st)
	if err != nil {
		r.logger.Error().Err(err).Str("session_id", s.id).Msg("session snapshot marshal failed")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.client.Set(ctx, keyPrefix+s.id, raw, r.ttl).Err(); err != nil {
		r.logger.Error().Err(err).Str("session_id", s.id).Msg("session snapshot write failed")
	}
}
