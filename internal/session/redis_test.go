package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Hour, zerolog.Nop()), mr
}

func TestRedisStoreWriteThrough(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	s, err := store.GetOrCreate(ctx, "web_r1")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	s.AppendExchange("question", "answer")
	s.SetLastTopic("ticket_purchase")

	if !mr.Exists(keyPrefix + "web_r1") {
		t.Fatalf("expected snapshot key in redis")
	}
}

func TestRedisStoreSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	s, err := store.GetOrCreate(ctx, "web_r2")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	s.AppendExchange("question", "answer")
	s.SetLastTopic("wallet_connection")
	s.AddFeedback("m1", 4, "good")

	// A second store over the same redis stands in for a restarted
	// process with a cold cache.
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	fresh := NewRedisStore(client, time.Hour, zerolog.Nop())

	reloaded, ok, err := fresh.Get(ctx, "web_r2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected session to survive restart")
	}
	if reloaded.HistoryLen() != 2 {
		t.Fatalf("expected 2 turns after reload, got %d", reloaded.HistoryLen())
	}
	if topic := reloaded.Context().LastTopic; topic != "wallet_connection" {
		t.Fatalf("expected lastTopic wallet_connection, got %q", topic)
	}
	if len(reloaded.Feedback()) != 1 {
		t.Fatalf("expected 1 feedback entry after reload, got %d", len(reloaded.Feedback()))
	}
}

func TestRedisStoreGetMiss(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	if _, ok, err := store.Get(ctx, "web_unknown"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestRedisStoreCaching(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	s1, _ := store.GetOrCreate(ctx, "web_r3")
	s2, _ := store.GetOrCreate(ctx, "web_r3")
	if s1 != s2 {
		t.Fatalf("expected the cached instance on repeat lookups")
	}
}

func TestRedisStoreActiveIDs(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	store.GetOrCreate(ctx, "web_b")
	store.GetOrCreate(ctx, "web_a")

	ids, err := store.ActiveIDs(ctx)
	if err != nil {
		t.Fatalf("ActiveIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "web_a" || ids[1] != "web_b" {
		t.Fatalf("expected sorted ids [web_a web_b], got %v", ids)
	}

	if n, _ := store.Count(ctx); n != 2 {
		t.Fatalf("expected count 2, got %d", n)
	}
}
