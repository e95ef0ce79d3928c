package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/truepass/chatbot-backend/internal/ai"
	"github.com/truepass/chatbot-backend/internal/config"
	httpapi "github.com/truepass/chatbot-backend/internal/http"
	"github.com/truepass/chatbot-backend/internal/knowledge"
	"github.com/truepass/chatbot-backend/internal/metrics"
	"github.com/truepass/chatbot-backend/internal/service"
	"github.com/truepass/chatbot-backend/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "truepass-chatbot").Logger()

	var store session.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		rs := session.NewRedisStore(client, cfg.SessionTTL, logger)
		if err := rs.Ping(context.Background()); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		store = rs
		logger.Info().Str("addr", cfg.RedisAddr).Msg("using redis session store")
	} else {
		store = session.NewMemoryStore()
		logger.Info().Msg("using in-memory session store")
	}

	var completer ai.Completer
	if cfg.OpenAIAPIKey == "" {
		completer = ai.MockCompleter{ModelVersion: "mock-v1"}
		logger.Info().Msg("using mock completer")
	} else {
		completer = ai.NewOpenAICompleter(
			cfg.OpenAIAPIKey,
			cfg.OpenAIBaseURL,
			cfg.Model,
			cfg.Temperature,
			cfg.MaxTokens,
			cfg.CompletionTimeout,
		)
	}

	chat := &service.ChatService{
		Completer: completer,
		KB:        knowledge.Default(),
		Logger:    logger,
	}

	metrics.RegisterActiveSessions(func() float64 {
		n, err := store.Count(context.Background())
		if err != nil {
			return 0
		}
		return float64(n)
	})

	router := httpapi.Router(cfg, store, chat, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: 2 * cfg.RequestTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
