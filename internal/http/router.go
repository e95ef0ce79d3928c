package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/truepass/chatbot-backend/internal/config"
	"github.com/truepass/chatbot-backend/internal/http/handlers"
	"github.com/truepass/chatbot-backend/internal/http/middleware"
	"github.com/truepass/chatbot-backend/internal/service"
	"github.com/truepass/chatbot-backend/internal/session"

	_ "github.com/truepass/chatbot-backend/docs"
)

func Router(cfg config.Config, store session.Store, chat *service.ChatService, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:     store,
		Chat:      chat,
		Validator: validator.New(),
		Logger:    logger,
		AdminKey:  cfg.AdminKey,
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/chat", h.ChatTurn)
		api.GET("/suggestions", h.Suggestions)
		api.POST("/feedback", h.Feedback)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.GET("/sessions", h.SessionsList)
		admin.GET("/sessions/:id/export", h.SessionExport)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
