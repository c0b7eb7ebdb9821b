// @title         workvibe API
// @version       1.0
// @description   Заглушка чат-бэкенда и хранилище карточек профессий для терминального клиента vibechat.
// @BasePath      /
// @schemes       http
// @host          localhost:8000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Сервисный токен (vibechat token). Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/workvibe/docs"

	// internal imports
	"github.com/artem13815/workvibe/api/http"
	"github.com/artem13815/workvibe/api/http/handlers"
	"github.com/artem13815/workvibe/pkg/config"
	"github.com/artem13815/workvibe/pkg/conversation"
	"github.com/artem13815/workvibe/pkg/health"
	"github.com/artem13815/workvibe/pkg/health/checkers"
	"github.com/artem13815/workvibe/pkg/logger"
	"github.com/artem13815/workvibe/pkg/repository/memory"
	pgrepo "github.com/artem13815/workvibe/pkg/repository/postgres"
	redisrepo "github.com/artem13815/workvibe/pkg/repository/redis"
	"github.com/artem13815/workvibe/pkg/security/jwt"
	"github.com/artem13815/workvibe/pkg/storage/postgres"
	"github.com/artem13815/workvibe/pkg/storage/redis"
)

func main() {
	// Load configuration from env/.env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logg.Sync()

	ctx := context.Background()
	var readiness []health.Checker

	// Cards: PostgreSQL if configured, otherwise in-memory.
	var cardsRepo conversation.CardsRepository = memory.NewCardsRepository()
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logg.Fatal("postgres connect", "error", err)
		}
		defer pool.Close()
		repo, err := pgrepo.NewCardsRepository(pool)
		if err != nil {
			logg.Fatal("init cards repo", "error", err)
		}
		cardsRepo = repo
		readiness = append(readiness, checkers.NewPostgresChecker(pool))
	} else {
		logg.Warn("DATABASE_URL не задан: карточки хранятся в памяти")
	}

	// History: Redis if configured, otherwise in-memory.
	var historyRepo conversation.HistoryRepository = memory.NewHistoryRepository()
	if cfg.RedisURL != "" {
		client, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logg.Fatal("redis connect", "error", err)
		}
		defer client.Close()
		historyRepo = redisrepo.NewHistoryRepository(client, cfg.HistoryTTL)
		readiness = append(readiness, checkers.NewRedisChecker(client))
	}

	exporter, err := conversation.NewFileExporter(cfg.CardsDir, "/cards")
	if err != nil {
		logg.Fatal("init cards export", "error", err)
	}
	readiness = append(readiness, checkers.NewDirChecker(cfg.CardsDir))

	convUC := conversation.NewService(historyRepo, cardsRepo, exporter, conversation.Options{
		Delay:        cfg.ReplyDelay,
		PreviewRunes: cfg.ReplyPreviewRunes,
	}, logg.With("component", "conversation"))

	chatHandler := handlers.NewChatHandler(convUC, logg.With("component", "chat"))
	cardsHandler := handlers.NewCardsHandler(convUC, logg.With("component", "cards"))
	healthHandler := handlers.NewHealthHandler(health.NewService(readiness...), logg.With("component", "health"))

	// JWT auth middleware for card ingestion
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer, jwt.ScopeCardsWrite)

	if u, err := url.Parse(cfg.PublicBaseURL); err == nil && u.Host != "" {
		docs.SwaggerInfo.Host = u.Host
	}

	app := fiber.New(fiber.Config{
		AppName:      "workvibe",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	http.Register(app, chatHandler, cardsHandler, healthHandler, authMW, cfg.CardsDir)

	// Start server
	logg.Info("HTTP server listening", "port", cfg.Port, "public_url", cfg.PublicBaseURL)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logg.Fatal("server stopped", "error", err)
	}
}
