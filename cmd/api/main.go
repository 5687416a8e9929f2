package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Aryan9369/HonestWork/internal/adapters/events"
	"github.com/Aryan9369/HonestWork/internal/adapters/insight"
	"github.com/Aryan9369/HonestWork/internal/adapters/kv"
	"github.com/Aryan9369/HonestWork/internal/adapters/payments"
	"github.com/Aryan9369/HonestWork/internal/adapters/search"
	"github.com/Aryan9369/HonestWork/internal/api/handlers"
	"github.com/Aryan9369/HonestWork/internal/api/routes"
	"github.com/Aryan9369/HonestWork/internal/application/services"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/clients/gemini"
	redisclient "github.com/Aryan9369/HonestWork/internal/infrastructure/clients/redis"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/clients/typesense"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/observability"
	"github.com/Aryan9369/HonestWork/pkg/config"
)

func main() {
	// Local overrides from .env, if present
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("honestwork-api", cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Pick the storage backend and the matching event bus. Redis gets a
	// cross-process pub/sub bus; memory and file fall back to in-process.
	var (
		store    providers.KVStore
		eventBus providers.EventBus
	)
	switch cfg.Storage.Backend {
	case "redis":
		redisClient, err := redisclient.NewClient(&cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis client")
		}
		defer redisClient.Close()
		store = kv.NewRedisStore(redisClient)
		eventBus = events.NewRedisEventBus(redisClient)
		log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis storage backend initialized")
	case "file":
		fileStore, err := kv.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Storage.DataDir).Msg("Failed to initialize file storage")
		}
		store = fileStore
		eventBus = events.NewMemoryEventBus()
		log.Info().Str("dir", cfg.Storage.DataDir).Msg("File storage backend initialized")
	case "memory":
		store = kv.NewMemoryStore()
		eventBus = events.NewMemoryEventBus()
		log.Info().Msg("In-memory storage backend initialized")
	default:
		log.Fatal().Str("backend", cfg.Storage.Backend).Msg("Unknown storage backend")
	}

	// Optional Typesense index; the directory falls back to a catalog
	// scan when absent.
	var searchIndex providers.SearchIndex
	if cfg.Search.Enabled {
		tsClient, err := typesense.NewClient(&cfg.Search)
		if err != nil {
			log.Warn().Err(err).Msg("Typesense unavailable, falling back to catalog scan search")
		} else {
			adapter := search.NewTypesenseAdapter(tsClient)
			if err := adapter.InitSchema(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to initialize search schema")
			} else {
				searchIndex = adapter
				log.Info().Msg("Typesense search index initialized")
			}
		}
	}

	// Optional Gemini collaborator; without an API key the insight
	// endpoints serve their fallback strings.
	var insightProvider providers.InsightProvider
	geminiClient, err := gemini.NewClient(&cfg.Gemini)
	if err != nil {
		log.Warn().Err(err).Msg("AI collaborator not configured, insight endpoints will degrade")
		insightProvider = insight.NewUnavailableProvider()
	} else {
		insightProvider = geminiClient
		log.Info().Str("model", cfg.Gemini.Model).Msg("Gemini client initialized")
	}

	// Services
	directoryService := services.NewDirectoryService(store, eventBus, searchIndex)
	contentService := services.NewContentService(store, eventBus)
	identityService := services.NewIdentityService(store, eventBus, directoryService)
	mentorshipService := services.NewMentorshipService(store, eventBus, identityService)
	insightService := services.NewInsightService(insightProvider)
	chatSimulator := services.NewChatSimulator(mentorshipService, cfg.Chat.AutoReplyDelay)

	// The mock gateway confirms checkout after a delay, which activates
	// the session and posts the mentor's opening message.
	paymentProvider := payments.NewMockProvider(cfg.Chat.PaymentDelay, mentorshipService.ConfirmPayment)

	// Handlers
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	contentHandler := handlers.NewContentHandler(contentService, identityService)
	identityHandler := handlers.NewIdentityHandler(identityService)
	mentorshipHandler := handlers.NewMentorshipHandler(mentorshipService, paymentProvider, chatSimulator)
	insightHandler := handlers.NewInsightHandler(insightService, directoryService, contentService)
	sseHandler := handlers.NewSSEHandler(eventBus)

	router := routes.NewRouter(
		directoryHandler,
		contentHandler,
		identityHandler,
		mentorshipHandler,
		insightHandler,
		sseHandler,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		// SSE streams outlive a short write timeout
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if err := eventBus.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing event bus")
	}

	log.Info().Msg("Server stopped")
}
