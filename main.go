package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workmate/client"
	"workmate/config"
	"workmate/cron"
	"workmate/handlers"
	"workmate/middleware"
	"workmate/routes"
	"workmate/services/feed"
	"workmate/session"
	"workmate/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Backend API client.
	apiClient := client.New(
		config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.APITimeoutSecs)*time.Second,
		logger,
	)

	// Session store with the configured persistence backend.
	var persist session.PersistentStore
	ttl := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	switch config.AppConfig.SessionBackend {
	case "redis":
		persist = session.NewRedisStore(utils.GetSessionCacheClient(), ttl)
	default:
		secret := []byte(config.AppConfig.SessionSecret)
		if len(secret) == 0 {
			logger.Warn("main: SESSION_SECRET not set, persisted sessions will not survive restarts with a new secret")
			secret = []byte("workmate-dev-secret")
		}
		persist = session.NewFileStore(config.AppConfig.SessionFile, secret, ttl)
	}
	sessions := session.NewStore(apiClient, persist, logger)
	if id := sessions.Restore(context.Background()); id != nil {
		logger.Sugar().Infof("main: restored session for %s (%s)", id.Email, id.Role)
	}

	// Jobs feed, optionally cached in Redis and refreshed in background.
	var feedCache feed.Cache
	if config.AppConfig.FeedCacheEnabled {
		feedTTL := time.Duration(config.AppConfig.FeedTTLMins) * time.Minute
		feedCache = feed.NewRedisCache(utils.GetFeedCacheClient(), feedTTL)
	}
	feedService := feed.NewService(apiClient, feedCache, logger)
	if config.AppConfig.FeedCacheEnabled {
		cron.InitFeedWorker(feedService)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(sessions),
		Home:     handlers.NewHomeHandler(sessions, apiClient),
		Student:  handlers.NewStudentHandler(apiClient, feedService),
		Provider: handlers.NewProviderHandler(apiClient, feedService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, sessions)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting gateway on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: gateway is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: gateway stopped gracefully")
}
