package app

import (
	"context"
	"go-stream-api/config"
	"go-stream-api/db"
	"go-stream-api/handler"
	"go-stream-api/logger"
	"go-stream-api/media"
	"go-stream-api/repository"
	"go-stream-api/router"
	"go-stream-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	logger.Init()
	logger.Log.Info("Logger initialized")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect(cfg)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(cfg, "file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis(cfg)
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	uploader, err := media.NewS3Uploader(cfg)
	if err != nil {
		logger.Log.Fatalf("Error initializing media storage: %v", err)
	}

	// --- Wiring All Layers Together ---
	// Repositories, services, and handlers are constructed here; the JWT
	// config is injected so nothing reads secrets from ambient state.

	userRepo := repository.NewUserRepository(database)
	subRepo := repository.NewSubscriptionRepository(database)
	historyRepo := repository.NewHistoryRepository(database)

	codec := service.NewTokenCodec(cfg.JWT)
	hasher := service.NewBcryptHasher()

	authService := service.NewAuthService(userRepo, codec, hasher)
	userService := service.NewUserService(userRepo, uploader)
	channelService := service.NewChannelService(userRepo, subRepo, redisClient)
	historyService := service.NewHistoryService(historyRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	channelHandler := handler.NewChannelHandler(channelService)
	historyHandler := handler.NewHistoryHandler(historyService)

	r := router.NewRouter(codec, authHandler, userHandler, channelHandler, historyHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := cfg.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
