package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-task-management/config"
	_ "personal-task-management/docs" // Swagger docs
	authHTTP "personal-task-management/internal/auth/delivery/http"
	authRepo "personal-task-management/internal/auth/repository/file"
	authUC "personal-task-management/internal/auth/usecase"
	"personal-task-management/internal/httpserver"
	"personal-task-management/internal/middleware"
	taskHTTP "personal-task-management/internal/task/delivery/http"
	taskRepo "personal-task-management/internal/task/repository/file"
	taskUC "personal-task-management/internal/task/usecase"
	"personal-task-management/pkg/idgen"
	"personal-task-management/pkg/log"
	"personal-task-management/pkg/scope"
	"personal-task-management/pkg/taskgen"
)

// @title       Personal Task Management API
// @description Task collection with AI-assisted generation, session auth, and JSON snapshot persistence.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data dir: %s", cfg.Storage.DataDir)

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		logger.Error(ctx, "Failed to create data dir: ", err)
		return
	}

	// 3. Shared helpers
	ids := idgen.NewUUID()
	tokens := scope.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 4. Auth domain
	sessionRepo := authRepo.New(logger, cfg.Storage.DataDir)
	sessionUC, err := authUC.New(ctx, logger, sessionRepo, ids, tokens, cfg.Auth.Latency)
	if err != nil {
		logger.Error(ctx, "Failed to initialize auth: ", err)
		return
	}
	authHandler := authHTTP.New(logger, sessionUC)

	// 5. Task domain
	titles := taskgen.NewStaticClient(cfg.Generator.Latency)
	collectionRepo := taskRepo.New(logger, cfg.Storage.DataDir)
	collectionUC, err := taskUC.New(ctx, logger, collectionRepo, ids, titles)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task store: ", err)
		return
	}
	defer func() {
		if cerr := collectionUC.Close(); cerr != nil {
			logger.Errorf(ctx, "Failed to flush task snapshots: %v", cerr)
		}
	}()
	taskHandler := taskHTTP.New(logger, collectionUC)

	// 6. Middleware
	mw := middleware.New(logger, tokens, cfg.RateLimit.GeneratePerMin)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		AuthHandler: authHandler,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
