package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"service_marketplace/internal/config"
	"service_marketplace/internal/logger"
	"service_marketplace/internal/repository"
	"service_marketplace/internal/router"
	"service_marketplace/internal/service"
	"service_marketplace/internal/utils"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Server stopped with error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	appLogger := logger.New(cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	appLogger.Info("AutoMigrate applied successfully")

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.Session.Secret, cfg.SessionTTL())

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	sessionRepo := repository.NewSessionRepository(dbPool)
	workerRepo := repository.NewWorkerRepository(dbPool)
	bookingRepo := repository.NewBookingRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, sessionRepo, jwtUtil, appLogger)
	workerService := service.NewWorkerService(workerRepo)
	bookingService := service.NewBookingService(bookingRepo, workerRepo)

	if n, err := authService.PruneSessions(ctx); err != nil {
		appLogger.Warn("Failed to prune expired sessions", "error", err)
	} else if n > 0 {
		appLogger.Info("Pruned expired sessions", "count", n)
	}

	// --- Setup Gin Router ---
	engine := router.New(router.Dependencies{
		Config:         cfg,
		Logger:         appLogger,
		DB:             dbPool,
		AuthService:    authService,
		WorkerService:  workerService,
		BookingService: bookingService,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Server starting", "port", cfg.Server.Port, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// --- Graceful Shutdown ---
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	appLogger.Info("Server exiting")
	return nil
}
