package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/safsequence/Meow/internal/auth"
	"github.com/safsequence/Meow/internal/config"
	"github.com/safsequence/Meow/internal/handlers"
	"github.com/safsequence/Meow/internal/storage"
	"github.com/safsequence/Meow/internal/storage/memory"
	"github.com/safsequence/Meow/internal/storage/postgres"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	var store storage.Store
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		pgStore, err := postgres.Connect(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pgStore.Close()

		ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
		err = pgStore.InitSchema(ctx)
		cancel()
		if err != nil {
			slog.Error("Failed to initialize schema", "error", err)
			os.Exit(1)
		}
		store = pgStore
		slog.Info("Using postgres storage")
	default:
		store = memory.NewSeeded()
		slog.Info("Using in-memory storage with demo data")
	}

	authClient := auth.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if !authClient.Configured() {
		slog.Warn("Supabase credentials not configured; auth endpoints will report unavailable")
	}

	router := handlers.NewRouter(store, authClient, cfg.SupabaseJWTSecret)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exited")
}
