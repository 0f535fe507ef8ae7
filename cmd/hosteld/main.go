package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"hostel-warden-backend/config"
	"hostel-warden-backend/internal/api"
	"hostel-warden-backend/internal/db"
	"hostel-warden-backend/internal/domain"
	"hostel-warden-backend/internal/menu"
	"hostel-warden-backend/internal/notification"
	"hostel-warden-backend/internal/seed"
	"hostel-warden-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "hostel-warden ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.New(gormDB)
	logger.Println("data store initialized")

	// Seed the synthetic dataset on first start
	if cfg.Seed.Enabled {
		opts := seed.Options{Students: cfg.Seed.Students}
		if cfg.Seed.Rand != 0 {
			opts.Rand = rand.New(rand.NewSource(cfg.Seed.Rand))
		}
		if err := seed.Run(ctx, appStore, opts); err != nil {
			logger.Fatalf("failed to seed dataset: %v", err)
		}
	}

	// Push notifications are optional; without VAPID keys announcement
	// publishing skips dispatch.
	var notifier domain.Notifier
	if cfg.Push.PublicKey != "" && cfg.Push.PrivateKey != "" {
		webpushOptions := webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		pool := notification.NewWorkerPool(cfg.WorkerPool.Size, appStore, &webpushOptions)
		pool.Start(ctx)
		notifier = pool
		logger.Printf("notification worker pool started with %d workers", cfg.WorkerPool.Size)
	} else {
		logger.Println("VAPID keys not configured; push notifications disabled")
	}

	svc := domain.NewService(appStore, notifier)

	// Keep the rolling menu window filled in the background
	roller := menu.NewRoller(cfg, appStore)
	go roller.Run(ctx)

	// Initialize router
	router := api.NewRouter(cfg, svc)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
