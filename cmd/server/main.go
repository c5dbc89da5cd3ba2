package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/wpc/servicesync/internal/common/clock"
	"github.com/wpc/servicesync/internal/common/uuid"
	directoryRepo "github.com/wpc/servicesync/internal/repositories/directory"
	sessionRepo "github.com/wpc/servicesync/internal/repositories/session"
	"github.com/wpc/servicesync/internal/services/analytics"
	"github.com/wpc/servicesync/internal/services/notifier"
	"github.com/wpc/servicesync/internal/services/workflow"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	directory, err := directoryRepo.NewRedis(&directoryRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create directory repository: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the notification hub
	hub := notifier.NewHub(nil)
	go hub.Run(ctx)

	// Initialize the workflow service
	workflowSvc, err := workflow.New(&workflow.Config{
		SessionRepo:   sessions,
		DirectoryRepo: directory,
		Notifier:      hub,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create workflow service: %v", err)
	}

	// Initialize the analytics service
	analyticsSvc, err := analytics.New(&analytics.Config{
		SessionRepo: sessions,
		Clock:       &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create analytics service: %v", err)
	}

	// Start the stale-session reclaimer
	reclaimer, err := workflow.NewReclaimer(&workflow.ReclaimerConfig{
		Sweeper:  workflowSvc,
		Clock:    &clock.DefaultClock{},
		Interval: getDurationEnv("SWEEP_INTERVAL", workflow.DefaultSweepInterval),
		MaxAge:   getDurationEnv("MAX_SESSION_AGE", workflow.DefaultMaxSessionAge),
	})
	if err != nil {
		log.Fatalf("Failed to create reclaimer: %v", err)
	}
	go reclaimer.Run(ctx)

	// Expose the notification stream and the dashboard snapshot
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/sessions", hub.HandleSubscribe)
	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		stats, err := analyticsSvc.GetDashboardStats(r.Context())
		if err != nil {
			log.Printf("Failed to build dashboard stats: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			log.Printf("Failed to write dashboard stats: %v", err)
		}
	})

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: mux,
	}

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDurationEnv gets a duration environment variable or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
