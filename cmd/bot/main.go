package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redditpersona/persona-bot/internal/config"
	"github.com/redditpersona/persona-bot/internal/notifications"
	"github.com/redditpersona/persona-bot/internal/persona"
	"github.com/redditpersona/persona-bot/internal/profiler"
	"github.com/redditpersona/persona-bot/internal/scheduler"
	"github.com/redditpersona/persona-bot/internal/storage"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting Persona Bot")

	// Initialize the persona archive
	archive, err := newArchive(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize archive: %v", err)
	}

	// Initialize notification service
	notificationService := notifications.NewService(cfg)

	// Initialize profiling service
	profilerService := profiler.NewService(cfg, archive, notificationService)

	// Initialize scheduler
	schedulerService := scheduler.NewService(cfg, profilerService)

	// Start scheduler
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	// Set up HTTP server for health checks and manual profiling
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// Metrics endpoint
	router.HandleFunc("/metrics", metricsHandler(profilerService)).Methods("GET")

	// Manual watchlist trigger endpoint
	router.HandleFunc("/trigger", triggerHandler(profilerService)).Methods("POST")

	// On-demand profiling endpoint
	router.HandleFunc("/profiles/{source}/{username}", profileHandler(profilerService)).Methods("POST")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // profiling fetches remote timelines
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}

func newArchive(cfg *config.Config) (storage.ArchiveInterface, error) {
	if cfg.StorageAccount != "" {
		return storage.NewAzureArchive(cfg.StorageAccount, cfg.StorageContainer)
	}
	return storage.NewLocalArchive(cfg.ArchiveDir)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","timestamp":"` + time.Now().Format(time.RFC3339) + `"}`))
}

func metricsHandler(profilerService *profiler.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := profilerService.GetMetrics()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(metrics))
	}
}

func triggerHandler(profilerService *profiler.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		go func() {
			if err := profilerService.RunWatchlist(); err != nil {
				logrus.Errorf("Manual watchlist trigger failed: %v", err)
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Watchlist run triggered successfully"}`))
	}
}

func profileHandler(profilerService *profiler.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		source := vars["source"]
		username := vars["username"]

		w.Header().Set("Content-Type", "application/json")

		result, err := profilerService.RunProfile(r.Context(), source, username)
		if err != nil {
			if err == persona.ErrNoRecords {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error":"no records to analyze"}`))
				return
			}

			logrus.Errorf("Profile request for %s/%s failed: %v", source, username, err)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"profiling failed"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Errorf("Failed to encode persona response: %v", err)
		}
	}
}
