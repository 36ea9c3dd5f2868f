package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/lakonic/chequetext/api"
	"github.com/lakonic/chequetext/extraction"
	rh "github.com/lakonic/chequetext/route-handlers"
)

const (
	defaultUsername = "admin"
	defaultPassword = "password"
	defaultHost     = "0.0.0.0"
	defaultPort     = "5000"
	shutdownTimeout = 15 * time.Second
)

type config struct {
	authUsername string
	authPassword string
	host         string
	port         string
	debug        bool
}

func main() {
	cfg := loadConfig()
	initLogger(cfg.debug)

	if cfg.authUsername == defaultUsername && cfg.authPassword == defaultPassword {
		slog.Warn("Using default basic-auth credentials. Set BASIC_AUTH_USERNAME and BASIC_AUTH_PASSWORD in production.")
	}

	extractor, err := extraction.NewExtractor(extraction.Config{})
	if err != nil {
		slog.Error("Extractor setup failed", "error", err)
		os.Exit(1)
	}

	extractHandler := rh.NewExtractHandler(extractor)
	guard := api.NewCredentialsGuard(cfg.authUsername, cfg.authPassword)
	router := api.SetupRoutes(extractHandler, guard)

	startServer(cfg.host, cfg.port, router)
}

func loadConfig() config {
	return config{
		authUsername: envOrDefault("BASIC_AUTH_USERNAME", defaultUsername),
		authPassword: envOrDefault("BASIC_AUTH_PASSWORD", defaultPassword),
		host:         envOrDefault("HOST", defaultHost),
		port:         envOrDefault("PORT", defaultPort),
		debug:        strings.EqualFold(os.Getenv("DEBUG"), "true"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		}),
	))
}

func startServer(host, port string, router http.Handler) {
	server := &http.Server{
		Addr:    host + ":" + port,
		Handler: router,
	}

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	<-shutdownSignal // Block until signal received
	slog.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	slog.Info("Server gracefully stopped")
}
