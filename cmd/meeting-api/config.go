// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/projectly/meeting-service/internal/infrastructure/ai"
	"github.com/projectly/meeting-service/internal/infrastructure/rooms"
	"github.com/projectly/meeting-service/internal/infrastructure/storage"
	"github.com/projectly/meeting-service/internal/infrastructure/store"
	"github.com/projectly/meeting-service/internal/logging"
)

// flags are the command line flags for the meeting service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the meeting service.
type environment struct {
	Port           string
	NatsURL        string
	AIPollInterval time.Duration
	Database       store.Config
	Storage        storage.Config
	LiveKit        rooms.Config
	AI             ai.Config
}

// parseFlags parses command line flags for the meeting service
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructuredLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the meeting service
func parseEnv() environment {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	return environment{
		Port:           port,
		NatsURL:        natsURL,
		AIPollInterval: envDuration("AI_POLL_INTERVAL", time.Minute),
		Database:       parseDatabaseConfig(),
		Storage:        parseStorageConfig(),
		LiveKit:        parseLiveKitConfig(),
		AI:             parseAIConfig(),
	}
}

// parseDatabaseConfig parses database configuration from environment variables
func parseDatabaseConfig() store.Config {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		slog.Error("DATABASE_DSN environment variable is required but not set")
		os.Exit(1)
	}

	return store.Config{
		DSN:             dsn,
		MaxOpenConns:    envInt("DATABASE_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    envInt("DATABASE_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: envDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
	}
}

// parseStorageConfig parses object storage configuration from environment variables
func parseStorageConfig() storage.Config {
	bucket := os.Getenv("AUDIO_BUCKET")
	if bucket == "" {
		slog.Error("AUDIO_BUCKET environment variable is required but not set")
		os.Exit(1)
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-west-2"
	}

	return storage.Config{
		Region: region,
		Bucket: bucket,
	}
}

// parseLiveKitConfig parses LiveKit configuration from environment variables
func parseLiveKitConfig() rooms.Config {
	apiKey := os.Getenv("LIVEKIT_API_KEY")
	apiSecret := os.Getenv("LIVEKIT_API_SECRET")
	if apiKey == "" || apiSecret == "" {
		slog.Error("LIVEKIT_API_KEY and LIVEKIT_API_SECRET environment variables are required but not set")
		os.Exit(1)
	}

	host := os.Getenv("LIVEKIT_HOST")
	if host == "" {
		host = "http://localhost:7880"
	}

	return rooms.Config{
		Host:      host,
		APIKey:    apiKey,
		APISecret: apiSecret,
	}
}

// parseAIConfig parses AI service configuration from environment variables
func parseAIConfig() ai.Config {
	baseURL := os.Getenv("AI_SERVICE_URL")
	if baseURL == "" {
		slog.Error("AI_SERVICE_URL environment variable is required but not set")
		os.Exit(1)
	}

	return ai.Config{
		BaseURL: baseURL,
		APIKey:  os.Getenv("AI_SERVICE_API_KEY"),
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.With(logging.ErrKey, err, "key", key, "value", raw).Error("invalid integer environment variable, using default")
		return fallback
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		slog.With(logging.ErrKey, err, "key", key, "value", raw).Error("invalid duration environment variable, using default")
		return fallback
	}
	return value
}
