// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

// Package main is the meeting service API that provides a RESTful API for
// scheduling meetings and running their lifecycle.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"github.com/projectly/meeting-service/internal/handlers"
	"github.com/projectly/meeting-service/internal/infrastructure/ai"
	"github.com/projectly/meeting-service/internal/infrastructure/invite"
	"github.com/projectly/meeting-service/internal/infrastructure/messaging"
	"github.com/projectly/meeting-service/internal/infrastructure/rooms"
	"github.com/projectly/meeting-service/internal/infrastructure/storage"
	"github.com/projectly/meeting-service/internal/infrastructure/store"
	"github.com/projectly/meeting-service/internal/infrastructure/transcode"
	"github.com/projectly/meeting-service/internal/logging"
	"github.com/projectly/meeting-service/internal/service"
	"github.com/projectly/meeting-service/pkg/concurrent"
)

const notificationWorkers = 10

func main() {
	// Local development convenience; missing .env files are fine.
	_ = godotenv.Load()

	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructuredLogConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.Open(env.Database)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error opening database")
		os.Exit(1)
	}
	uow := store.NewUnitOfWork(db)

	natsConn, err := nats.Connect(env.NatsURL,
		nats.Timeout(10*time.Second),
		nats.DrainTimeout(25*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error connecting to NATS")
		os.Exit(1)
	}

	objectStorage, err := storage.NewS3Storage(ctx, env.Storage)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up object storage")
		os.Exit(1)
	}

	// Initialize services
	guard := service.NewPrivilegeGuard()
	occurrenceService := service.NewOccurrenceService()
	aiService := service.NewAIService(uow, objectStorage, ai.NewClient(env.AI))
	audioService := service.NewAudioService(uow, objectStorage, transcode.NewFFmpegTranscoder(), guard, aiService)
	notificationService := service.NewNotificationService(
		messaging.NewNatsQueue(natsConn),
		invite.NewICSGenerator(),
		concurrent.NewWorkerPool(notificationWorkers),
	)
	meetingService := service.NewMeetingService(
		uow,
		guard,
		service.NewConflictDetector(),
		occurrenceService,
		audioService,
		aiService,
		rooms.NewLiveKitService(env.LiveKit),
		notificationService,
	)

	// Background AI pipeline poller
	go aiService.Run(ctx, env.AIPollInterval)

	app := fiber.New()
	app.Get("/health", func(c *fiber.Ctx) error {
		if !natsConn.IsConnected() {
			return c.Status(fiber.StatusServiceUnavailable).SendString("NATS not connected")
		}
		return c.SendString("OK")
	})
	handlers.NewMeetingHandler(meetingService, audioService).RegisterRoutes(app)

	go func() {
		addr := flags.Bind + ":" + flags.Port
		slog.Info("starting HTTP server", "addr", addr)
		if err := app.Listen(addr); err != nil {
			slog.With(logging.ErrKey, err).Error("HTTP server stopped")
			cancel()
		}
	}()

	// This next line blocks until SIGINT or SIGTERM is received.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-done:
	case <-ctx.Done():
	}

	gracefulShutdown(app, natsConn, cancel)
}

// gracefulShutdown stops accepting new work, drains in-flight requests and
// pending NATS messages, then exits.
func gracefulShutdown(app *fiber.App, natsConn *nats.Conn, cancel context.CancelFunc) {
	slog.Info("shutting down")
	cancel()

	if err := app.ShutdownWithTimeout(25 * time.Second); err != nil {
		slog.With(logging.ErrKey, err).Error("error shutting down HTTP server")
	}

	if err := natsConn.Drain(); err != nil {
		slog.With(logging.ErrKey, err).Error("error draining NATS connection")
	}

	slog.Info("shutdown complete")
}
