// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

// Package rooms provisions LiveKit video rooms for online meetings.
package rooms

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
)

const (
	// DefaultEmptyTimeout closes rooms that stay empty for this long.
	DefaultEmptyTimeout = 30 * time.Minute
	// DefaultTokenTTL bounds how long a join token stays valid.
	DefaultTokenTTL = 24 * time.Hour
)

// Config holds the LiveKit server connection settings.
type Config struct {
	Host      string
	APIKey    string
	APISecret string
	// Optional: override join token lifetime
	TokenTTL time.Duration
}

// LiveKitService provisions rooms and mints join tokens.
type LiveKitService struct {
	client *lksdk.RoomServiceClient
	config Config
}

// Ensure that LiveKitService implements the domain port
var _ domain.RoomService = (*LiveKitService)(nil)

// NewLiveKitService creates a room service backed by a LiveKit server.
func NewLiveKitService(config Config) *LiveKitService {
	if config.TokenTTL == 0 {
		config.TokenTTL = DefaultTokenTTL
	}

	return &LiveKitService{
		client: lksdk.NewRoomServiceClient(config.Host, config.APIKey, config.APISecret),
		config: config,
	}
}

// CreateRoom provisions a named room on the LiveKit server.
func (s *LiveKitService) CreateRoom(ctx context.Context, name string) (*models.Room, error) {
	room, err := s.client.CreateRoom(ctx, &livekit.CreateRoomRequest{
		Name:         name,
		EmptyTimeout: uint32(DefaultEmptyTimeout.Seconds()),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create video room", "room_name", name, "error", err)
		return nil, fmt.Errorf("creating video room: %w", err)
	}

	slog.DebugContext(ctx, "created video room", "room_name", room.Name, "room_sid", room.Sid)

	return &models.Room{
		SID:  room.Sid,
		Name: room.Name,
	}, nil
}

// GenerateToken mints a join token for the given room and participant
// identity.
func (s *LiveKitService) GenerateToken(room, identity, metadata string) (string, error) {
	at := auth.NewAccessToken(s.config.APIKey, s.config.APISecret)

	grant := &auth.VideoGrant{
		RoomJoin: true,
		Room:     room,
	}

	at.AddGrant(grant).
		SetIdentity(identity).
		SetValidFor(s.config.TokenTTL)
	if metadata != "" {
		at.SetMetadata(metadata)
	}

	token, err := at.ToJWT()
	if err != nil {
		return "", fmt.Errorf("generating room token: %w", err)
	}
	return token, nil
}
