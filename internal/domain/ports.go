// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"
	"io"
	"time"

	"github.com/projectly/meeting-service/internal/domain/models"
)

// ObjectStorage stores meeting audio assets. Keys are meeting-scoped and
// never shared across meetings.
type ObjectStorage interface {
	// Upload stores the object under the given key and returns its URL.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)

	// Delete removes a previously uploaded object by its URL. Used as a
	// compensating action when a surrounding transaction fails.
	Delete(ctx context.Context, url string) error

	// PresignedURL returns a time-limited URL granting read access to the
	// object.
	PresignedURL(ctx context.Context, url string, ttl time.Duration) (string, error)
}

// NotificationQueue publishes best-effort notifications after commit.
// Delivery is at-least-once and fire-and-forget from the core's view.
type NotificationQueue interface {
	Publish(ctx context.Context, notification models.Notification) error
}

// AIClient is the external transcription/summary service.
type AIClient interface {
	// SubmitAudio hands a readable audio URL to the service and returns an
	// opaque processing token.
	SubmitAudio(ctx context.Context, audioURL, language string) (string, error)

	// GetStatus polls a submission by token.
	GetStatus(ctx context.Context, token string) (done bool, status string, err error)

	// GetReport fetches the finished report for a token.
	GetReport(ctx context.Context, token string) (*models.AIReport, error)
}

// RoomService provisions remote video rooms for online meetings.
type RoomService interface {
	CreateRoom(ctx context.Context, name string) (*models.Room, error)
	GenerateToken(room, identity, metadata string) (string, error)
}

// AudioTranscoder converts audio to the canonical codec before upload.
type AudioTranscoder interface {
	// TranscodeToMP3 converts the source audio bytes to MP3.
	TranscodeToMP3(ctx context.Context, src []byte) ([]byte, error)
}

// InviteGenerator renders an iCalendar invite for meeting notifications.
type InviteGenerator interface {
	GenerateInvite(meeting *models.Meeting, pattern *models.RecurringMeetingPattern) (string, error)
}
