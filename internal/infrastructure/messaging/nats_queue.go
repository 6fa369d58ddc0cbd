// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

// Package messaging publishes meeting notifications to NATS for delivery by
// the notification workers.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
	"github.com/projectly/meeting-service/internal/logging"
	"github.com/projectly/meeting-service/pkg/constants"
)

// INatsConn is the NATS connection surface the publisher needs.
type INatsConn interface {
	IsConnected() bool
	Publish(subj string, data []byte) error
}

// NatsQueue publishes notifications to per-channel NATS subjects.
type NatsQueue struct {
	NatsConn INatsConn
}

// NewNatsQueue creates a new NatsQueue.
func NewNatsQueue(natsConn INatsConn) *NatsQueue {
	return &NatsQueue{
		NatsConn: natsConn,
	}
}

// Ensure [NatsQueue] implements [domain.NotificationQueue].
var _ domain.NotificationQueue = (*NatsQueue)(nil)

// Publish sends one notification to the subject for its channel.
func (q *NatsQueue) Publish(ctx context.Context, notification models.Notification) error {
	if !q.NatsConn.IsConnected() {
		return errors.New("NATS connection is not connected")
	}

	subject, err := subjectFor(notification.Type)
	if err != nil {
		return err
	}

	data, err := json.Marshal(notification)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling notification", logging.ErrKey, err, "subject", subject)
		return err
	}

	if err := q.NatsConn.Publish(subject, data); err != nil {
		slog.ErrorContext(ctx, "error sending message to NATS", logging.ErrKey, err, "subject", subject)
		return err
	}

	slog.DebugContext(ctx, "sent notification to NATS",
		"subject", subject,
		"type", string(notification.Type),
	)
	return nil
}

func subjectFor(t models.NotificationType) (string, error) {
	switch t {
	case models.NotificationTypeEmail:
		return constants.EmailNotificationSubject, nil
	case models.NotificationTypePush:
		return constants.PushNotificationSubject, nil
	default:
		return "", errors.New("unknown notification type: " + string(t))
	}
}
