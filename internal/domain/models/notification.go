// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType selects the delivery channel for a notification.
type NotificationType string

const (
	NotificationTypeEmail NotificationType = "email"
	NotificationTypePush  NotificationType = "push"
)

// Notification is the queue payload for one best-effort delivery. Recipient
// is an email address for email notifications and a device token for push
// notifications.
type Notification struct {
	Type      NotificationType `json:"type"`
	Recipient string           `json:"recipient"`
	Subject   string           `json:"subject"`
	Body      string           `json:"body"`
	// ICS carries an iCalendar invite for email notifications about
	// scheduled meetings; empty otherwise.
	ICS       string     `json:"ics,omitempty"`
	MeetingID *uuid.UUID `json:"meeting_id,omitempty"`
	SentAt    time.Time  `json:"sent_at"`
}
