// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package constants

// NATS subjects for outbound notification messages.
const (
	// EmailNotificationSubject is the subject for email notification dispatch.
	EmailNotificationSubject = "projectly.notifications.email"

	// PushNotificationSubject is the subject for push notification dispatch.
	PushNotificationSubject = "projectly.notifications.push"
)
