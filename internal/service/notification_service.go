// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
	"github.com/projectly/meeting-service/internal/logging"
	"github.com/projectly/meeting-service/pkg/concurrent"
)

// MeetingAction labels the lifecycle event a notification is about.
type MeetingAction string

const (
	ActionScheduled MeetingAction = "scheduled"
	ActionUpdated   MeetingAction = "updated"
	ActionCancelled MeetingAction = "cancelled"
	ActionStarting  MeetingAction = "starting"
)

// NotificationService fans meeting lifecycle notifications out to every
// invited member over email and push. Dispatch is best-effort and runs
// after the surrounding transaction has committed; failures are logged and
// never surfaced to the caller.
type NotificationService struct {
	queue   domain.NotificationQueue
	invites domain.InviteGenerator
	pool    *concurrent.WorkerPool
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(
	queue domain.NotificationQueue,
	invites domain.InviteGenerator,
	pool *concurrent.WorkerPool,
) *NotificationService {
	return &NotificationService{
		queue:   queue,
		invites: invites,
		pool:    pool,
	}
}

// NotifyMembers publishes one email notification per invited member and one
// push notification per registered device. Scheduled-meeting emails carry
// an iCalendar invite.
func (s *NotificationService) NotifyMembers(
	ctx context.Context,
	directory domain.MemberDirectory,
	meeting *models.Meeting,
	pattern *models.RecurringMeetingPattern,
	memberIDs []uuid.UUID,
	action MeetingAction,
) {
	if len(memberIDs) == 0 {
		return
	}

	var ics string
	if action == ActionScheduled {
		invite, err := s.invites.GenerateInvite(meeting, pattern)
		if err != nil {
			slog.WarnContext(ctx, "failed to generate calendar invite",
				logging.ErrKey, err,
				"meeting_id", meeting.ID,
			)
		} else {
			ics = invite
		}
	}

	subject, body := s.render(meeting, action)
	now := time.Now().UTC()

	var tasks []func() error
	for _, memberID := range memberIDs {
		member, err := directory.Get(ctx, memberID)
		if err != nil {
			slog.WarnContext(ctx, "failed to resolve notification recipient",
				logging.ErrKey, err,
				"member_id", memberID,
			)
			continue
		}

		email := models.Notification{
			Type:      models.NotificationTypeEmail,
			Recipient: member.Email,
			Subject:   subject,
			Body:      body,
			ICS:       ics,
			MeetingID: &meeting.ID,
			SentAt:    now,
		}
		tasks = append(tasks, func() error {
			return s.queue.Publish(ctx, email)
		})

		for _, device := range member.PushTokens {
			push := models.Notification{
				Type:      models.NotificationTypePush,
				Recipient: device.Token,
				Subject:   subject,
				Body:      body,
				MeetingID: &meeting.ID,
				SentAt:    now,
			}
			tasks = append(tasks, func() error {
				return s.queue.Publish(ctx, push)
			})
		}
	}

	for _, err := range s.pool.RunAll(ctx, tasks...) {
		slog.WarnContext(ctx, "failed to publish meeting notification",
			logging.ErrKey, err,
			"meeting_id", meeting.ID,
			"action", string(action),
		)
	}
}

func (s *NotificationService) render(meeting *models.Meeting, action MeetingAction) (subject, body string) {
	start := meeting.StartTime
	if loc, err := time.LoadLocation(meeting.Timezone); err == nil {
		start = start.In(loc)
	}
	when := start.Format("Mon, 02 Jan 2006 15:04 MST")

	switch action {
	case ActionScheduled:
		subject = fmt.Sprintf("Meeting scheduled: %s", meeting.Title)
		body = fmt.Sprintf("You have been invited to %q on %s.", meeting.Title, when)
	case ActionUpdated:
		subject = fmt.Sprintf("Meeting updated: %s", meeting.Title)
		body = fmt.Sprintf("%q has been updated. It is now scheduled for %s.", meeting.Title, when)
	case ActionCancelled:
		subject = fmt.Sprintf("Meeting cancelled: %s", meeting.Title)
		body = fmt.Sprintf("%q on %s has been cancelled.", meeting.Title, when)
	case ActionStarting:
		subject = fmt.Sprintf("Meeting starting: %s", meeting.Title)
		body = fmt.Sprintf("%q is starting now.", meeting.Title)
	}
	return subject, body
}
