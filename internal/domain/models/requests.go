// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"time"

	"github.com/google/uuid"
)

// RecurrencePayload describes the recurring pattern requested at meeting
// creation.
type RecurrencePayload struct {
	Type           RecurrenceType `json:"type"`
	RepeatInterval int            `json:"repeat_interval"`
	DaysOfWeek     DaysOfWeek     `json:"days_of_week"`
	EndDate        time.Time      `json:"end_date"`
}

// CreateMeetingRequest is the payload for scheduling a new meeting.
type CreateMeetingRequest struct {
	ProjectID uuid.UUID   `json:"project_id"`
	Title     string      `json:"title"`
	Goal      *string     `json:"goal,omitempty"`
	Language  string      `json:"language"`
	Type      MeetingType `json:"type"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	Timezone  string      `json:"timezone"`
	Location  *string     `json:"location,omitempty"`

	MemberIDs  []uuid.UUID        `json:"member_ids,omitempty"`
	Recurrence *RecurrencePayload `json:"recurrence,omitempty"`

	// Audio is required for Done-type meetings entered after the fact and
	// ignored for all other types.
	Audio *AudioFile `json:"-"`
}

// UpdateMeetingRequest is the payload for mutating a single meeting. Nil
// fields are left unchanged.
type UpdateMeetingRequest struct {
	Title     *string    `json:"title,omitempty"`
	Goal      *string    `json:"goal,omitempty"`
	Language  *string    `json:"language,omitempty"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Timezone  *string    `json:"timezone,omitempty"`
	Location  *string    `json:"location,omitempty"`
}

// ModifyRecurringRequest targets either a single occurrence of a series or
// the whole series.
type ModifyRecurringRequest struct {
	// ApplyToSeries applies the change to every future not-yet-started
	// occurrence instead of just the targeted one.
	ApplyToSeries bool `json:"apply_to_series"`
	// CancelSeries stops further generation and cancels future occurrences.
	CancelSeries bool `json:"cancel_series"`

	Updates UpdateMeetingRequest `json:"updates"`
}

// StartMeetingResult is returned by StartMeeting; RoomToken is set for
// online meetings only.
type StartMeetingResult struct {
	Meeting   *Meeting `json:"meeting"`
	RoomToken string   `json:"room_token,omitempty"`
}
