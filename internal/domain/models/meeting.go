// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/projectly/meeting-service/pkg/constants"
)

// MeetingType is the kind of meeting being scheduled.
type MeetingType string

const (
	// MeetingTypeInPerson is a meeting held physically at a location.
	MeetingTypeInPerson MeetingType = "in_person"
	// MeetingTypeOnline is a meeting held in a remote video room.
	MeetingTypeOnline MeetingType = "online"
	// MeetingTypeDone is a record of a past meeting entered after the fact.
	MeetingTypeDone MeetingType = "done"
)

// MeetingStatus is the lifecycle state of a meeting.
type MeetingStatus string

const (
	MeetingStatusScheduled  MeetingStatus = "scheduled"
	MeetingStatusInProgress MeetingStatus = "in_progress"
	MeetingStatusCompleted  MeetingStatus = "completed"
	MeetingStatusCancelled  MeetingStatus = "cancelled"
)

// AudioStatus tracks whether a meeting has a usable audio asset.
type AudioStatus string

const (
	AudioStatusNone      AudioStatus = "none"
	AudioStatusAvailable AudioStatus = "available"
)

// AIProcessingStatus tracks the asynchronous transcription/summary pipeline
// for a meeting's current audio asset.
type AIProcessingStatus string

const (
	AIProcessingStatusNotStarted AIProcessingStatus = "not_started"
	AIProcessingStatusOnQueue    AIProcessingStatus = "on_queue"
	AIProcessingStatusProcessing AIProcessingStatus = "processing"
	AIProcessingStatusDone       AIProcessingStatus = "done"
	AIProcessingStatusFailed     AIProcessingStatus = "failed"
)

// Meeting is a scheduled meeting within a project. Start and end instants
// are stored in UTC; Timezone keeps the originating IANA zone for local-time
// redisplay and time-of-day arithmetic.
type Meeting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null" json:"creator_id"`

	Title    string      `gorm:"type:varchar(200);not null" json:"title"`
	Goal     *string     `gorm:"type:text" json:"goal,omitempty"`
	Language string      `gorm:"type:varchar(10);not null;default:'en'" json:"language"`
	Type     MeetingType `gorm:"type:varchar(20);not null" json:"type"`

	StartTime time.Time     `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time     `gorm:"not null" json:"end_time"`
	Timezone  string        `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	Location  *string       `gorm:"type:varchar(255)" json:"location,omitempty"`
	RoomSID   *string       `gorm:"type:varchar(100)" json:"room_sid,omitempty"`
	RoomName  *string       `gorm:"type:varchar(100)" json:"room_name,omitempty"`
	Status    MeetingStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`

	// Audio asset fields
	AudioURL        *string     `gorm:"type:text" json:"audio_url,omitempty"`
	AudioStatus     AudioStatus `gorm:"type:varchar(20);not null;default:'none'" json:"audio_status"`
	AudioSource     *string     `gorm:"type:varchar(50)" json:"audio_source,omitempty"`
	AudioUploadedAt *time.Time  `json:"audio_uploaded_at,omitempty"`

	// AI processing fields, keyed to the current audio asset
	AIStatus      AIProcessingStatus `gorm:"type:varchar(20);not null;default:'not_started';index" json:"ai_status"`
	AIToken       *string            `gorm:"type:varchar(255)" json:"ai_token,omitempty"`
	Transcript    *string            `gorm:"type:text" json:"transcript,omitempty"`
	Summary       *string            `gorm:"type:text" json:"summary,omitempty"`
	KeyPoints     *string            `gorm:"type:text" json:"key_points,omitempty"`
	AIProcessedAt *time.Time         `json:"ai_processed_at,omitempty"`

	// Recurring series links, stored as ids and resolved by lookup
	RecurringPatternID *uuid.UUID `gorm:"type:uuid;index" json:"recurring_pattern_id,omitempty"`
	OriginalMeetingID  *uuid.UUID `gorm:"type:uuid;index" json:"original_meeting_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Members []MeetingMember `gorm:"foreignKey:MeetingID" json:"members,omitempty"`
}

func (Meeting) TableName() string {
	return "meetings"
}

// IsActive reports whether the meeting still occupies its time slot for
// conflict purposes.
func (m *Meeting) IsActive() bool {
	return m.Status != MeetingStatusCompleted && m.Status != MeetingStatusCancelled
}

// Validate checks the creation-time invariants of the meeting.
func (m *Meeting) Validate(now time.Time) error {
	fields := m.invariantViolations()
	if m.Type != MeetingTypeDone && !m.StartTime.After(now) {
		fields = append(fields, FieldErr("start_time", "Start time must be in the future"))
	}

	if len(fields) > 0 {
		return validationError(fields)
	}
	return nil
}

// ValidateUpdate checks the invariants that apply when editing an existing
// meeting. The future-start rule binds scheduling only, so it is enforced
// solely when the edit moves the start time.
func (m *Meeting) ValidateUpdate(now time.Time, startChanged bool) error {
	fields := m.invariantViolations()
	if startChanged && m.Type != MeetingTypeDone && !m.StartTime.After(now) {
		fields = append(fields, FieldErr("start_time", "Start time must be in the future"))
	}

	if len(fields) > 0 {
		return validationError(fields)
	}
	return nil
}

func (m *Meeting) invariantViolations() []FieldError {
	var fields []FieldError

	if m.Title == "" {
		fields = append(fields, FieldErr("title", "Title is required"))
	}
	switch m.Type {
	case MeetingTypeInPerson, MeetingTypeOnline, MeetingTypeDone:
	default:
		fields = append(fields, FieldErr("type", "Unknown meeting type"))
	}
	if !m.EndTime.After(m.StartTime) {
		fields = append(fields, FieldErr("end_time", "End time must be after start time"))
	}
	if m.Type == MeetingTypeDone && m.RecurringPatternID != nil {
		fields = append(fields, FieldErr("recurrence", "Done meetings cannot be recurring"))
	}
	if _, err := time.LoadLocation(m.Timezone); err != nil {
		fields = append(fields, FieldErr("timezone", "Unknown time zone identifier"))
	}
	return fields
}

// Start transitions the meeting from Scheduled to InProgress. It is only
// permitted within the window around the scheduled start time.
func (m *Meeting) Start(now time.Time) error {
	if m.Status != MeetingStatusScheduled {
		return validationError([]FieldError{
			FieldErr("status", "Only scheduled meetings can be started"),
		})
	}
	windowOpen := m.StartTime.Add(-constants.StartWindow)
	windowClose := m.StartTime.Add(constants.StartWindow)
	if now.Before(windowOpen) || now.After(windowClose) {
		return validationError([]FieldError{
			FieldErr("start_time", "Meeting can only be started within 30 minutes of its scheduled start time"),
		})
	}
	m.Status = MeetingStatusInProgress
	return nil
}

// Complete transitions the meeting from InProgress to Completed. In-person
// meetings require an available audio recording first.
func (m *Meeting) Complete() error {
	if m.Status != MeetingStatusInProgress {
		return validationError([]FieldError{
			FieldErr("status", "Only meetings in progress can be completed"),
		})
	}
	if m.Type == MeetingTypeInPerson && m.AudioStatus != AudioStatusAvailable {
		return validationError([]FieldError{
			FieldErr("audio", "Audio recording is required to complete an in-person meeting"),
		})
	}
	m.Status = MeetingStatusCompleted
	return nil
}

// Cancel transitions the meeting to Cancelled from any non-terminal state.
func (m *Meeting) Cancel() error {
	if m.Status == MeetingStatusCompleted || m.Status == MeetingStatusCancelled {
		return validationError([]FieldError{
			FieldErr("status", "Completed or cancelled meetings cannot be cancelled"),
		})
	}
	m.Status = MeetingStatusCancelled
	return nil
}

// SetAudio records a freshly uploaded audio asset and re-arms the AI
// pipeline at NotStarted so processing is always keyed to the current
// upload, regardless of any prior outcome.
func (m *Meeting) SetAudio(url, source string, uploadedAt time.Time) {
	m.AudioURL = &url
	m.AudioStatus = AudioStatusAvailable
	m.AudioSource = &source
	m.AudioUploadedAt = &uploadedAt
	m.ResetAIProcessing()
}

// ResetAIProcessing clears the processing token and report fields and
// returns the AI pipeline to its initial state.
func (m *Meeting) ResetAIProcessing() {
	m.AIStatus = AIProcessingStatusNotStarted
	m.AIToken = nil
	m.Transcript = nil
	m.Summary = nil
	m.KeyPoints = nil
	m.AIProcessedAt = nil
}

// EligibleForAISubmission reports whether the meeting can be submitted to
// the AI processing service.
func (m *Meeting) EligibleForAISubmission() bool {
	return m.AudioStatus == AudioStatusAvailable && m.AIStatus == AIProcessingStatusNotStarted
}
