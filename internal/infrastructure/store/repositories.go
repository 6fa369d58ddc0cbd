// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
)

type meetingRepository struct {
	db *gorm.DB
}

func (r *meetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return domain.NewInternalError("failed to create meeting", err)
	}
	return nil
}

func (r *meetingRepository) CreateBatch(ctx context.Context, meetings []*models.Meeting) error {
	if len(meetings) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(meetings).Error; err != nil {
		return domain.NewInternalError("failed to create meetings", err)
	}
	return nil
}

func (r *meetingRepository) Get(ctx context.Context, id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.WithContext(ctx).Preload("Members").First(&meeting, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("meeting not found")
		}
		return nil, domain.NewInternalError("failed to get meeting", err)
	}
	return &meeting, nil
}

func (r *meetingRepository) Update(ctx context.Context, meeting *models.Meeting) error {
	if err := r.db.WithContext(ctx).Save(meeting).Error; err != nil {
		return domain.NewInternalError("failed to update meeting", err)
	}
	return nil
}

func (r *meetingRepository) ListOverlapping(ctx context.Context, projectID uuid.UUID, startUTC, endUTC time.Time, excludeID *uuid.UUID) ([]*models.Meeting, error) {
	// Half-open interval overlap: an existing [s, e) collides with the
	// proposed [startUTC, endUTC) iff s < endUTC and e > startUTC.
	query := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Where("start_time < ? AND end_time > ?", endUTC, startUTC).
		Where("status NOT IN ?", []models.MeetingStatus{
			models.MeetingStatusCompleted,
			models.MeetingStatusCancelled,
		})
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var meetings []*models.Meeting
	if err := query.Find(&meetings).Error; err != nil {
		return nil, domain.NewInternalError("failed to list overlapping meetings", err)
	}
	return meetings, nil
}

func (r *meetingRepository) ListFutureInstances(ctx context.Context, patternID uuid.UUID, after time.Time) ([]*models.Meeting, error) {
	var meetings []*models.Meeting
	err := r.db.WithContext(ctx).
		Where("recurring_pattern_id = ?", patternID).
		Where("start_time > ?", after).
		Order("start_time ASC").
		Find(&meetings).Error
	if err != nil {
		return nil, domain.NewInternalError("failed to list future instances", err)
	}
	return meetings, nil
}

func (r *meetingRepository) ListByAIStatus(ctx context.Context, statuses []models.AIProcessingStatus) ([]*models.Meeting, error) {
	var meetings []*models.Meeting
	err := r.db.WithContext(ctx).
		Where("ai_status IN ?", statuses).
		Find(&meetings).Error
	if err != nil {
		return nil, domain.NewInternalError("failed to list meetings by AI status", err)
	}
	return meetings, nil
}

type patternRepository struct {
	db *gorm.DB
}

func (r *patternRepository) Create(ctx context.Context, pattern *models.RecurringMeetingPattern) error {
	if err := r.db.WithContext(ctx).Create(pattern).Error; err != nil {
		return domain.NewInternalError("failed to create recurring pattern", err)
	}
	return nil
}

func (r *patternRepository) Get(ctx context.Context, id uuid.UUID) (*models.RecurringMeetingPattern, error) {
	var pattern models.RecurringMeetingPattern
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Preload("Exceptions").
		First(&pattern, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("recurring pattern not found")
		}
		return nil, domain.NewInternalError("failed to get recurring pattern", err)
	}
	return &pattern, nil
}

func (r *patternRepository) GetByMeeting(ctx context.Context, meetingID uuid.UUID) (*models.RecurringMeetingPattern, error) {
	var pattern models.RecurringMeetingPattern
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Preload("Exceptions").
		First(&pattern, "meeting_id = ?", meetingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("recurring pattern not found")
		}
		return nil, domain.NewInternalError("failed to get recurring pattern", err)
	}
	return &pattern, nil
}

func (r *patternRepository) Update(ctx context.Context, pattern *models.RecurringMeetingPattern) error {
	if err := r.db.WithContext(ctx).Save(pattern).Error; err != nil {
		return domain.NewInternalError("failed to update recurring pattern", err)
	}
	return nil
}

func (r *patternRepository) ListActive(ctx context.Context, projectID uuid.UUID, now time.Time) ([]*models.RecurringMeetingPattern, error) {
	var patterns []*models.RecurringMeetingPattern
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Preload("Exceptions").
		Joins("JOIN meetings ON meetings.id = recurring_meeting_patterns.meeting_id").
		Where("meetings.project_id = ?", projectID).
		Where("recurring_meeting_patterns.is_cancelled = ?", false).
		Where("recurring_meeting_patterns.end_date > ?", now).
		Find(&patterns).Error
	if err != nil {
		return nil, domain.NewInternalError("failed to list active patterns", err)
	}
	return patterns, nil
}

func (r *patternRepository) AddException(ctx context.Context, exception *models.RecurringMeetingException) error {
	if err := r.db.WithContext(ctx).Create(exception).Error; err != nil {
		return domain.NewInternalError("failed to add pattern exception", err)
	}
	return nil
}

type memberRepository struct {
	db *gorm.DB
}

func (r *memberRepository) CreateBatch(ctx context.Context, members []*models.MeetingMember) error {
	if len(members) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(members).Error; err != nil {
		return domain.NewInternalError("failed to create meeting members", err)
	}
	return nil
}

func (r *memberRepository) Get(ctx context.Context, meetingID, memberID uuid.UUID) (*models.MeetingMember, error) {
	var member models.MeetingMember
	err := r.db.WithContext(ctx).
		First(&member, "meeting_id = ? AND member_id = ?", meetingID, memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to get meeting member", err)
	}
	return &member, nil
}

func (r *memberRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*models.MeetingMember, error) {
	var members []*models.MeetingMember
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Find(&members).Error
	if err != nil {
		return nil, domain.NewInternalError("failed to list meeting members", err)
	}
	return members, nil
}

func (r *memberRepository) Update(ctx context.Context, member *models.MeetingMember) error {
	if err := r.db.WithContext(ctx).Save(member).Error; err != nil {
		return domain.NewInternalError("failed to update meeting member", err)
	}
	return nil
}

type privilegeRepository struct {
	db *gorm.DB
}

func (r *privilegeRepository) Get(ctx context.Context, projectID, memberID uuid.UUID) (*models.ProjectPrivilege, error) {
	var privilege models.ProjectPrivilege
	err := r.db.WithContext(ctx).
		First(&privilege, "project_id = ? AND member_id = ?", projectID, memberID).Error
	if err != nil {
		// A member with no privilege row simply has no access.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to get project privilege", err)
	}
	return &privilege, nil
}

type memberDirectory struct {
	db *gorm.DB
}

func (r *memberDirectory) Get(ctx context.Context, memberID uuid.UUID) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := r.db.WithContext(ctx).
		Preload("PushTokens").
		First(&member, "id = ?", memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("organization member not found")
		}
		return nil, domain.NewInternalError("failed to get organization member", err)
	}
	return &member, nil
}
