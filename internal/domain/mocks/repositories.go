// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

// Package mocks contains testify mocks for the domain ports.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/projectly/meeting-service/internal/domain/models"
)

// MockMeetingRepository implements domain.MeetingRepository for testing
type MockMeetingRepository struct {
	mock.Mock
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	args := m.Called(ctx, meeting)
	return args.Error(0)
}

func (m *MockMeetingRepository) CreateBatch(ctx context.Context, meetings []*models.Meeting) error {
	args := m.Called(ctx, meetings)
	return args.Error(0)
}

func (m *MockMeetingRepository) Get(ctx context.Context, id uuid.UUID) (*models.Meeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) Update(ctx context.Context, meeting *models.Meeting) error {
	args := m.Called(ctx, meeting)
	return args.Error(0)
}

func (m *MockMeetingRepository) ListOverlapping(ctx context.Context, projectID uuid.UUID, startUTC, endUTC time.Time, excludeID *uuid.UUID) ([]*models.Meeting, error) {
	args := m.Called(ctx, projectID, startUTC, endUTC, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) ListFutureInstances(ctx context.Context, patternID uuid.UUID, after time.Time) ([]*models.Meeting, error) {
	args := m.Called(ctx, patternID, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) ListByAIStatus(ctx context.Context, statuses []models.AIProcessingStatus) ([]*models.Meeting, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Meeting), args.Error(1)
}

// MockRecurringPatternRepository implements domain.RecurringPatternRepository for testing
type MockRecurringPatternRepository struct {
	mock.Mock
}

func (m *MockRecurringPatternRepository) Create(ctx context.Context, pattern *models.RecurringMeetingPattern) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockRecurringPatternRepository) Get(ctx context.Context, id uuid.UUID) (*models.RecurringMeetingPattern, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecurringMeetingPattern), args.Error(1)
}

func (m *MockRecurringPatternRepository) GetByMeeting(ctx context.Context, meetingID uuid.UUID) (*models.RecurringMeetingPattern, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecurringMeetingPattern), args.Error(1)
}

func (m *MockRecurringPatternRepository) Update(ctx context.Context, pattern *models.RecurringMeetingPattern) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockRecurringPatternRepository) ListActive(ctx context.Context, projectID uuid.UUID, now time.Time) ([]*models.RecurringMeetingPattern, error) {
	args := m.Called(ctx, projectID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RecurringMeetingPattern), args.Error(1)
}

func (m *MockRecurringPatternRepository) AddException(ctx context.Context, exception *models.RecurringMeetingException) error {
	args := m.Called(ctx, exception)
	return args.Error(0)
}

// MockMeetingMemberRepository implements domain.MeetingMemberRepository for testing
type MockMeetingMemberRepository struct {
	mock.Mock
}

func (m *MockMeetingMemberRepository) CreateBatch(ctx context.Context, members []*models.MeetingMember) error {
	args := m.Called(ctx, members)
	return args.Error(0)
}

func (m *MockMeetingMemberRepository) Get(ctx context.Context, meetingID, memberID uuid.UUID) (*models.MeetingMember, error) {
	args := m.Called(ctx, meetingID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeetingMember), args.Error(1)
}

func (m *MockMeetingMemberRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*models.MeetingMember, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MeetingMember), args.Error(1)
}

func (m *MockMeetingMemberRepository) Update(ctx context.Context, member *models.MeetingMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// MockProjectPrivilegeRepository implements domain.ProjectPrivilegeRepository for testing
type MockProjectPrivilegeRepository struct {
	mock.Mock
}

func (m *MockProjectPrivilegeRepository) Get(ctx context.Context, projectID, memberID uuid.UUID) (*models.ProjectPrivilege, error) {
	args := m.Called(ctx, projectID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectPrivilege), args.Error(1)
}

// MockMemberDirectory implements domain.MemberDirectory for testing
type MockMemberDirectory struct {
	mock.Mock
}

func (m *MockMemberDirectory) Get(ctx context.Context, memberID uuid.UUID) (*models.OrganizationMember, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrganizationMember), args.Error(1)
}
