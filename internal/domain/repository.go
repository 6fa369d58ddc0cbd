// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/projectly/meeting-service/internal/domain/models"
)

// MeetingRepository defines meeting storage operations. Implementations
// must return a NotFound domain error when a meeting is absent.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	CreateBatch(ctx context.Context, meetings []*models.Meeting) error
	Get(ctx context.Context, id uuid.UUID) (*models.Meeting, error)
	Update(ctx context.Context, meeting *models.Meeting) error

	// ListOverlapping returns active (non-completed, non-cancelled)
	// meetings in the project whose [start, end) interval overlaps the
	// given one under half-open semantics. excludeID, when non-nil, is
	// left out of the result.
	ListOverlapping(ctx context.Context, projectID uuid.UUID, startUTC, endUTC time.Time, excludeID *uuid.UUID) ([]*models.Meeting, error)

	// ListFutureInstances returns scheduled occurrences of a pattern whose
	// start time is after the given instant, base meeting included.
	ListFutureInstances(ctx context.Context, patternID uuid.UUID, after time.Time) ([]*models.Meeting, error)

	// ListByAIStatus returns meetings whose AI pipeline is in one of the
	// given states, for the poller.
	ListByAIStatus(ctx context.Context, statuses []models.AIProcessingStatus) ([]*models.Meeting, error)
}

// RecurringPatternRepository defines recurring pattern storage operations.
type RecurringPatternRepository interface {
	Create(ctx context.Context, pattern *models.RecurringMeetingPattern) error
	Get(ctx context.Context, id uuid.UUID) (*models.RecurringMeetingPattern, error)
	GetByMeeting(ctx context.Context, meetingID uuid.UUID) (*models.RecurringMeetingPattern, error)
	Update(ctx context.Context, pattern *models.RecurringMeetingPattern) error

	// ListActive returns non-cancelled patterns in the project whose end
	// date has not passed, with base meeting and exceptions attached.
	ListActive(ctx context.Context, projectID uuid.UUID, now time.Time) ([]*models.RecurringMeetingPattern, error)

	AddException(ctx context.Context, exception *models.RecurringMeetingException) error
}

// MeetingMemberRepository defines meeting membership storage operations.
type MeetingMemberRepository interface {
	CreateBatch(ctx context.Context, members []*models.MeetingMember) error

	// Get returns the membership row, or (nil, nil) when the member is not
	// invited to the meeting.
	Get(ctx context.Context, meetingID, memberID uuid.UUID) (*models.MeetingMember, error)
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*models.MeetingMember, error)
	Update(ctx context.Context, member *models.MeetingMember) error
}

// ProjectPrivilegeRepository reads per-member privilege rows. A missing row
// is reported as (nil, nil), never an error.
type ProjectPrivilegeRepository interface {
	Get(ctx context.Context, projectID, memberID uuid.UUID) (*models.ProjectPrivilege, error)
}

// MemberDirectory resolves notification addressing for organization members.
type MemberDirectory interface {
	Get(ctx context.Context, memberID uuid.UUID) (*models.OrganizationMember, error)
}

// Repositories bundles the repositories bound to one transaction (or to the
// base connection for reads outside any transaction).
type Repositories struct {
	Meetings   MeetingRepository
	Patterns   RecurringPatternRepository
	Members    MeetingMemberRepository
	Privileges ProjectPrivilegeRepository
	Directory  MemberDirectory
}

// UnitOfWork runs a function inside a single storage transaction. The
// function receives repositories bound to that transaction; any error rolls
// the whole transaction back. Context cancellation before commit unwinds
// the transaction.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error

	// Repos returns repositories bound to the base connection for
	// read-only work outside a transaction.
	Repos() *Repositories
}
