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
	"github.com/projectly/meeting-service/pkg/constants"
)

// MeetingService is the scheduling orchestrator. Every exposed operation
// runs its checks and writes inside a single transaction; notifications and
// AI submission run after commit and never affect the outcome.
type MeetingService struct {
	uow         domain.UnitOfWork
	guard       *PrivilegeGuard
	conflicts   *ConflictDetector
	occurrences *OccurrenceService
	audio       *AudioService
	ai          *AIService
	rooms       domain.RoomService
	notifier    *NotificationService
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(
	uow domain.UnitOfWork,
	guard *PrivilegeGuard,
	conflicts *ConflictDetector,
	occurrences *OccurrenceService,
	audio *AudioService,
	ai *AIService,
	rooms domain.RoomService,
	notifier *NotificationService,
) *MeetingService {
	return &MeetingService{
		uow:         uow,
		guard:       guard,
		conflicts:   conflicts,
		occurrences: occurrences,
		audio:       audio,
		ai:          ai,
		rooms:       rooms,
		notifier:    notifier,
	}
}

// GetMeeting returns one meeting the actor is allowed to read.
func (s *MeetingService) GetMeeting(ctx context.Context, actorID, meetingID uuid.UUID) (*models.Meeting, error) {
	repos := s.uow.Repos()
	meeting, err := repos.Meetings.Get(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, meeting.ProjectID,
		models.AspectMeetings, models.PrivilegeLevelRead, &meeting.CreatorID); err != nil {
		return nil, err
	}
	return meeting, nil
}

// CreateMeeting schedules a new meeting, optionally with a recurring
// pattern and an initial set of invited members. Done-type meetings are
// past records: they require an audio file, skip conflict detection, and
// are created already completed.
func (s *MeetingService) CreateMeeting(
	ctx context.Context,
	actorID uuid.UUID,
	req *models.CreateMeetingRequest,
) (*models.Meeting, error) {
	repos := s.uow.Repos()

	if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, req.ProjectID,
		models.AspectMeetings, models.PrivilegeLevelWrite, nil); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	meeting := s.buildMeeting(actorID, req)
	if err := meeting.Validate(now); err != nil {
		return nil, err
	}

	var pattern *models.RecurringMeetingPattern
	if req.Recurrence != nil {
		pattern = &models.RecurringMeetingPattern{
			ID:             uuid.New(),
			MeetingID:      meeting.ID,
			Type:           req.Recurrence.Type,
			RepeatInterval: req.Recurrence.RepeatInterval,
			DaysOfWeek:     req.Recurrence.DaysOfWeek,
			EndDate:        req.Recurrence.EndDate.UTC(),
		}
		meeting.RecurringPatternID = &pattern.ID
		if err := pattern.Validate(now); err != nil {
			return nil, err
		}
	}

	if meeting.Type != models.MeetingTypeDone {
		if err := s.checkConflicts(ctx, repos, meeting, pattern, nil); err != nil {
			return nil, err
		}
	}

	// External side effects before the transaction so their failure aborts
	// cleanly. The stored audio object is the one that needs compensation.
	var audioCleanup func(context.Context)
	switch meeting.Type {
	case models.MeetingTypeDone:
		if req.Audio == nil {
			return nil, domain.NewFieldValidationError(models.FieldErr("audio", "Audio file is required for Done meetings"))
		}
		cleanup, err := s.audio.IngestForCreate(ctx, meeting, req.Audio)
		if err != nil {
			return nil, err
		}
		audioCleanup = cleanup
		meeting.Status = models.MeetingStatusCompleted
	case models.MeetingTypeOnline:
		room, err := s.rooms.CreateRoom(ctx, fmt.Sprintf("meeting-%s", meeting.ID))
		if err != nil {
			return nil, domain.NewUnavailableError("Failed to provision meeting room", err)
		}
		meeting.RoomSID = &room.SID
		meeting.RoomName = &room.Name
	}

	memberIDs := s.inviteeIDs(actorID, req.MemberIDs)
	instances := []*models.Meeting{}
	if pattern != nil {
		instances = s.occurrences.GenerateFutureInstances(meeting, pattern, now.Add(constants.MaxPatternDuration))
		if len(instances) > constants.MaxFutureInstances {
			instances = instances[:constants.MaxFutureInstances]
		}
	}

	err := s.uow.Execute(ctx, func(ctx context.Context, repos *domain.Repositories) error {
		if err := repos.Meetings.Create(ctx, meeting); err != nil {
			return err
		}
		if err := repos.Members.CreateBatch(ctx, s.buildMembers(meeting.ID, actorID, memberIDs)); err != nil {
			return err
		}
		if pattern == nil {
			return nil
		}
		if err := repos.Patterns.Create(ctx, pattern); err != nil {
			return err
		}
		if len(instances) > 0 {
			for _, instance := range instances {
				instance.ID = uuid.New()
			}
			if err := repos.Meetings.CreateBatch(ctx, instances); err != nil {
				return err
			}
			for _, instance := range instances {
				if err := repos.Members.CreateBatch(ctx, s.buildMembers(instance.ID, actorID, memberIDs)); err != nil {
					return err
				}
			}
			last := instances[len(instances)-1].StartTime
			pattern.LastGeneratedDate = &last
			return repos.Patterns.Update(ctx, pattern)
		}
		return nil
	})
	if err != nil {
		if audioCleanup != nil {
			audioCleanup(ctx)
		}
		return nil, err
	}

	s.afterCommit(ctx, meeting, pattern, memberIDs, ActionScheduled)
	return meeting, nil
}

// UpdateMeeting applies a partial update to one meeting. Updating an
// occurrence of a recurring series records a modified exception so
// regeneration never silently reverts the edit.
func (s *MeetingService) UpdateMeeting(
	ctx context.Context,
	actorID, meetingID uuid.UUID,
	req *models.UpdateMeetingRequest,
) (*models.Meeting, error) {
	var meeting *models.Meeting
	var memberIDs []uuid.UUID

	err := s.uow.Execute(ctx, func(ctx context.Context, repos *domain.Repositories) error {
		var err error
		meeting, err = repos.Meetings.Get(ctx, meetingID)
		if err != nil {
			return err
		}
		if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, meeting.ProjectID,
			models.AspectMeetings, models.PrivilegeLevelWrite, &meeting.CreatorID); err != nil {
			return err
		}
		if meeting.Status != models.MeetingStatusScheduled {
			return domain.NewValidationError("Only scheduled meetings can be updated")
		}

		originalStart := meeting.StartTime
		applyUpdates(meeting, req)
		startChanged := !meeting.StartTime.Equal(originalStart)
		if err := meeting.ValidateUpdate(time.Now().UTC(), startChanged); err != nil {
			return err
		}

		if startChanged || req.EndTime != nil {
			if err := s.checkConflicts(ctx, repos, meeting, nil, &meeting.ID); err != nil {
				return err
			}
		}

		if meeting.RecurringPatternID != nil {
			if err := s.recordException(ctx, repos, meeting, originalStart, models.ExceptionKindModified); err != nil {
				return err
			}
		}

		if err := repos.Meetings.Update(ctx, meeting); err != nil {
			return err
		}

		memberIDs, err = s.listMemberIDs(ctx, repos, meeting.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, meeting, nil, memberIDs, ActionUpdated)
	return meeting, nil
}

// StartMeeting moves a scheduled meeting into progress. The transition is
// only allowed inside the window around the scheduled start. For online
// meetings the result carries a room access token for the actor.
func (s *MeetingService) StartMeeting(ctx context.Context, actorID, meetingID uuid.UUID) (*models.StartMeetingResult, error) {
	var meeting *models.Meeting
	var memberIDs []uuid.UUID

	err := s.uow.Execute(ctx, func(ctx context.Context, repos *domain.Repositories) error {
		var err error
		meeting, err = repos.Meetings.Get(ctx, meetingID)
		if err != nil {
			return err
		}
		if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, meeting.ProjectID,
			models.AspectMeetings, models.PrivilegeLevelWrite, &meeting.CreatorID); err != nil {
			return err
		}
		if err := meeting.Start(time.Now().UTC()); err != nil {
			return err
		}
		if err := repos.Meetings.Update(ctx, meeting); err != nil {
			return err
		}
		memberIDs, err = s.listMemberIDs(ctx, repos, meeting.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &models.StartMeetingResult{Meeting: meeting}
	if meeting.Type == models.MeetingTypeOnline && meeting.RoomName != nil {
		token, err := s.rooms.GenerateToken(*meeting.RoomName, actorID.String(), "")
		if err != nil {
			// The meeting is already in progress; the caller can request a
			// token again.
			slog.ErrorContext(ctx, "failed to generate room token",
				logging.ErrKey, err,
				"meeting_id", meeting.ID,
			)
		} else {
			result.RoomToken = token
		}
	}

	s.afterCommit(ctx, meeting, nil, memberIDs, ActionStarting)
	return result, nil
}

// CompleteMeeting moves an in-progress meeting to its terminal Completed
// state. In-person meetings must have audio attached first.
func (s *MeetingService) CompleteMeeting(ctx context.Context, actorID, meetingID uuid.UUID) (*models.Meeting, error) {
	var meeting *models.Meeting

	err := s.uow.Execute(ctx, func(ctx context.Context, repos *domain.Repositories) error {
		var err error
		meeting, err = repos.Meetings.Get(ctx, meetingID)
		if err != nil {
			return err
		}
		if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, meeting.ProjectID,
			models.AspectMeetings, models.PrivilegeLevelWrite, &meeting.CreatorID); err != nil {
			return err
		}
		if err := meeting.Complete(); err != nil {
			return err
		}
		return repos.Meetings.Update(ctx, meeting)
	})
	if err != nil {
		return nil, err
	}

	if meeting.EligibleForAISubmission() {
		if err := s.ai.Submit(ctx, meeting.ID); err != nil {
			slog.ErrorContext(ctx, "failed to submit completed meeting for AI processing",
				logging.ErrKey, err,
				"meeting_id", meeting.ID,
			)
		}
	}
	return meeting, nil
}

// CancelMeeting cancels one meeting. Cancelling an occurrence of a
// recurring series records a skip exception for its date; the rest of the
// series is untouched.
func (s *MeetingService) CancelMeeting(ctx context.Context, actorID, meetingID uuid.UUID) (*models.Meeting, error) {
	var meeting *models.Meeting
	var memberIDs []uuid.UUID

	err := s.uow.Execute(ctx, func(ctx context.Context, repos *domain.Repositories) error {
		var err error
		meeting, err = repos.Meetings.Get(ctx, meetingID)
		if err != nil {
			return err
		}
		if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, meeting.ProjectID,
			models.AspectMeetings, models.PrivilegeLevelWrite, &meeting.CreatorID); err != nil {
			return err
		}
		if err := meeting.Cancel(); err != nil {
			return err
		}
		if meeting.RecurringPatternID != nil {
			if err := s.recordException(ctx, repos, meeting, meeting.StartTime, models.ExceptionKindSkip); err != nil {
				return err
			}
		}
		if err := repos.Meetings.Update(ctx, meeting); err != nil {
			return err
		}
		memberIDs, err = s.listMemberIDs(ctx, repos, meeting.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, meeting, nil, memberIDs, ActionCancelled)
	return meeting, nil
}

// ModifyRecurringMeeting changes a recurring series. A series-wide time
// change shifts only the time of day of each future occurrence; dates are
// preserved. Cancelling the series stops generation and cancels every
// future occurrence that has not started, keeping past rows intact.
func (s *MeetingService) ModifyRecurringMeeting(
	ctx context.Context,
	actorID, meetingID uuid.UUID,
	req *models.ModifyRecurringRequest,
) (*models.Meeting, error) {
	if !req.ApplyToSeries && !req.CancelSeries {
		return s.UpdateMeeting(ctx, actorID, meetingID, &req.Updates)
	}

	var meeting *models.Meeting
	var memberIDs []uuid.UUID
	action := ActionUpdated

	err := s.uow.Execute(ctx, func(ctx context.Context, repos *domain.Repositories) error {
		var err error
		meeting, err = repos.Meetings.Get(ctx, meetingID)
		if err != nil {
			return err
		}
		if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, meeting.ProjectID,
			models.AspectMeetings, models.PrivilegeLevelWrite, &meeting.CreatorID); err != nil {
			return err
		}
		if meeting.RecurringPatternID == nil {
			return domain.NewValidationError("Meeting is not part of a recurring series")
		}

		pattern, err := repos.Patterns.Get(ctx, *meeting.RecurringPatternID)
		if err != nil {
			return err
		}

		if req.CancelSeries {
			action = ActionCancelled
			return s.cancelSeries(ctx, repos, pattern)
		}
		if err := s.modifySeries(ctx, repos, pattern, &req.Updates); err != nil {
			return err
		}
		// Re-read the targeted meeting so the caller sees the applied change.
		meeting, err = repos.Meetings.Get(ctx, meetingID)
		if err != nil {
			return err
		}
		memberIDs, err = s.listMemberIDs(ctx, repos, meeting.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, meeting, nil, memberIDs, action)
	return meeting, nil
}

// ConfirmAttendance marks the actor as attending a meeting they are
// invited to.
func (s *MeetingService) ConfirmAttendance(ctx context.Context, actorID, meetingID uuid.UUID) error {
	return s.uow.Execute(ctx, func(ctx context.Context, repos *domain.Repositories) error {
		meeting, err := repos.Meetings.Get(ctx, meetingID)
		if err != nil {
			return err
		}
		if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, meeting.ProjectID,
			models.AspectMeetings, models.PrivilegeLevelRead, &meeting.CreatorID); err != nil {
			return err
		}
		if !meeting.IsActive() {
			return domain.NewValidationError("Cannot confirm attendance for a completed or cancelled meeting")
		}

		member, err := repos.Members.Get(ctx, meetingID, actorID)
		if err != nil {
			return err
		}
		if member == nil {
			return domain.NewNotFoundError("You are not invited to this meeting")
		}
		if member.Confirmed {
			return nil
		}
		member.Confirmed = true
		return repos.Members.Update(ctx, member)
	})
}

// ListOccurrences returns the upcoming start times of a meeting's series,
// the meeting itself included while it is still ahead.
func (s *MeetingService) ListOccurrences(ctx context.Context, actorID, meetingID uuid.UUID, limit int) ([]time.Time, error) {
	repos := s.uow.Repos()

	meeting, err := repos.Meetings.Get(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.RequirePrivilege(ctx, repos.Privileges, actorID, meeting.ProjectID,
		models.AspectMeetings, models.PrivilegeLevelRead, &meeting.CreatorID); err != nil {
		return nil, err
	}

	var pattern *models.RecurringMeetingPattern
	if meeting.RecurringPatternID != nil {
		pattern, err = repos.Patterns.Get(ctx, *meeting.RecurringPatternID)
		if err != nil {
			return nil, err
		}
		if pattern.Meeting != nil {
			meeting = pattern.Meeting
		}
	}

	if limit <= 0 || limit > constants.MaxFutureInstances {
		limit = constants.MaxFutureInstances
	}
	return s.occurrences.NextOccurrenceTimes(meeting, pattern, time.Now().UTC(), limit), nil
}

func (s *MeetingService) buildMeeting(actorID uuid.UUID, req *models.CreateMeetingRequest) *models.Meeting {
	language := req.Language
	if language == "" {
		language = "en"
	}
	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	return &models.Meeting{
		ID:          uuid.New(),
		ProjectID:   req.ProjectID,
		CreatorID:   actorID,
		Title:       req.Title,
		Goal:        req.Goal,
		Language:    language,
		Type:        req.Type,
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
		Timezone:    timezone,
		Location:    req.Location,
		Status:      models.MeetingStatusScheduled,
		AudioStatus: models.AudioStatusNone,
		AIStatus:    models.AIProcessingStatusNotStarted,
	}
}

// checkConflicts runs both halves of conflict detection for the proposed
// meeting, raising a Conflict domain error on the first collision.
func (s *MeetingService) checkConflicts(
	ctx context.Context,
	repos *domain.Repositories,
	meeting *models.Meeting,
	pattern *models.RecurringMeetingPattern,
	excludeID *uuid.UUID,
) error {
	ok, err := s.conflicts.ValidateSingleMeetingTime(ctx, repos.Meetings,
		meeting.ProjectID, meeting.StartTime, meeting.EndTime, excludeID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewConflictError("The requested time overlaps another meeting in this project")
	}

	mask := proposedDaysMask(meeting, pattern)
	conflicted, err := s.conflicts.HasRecurringConflicts(ctx, repos.Patterns,
		meeting.ProjectID, meeting.StartTime, meeting.EndTime, meeting.Timezone, mask, excludeID)
	if err != nil {
		return err
	}
	if conflicted {
		return domain.NewConflictError("The requested time overlaps a recurring meeting series in this project")
	}
	return nil
}

// proposedDaysMask derives the weekday mask the proposal occupies: the
// pattern's own mask for weekly patterns, every day for daily patterns, and
// the single start weekday for one-off meetings.
func proposedDaysMask(meeting *models.Meeting, pattern *models.RecurringMeetingPattern) models.DaysOfWeek {
	if pattern != nil {
		if pattern.Type == models.RecurrenceTypeWeekly {
			return pattern.DaysOfWeek
		}
		return models.DaysOfWeek(0x7F)
	}
	loc, err := time.LoadLocation(meeting.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return models.DayOf(meeting.StartTime.In(loc).Weekday())
}

// inviteeIDs returns the creator plus the requested members, deduplicated.
func (s *MeetingService) inviteeIDs(creatorID uuid.UUID, requested []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]bool{creatorID: true}
	ids := []uuid.UUID{creatorID}
	for _, id := range requested {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// buildMembers creates membership rows for one meeting. The creator starts
// confirmed; everyone else confirms explicitly.
func (s *MeetingService) buildMembers(meetingID, creatorID uuid.UUID, memberIDs []uuid.UUID) []*models.MeetingMember {
	members := make([]*models.MeetingMember, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, &models.MeetingMember{
			ID:        uuid.New(),
			MeetingID: meetingID,
			MemberID:  id,
			Confirmed: id == creatorID,
		})
	}
	return members
}

func (s *MeetingService) listMemberIDs(ctx context.Context, repos *domain.Repositories, meetingID uuid.UUID) ([]uuid.UUID, error) {
	members, err := repos.Members.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.MemberID)
	}
	return ids, nil
}

// recordException marks the occurrence's original date on its pattern so a
// later regeneration of the series leaves this occurrence alone.
func (s *MeetingService) recordException(
	ctx context.Context,
	repos *domain.Repositories,
	meeting *models.Meeting,
	occurrenceStart time.Time,
	kind models.ExceptionKind,
) error {
	loc, err := time.LoadLocation(meeting.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := occurrenceStart.In(loc)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	return repos.Patterns.AddException(ctx, &models.RecurringMeetingException{
		ID:        uuid.New(),
		PatternID: *meeting.RecurringPatternID,
		Date:      date,
		Kind:      kind,
	})
}

// cancelSeries stops further generation and cancels every future occurrence
// that is still scheduled. Past and terminal rows are never touched.
func (s *MeetingService) cancelSeries(
	ctx context.Context,
	repos *domain.Repositories,
	pattern *models.RecurringMeetingPattern,
) error {
	pattern.IsCancelled = true
	if err := repos.Patterns.Update(ctx, pattern); err != nil {
		return err
	}

	future, err := repos.Meetings.ListFutureInstances(ctx, pattern.ID, time.Now().UTC())
	if err != nil {
		return err
	}
	for _, instance := range future {
		if instance.Status != models.MeetingStatusScheduled {
			continue
		}
		if err := instance.Cancel(); err != nil {
			return err
		}
		if err := repos.Meetings.Update(ctx, instance); err != nil {
			return err
		}
	}
	return nil
}

// modifySeries applies the updates to every future occurrence that has not
// started. Start and end time changes shift only the wall-clock time of
// day; each occurrence keeps its own date.
func (s *MeetingService) modifySeries(
	ctx context.Context,
	repos *domain.Repositories,
	pattern *models.RecurringMeetingPattern,
	updates *models.UpdateMeetingRequest,
) error {
	future, err := repos.Meetings.ListFutureInstances(ctx, pattern.ID, time.Now().UTC())
	if err != nil {
		return err
	}
	if len(future) == 0 {
		return domain.NewValidationError("The series has no future occurrences to modify")
	}

	var startDelta, endDelta time.Duration
	reference := future[0]
	loc, locErr := time.LoadLocation(reference.Timezone)
	if locErr != nil {
		loc = time.UTC
	}
	if updates.StartTime != nil {
		startDelta = TimeOfDayDelta(reference.StartTime, *updates.StartTime, loc)
	}
	if updates.EndTime != nil {
		endDelta = TimeOfDayDelta(reference.EndTime, *updates.EndTime, loc)
	}

	for _, instance := range future {
		if instance.Status != models.MeetingStatusScheduled {
			continue
		}
		applyFieldUpdates(instance, updates)
		instance.StartTime = instance.StartTime.Add(startDelta)
		instance.EndTime = instance.EndTime.Add(endDelta)
		if !instance.EndTime.After(instance.StartTime) {
			return domain.NewFieldValidationError(models.FieldErr("end_time", "End time must be after start time"))
		}
		if err := repos.Meetings.Update(ctx, instance); err != nil {
			return err
		}
	}
	return nil
}

// afterCommit dispatches best-effort notifications once the transaction has
// committed. Failures are logged inside the notifier.
func (s *MeetingService) afterCommit(
	ctx context.Context,
	meeting *models.Meeting,
	pattern *models.RecurringMeetingPattern,
	memberIDs []uuid.UUID,
	action MeetingAction,
) {
	s.notifier.NotifyMembers(ctx, s.uow.Repos().Directory, meeting, pattern, memberIDs, action)

	if action == ActionScheduled && meeting.Type == models.MeetingTypeDone {
		if err := s.ai.Submit(ctx, meeting.ID); err != nil {
			slog.ErrorContext(ctx, "failed to submit meeting for AI processing",
				logging.ErrKey, err,
				"meeting_id", meeting.ID,
			)
		}
	}
}

// applyUpdates copies the non-nil update fields onto the meeting, start and
// end times included.
func applyUpdates(meeting *models.Meeting, req *models.UpdateMeetingRequest) {
	applyFieldUpdates(meeting, req)
	if req.StartTime != nil {
		meeting.StartTime = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		meeting.EndTime = req.EndTime.UTC()
	}
}

// applyFieldUpdates copies the non-time update fields onto the meeting.
// Series modification handles the time fields itself.
func applyFieldUpdates(meeting *models.Meeting, req *models.UpdateMeetingRequest) {
	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Goal != nil {
		meeting.Goal = req.Goal
	}
	if req.Language != nil {
		meeting.Language = *req.Language
	}
	if req.Timezone != nil {
		meeting.Timezone = *req.Timezone
	}
	if req.Location != nil {
		meeting.Location = req.Location
	}
}
