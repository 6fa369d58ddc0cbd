// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"time"

	"github.com/projectly/meeting-service/internal/domain/models"
)

// safetyIterationCap bounds the generation loops against malformed
// patterns; the horizon normally terminates them much earlier.
const safetyIterationCap = 1000

// OccurrenceService expands recurring patterns into concrete future meeting
// occurrences. Expansion is pure: the same pattern and horizon always yield
// the same sequence.
type OccurrenceService struct{}

// NewOccurrenceService creates a new OccurrenceService.
func NewOccurrenceService() *OccurrenceService {
	return &OccurrenceService{}
}

// GenerateFutureInstances expands the pattern into concrete occurrences
// strictly after the base meeting's start, up to the earlier of the
// pattern's end date and the horizon. Dates present in the pattern's
// exception set are skipped. The caller is responsible for capping how many
// of the returned instances are persisted.
func (s *OccurrenceService) GenerateFutureInstances(
	base *models.Meeting,
	pattern *models.RecurringMeetingPattern,
	horizon time.Time,
) []*models.Meeting {
	if base == nil || pattern == nil || pattern.IsCancelled {
		return nil
	}

	loc := meetingLocation(base)
	until := pattern.EndDate.UTC()
	if horizon.UTC().Before(until) {
		until = horizon.UTC()
	}

	dates := s.occurrenceDates(base, pattern, loc, base.StartTime, until, 0)

	duration := base.EndTime.Sub(base.StartTime)
	instances := make([]*models.Meeting, 0, len(dates))
	for _, start := range dates {
		instances = append(instances, s.instantiate(base, pattern, start, duration))
	}
	return instances
}

// NextOccurrenceTimes returns up to limit occurrence start times of a
// series after the given instant, base meeting included when still ahead.
func (s *OccurrenceService) NextOccurrenceTimes(
	base *models.Meeting,
	pattern *models.RecurringMeetingPattern,
	from time.Time,
	limit int,
) []time.Time {
	if base == nil || limit <= 0 {
		return nil
	}

	var out []time.Time
	if base.StartTime.After(from) {
		out = append(out, base.StartTime)
	}
	if pattern == nil || pattern.IsCancelled {
		return out
	}

	loc := meetingLocation(base)
	after := base.StartTime
	if from.After(after) {
		after = from
	}
	dates := s.occurrenceDates(base, pattern, loc, after, pattern.EndDate.UTC(), limit-len(out))
	return append(out, dates...)
}

// occurrenceDates walks the pattern from the base start time and collects
// occurrence dates strictly after the given instant and strictly before
// until (UTC comparison). A limit of 0 means unbounded within the horizon.
func (s *OccurrenceService) occurrenceDates(
	base *models.Meeting,
	pattern *models.RecurringMeetingPattern,
	loc *time.Location,
	after, until time.Time,
	limit int,
) []time.Time {
	switch pattern.Type {
	case models.RecurrenceTypeDaily:
		return s.dailyDates(base, pattern, loc, after, until, limit)
	case models.RecurrenceTypeWeekly:
		return s.weeklyDates(base, pattern, loc, after, until, limit)
	default:
		return nil
	}
}

func (s *OccurrenceService) dailyDates(
	base *models.Meeting,
	pattern *models.RecurringMeetingPattern,
	loc *time.Location,
	after, until time.Time,
	limit int,
) []time.Time {
	var dates []time.Time
	current := base.StartTime.In(loc)

	for i := 0; i < safetyIterationCap; i++ {
		current = current.AddDate(0, 0, pattern.RepeatInterval)
		if !current.UTC().Before(until) {
			break
		}
		if !current.After(after) {
			continue
		}
		if pattern.HasExceptionOn(current, loc) {
			continue
		}
		dates = append(dates, current.UTC())
		if limit > 0 && len(dates) >= limit {
			break
		}
	}
	return dates
}

func (s *OccurrenceService) weeklyDates(
	base *models.Meeting,
	pattern *models.RecurringMeetingPattern,
	loc *time.Location,
	after, until time.Time,
	limit int,
) []time.Time {
	days := pattern.DaysOfWeek.Weekdays()
	start := base.StartTime.In(loc)
	if len(days) == 0 {
		// Defensive: validation requires a mask for weekly patterns.
		days = []time.Weekday{start.Weekday()}
	}

	weekStart := startOfWeek(start)

	var dates []time.Time
	for weekCount := 0; weekCount < safetyIterationCap; weekCount++ {
		currentWeek := weekStart.AddDate(0, 0, weekCount*7*pattern.RepeatInterval)
		if !currentWeek.UTC().Before(until) {
			break
		}

		for _, day := range days {
			dayOffset := (int(day) - int(currentWeek.Weekday()) + 7) % 7
			occurrenceDay := currentWeek.AddDate(0, 0, dayOffset)

			// Preserve the base meeting's time of day.
			occurrence := time.Date(
				occurrenceDay.Year(), occurrenceDay.Month(), occurrenceDay.Day(),
				start.Hour(), start.Minute(), start.Second(), start.Nanosecond(),
				loc,
			)

			if !occurrence.UTC().Before(until) {
				continue
			}
			if !occurrence.After(after) {
				continue
			}
			if pattern.HasExceptionOn(occurrence, loc) {
				continue
			}
			dates = append(dates, occurrence.UTC())
			if limit > 0 && len(dates) >= limit {
				return dates
			}
		}
	}
	return dates
}

// instantiate copies the base meeting into a fresh occurrence carrying a
// reference back to the original. Occurrences start with zero
// confirmations.
func (s *OccurrenceService) instantiate(
	base *models.Meeting,
	pattern *models.RecurringMeetingPattern,
	start time.Time,
	duration time.Duration,
) *models.Meeting {
	originalID := base.ID
	patternID := pattern.ID
	return &models.Meeting{
		ProjectID:          base.ProjectID,
		CreatorID:          base.CreatorID,
		Title:              base.Title,
		Goal:               base.Goal,
		Language:           base.Language,
		Type:               base.Type,
		StartTime:          start,
		EndTime:            start.Add(duration),
		Timezone:           base.Timezone,
		Location:           base.Location,
		// Occurrences of an online series share the base meeting's room;
		// StartMeeting mints join tokens against it.
		RoomSID:            base.RoomSID,
		RoomName:           base.RoomName,
		Status:             models.MeetingStatusScheduled,
		AudioStatus:        models.AudioStatusNone,
		AIStatus:           models.AIProcessingStatusNotStarted,
		RecurringPatternID: &patternID,
		OriginalMeetingID:  &originalID,
	}
}

// TimeOfDayDelta computes the wall-clock shift between two start times in
// the given location, ignoring any date component. Used when a whole series
// is rescheduled: each occurrence keeps its date and shifts only its time
// of day.
func TimeOfDayDelta(oldStart, newStart time.Time, loc *time.Location) time.Duration {
	o := oldStart.In(loc)
	n := newStart.In(loc)
	oldSeconds := o.Hour()*3600 + o.Minute()*60 + o.Second()
	newSeconds := n.Hour()*3600 + n.Minute()*60 + n.Second()
	return time.Duration(newSeconds-oldSeconds) * time.Second
}

func meetingLocation(m *models.Meeting) *time.Location {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// startOfWeek returns the Sunday beginning the week containing the date.
func startOfWeek(date time.Time) time.Time {
	return date.AddDate(0, 0, -int(date.Weekday()))
}
