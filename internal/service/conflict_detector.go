// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
)

// ConflictDetector checks a proposed meeting interval against the other
// active meetings and recurring series of a project, comparing correctly
// across distinct time zones.
type ConflictDetector struct{}

// NewConflictDetector creates a new ConflictDetector.
func NewConflictDetector() *ConflictDetector {
	return &ConflictDetector{}
}

// ValidateSingleMeetingTime reports true when the proposed [startUTC,
// endUTC) interval does not collide with any active meeting in the project.
// Intervals are half-open: touching endpoints do not conflict.
func (d *ConflictDetector) ValidateSingleMeetingTime(
	ctx context.Context,
	meetings domain.MeetingRepository,
	projectID uuid.UUID,
	startUTC, endUTC time.Time,
	excludeID *uuid.UUID,
) (bool, error) {
	overlapping, err := meetings.ListOverlapping(ctx, projectID, startUTC.UTC(), endUTC.UTC(), excludeID)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

// HasRecurringConflicts reports true when the proposed occurrence collides
// with any active recurring series in the project. The comparison is
// deliberately date-agnostic: masks are intersected first, then only the
// time-of-day spans are compared, each in its own meeting's time zone.
func (d *ConflictDetector) HasRecurringConflicts(
	ctx context.Context,
	patterns domain.RecurringPatternRepository,
	projectID uuid.UUID,
	startUTC, endUTC time.Time,
	timezone string,
	daysOfWeek models.DaysOfWeek,
	excludeID *uuid.UUID,
) (bool, error) {
	active, err := patterns.ListActive(ctx, projectID, time.Now().UTC())
	if err != nil {
		return false, err
	}

	proposedLoc, err := time.LoadLocation(timezone)
	if err != nil {
		proposedLoc = time.UTC
	}
	proposedStart, proposedEnd := timeOfDaySpan(startUTC, endUTC, proposedLoc)

	for _, pattern := range active {
		// The base meeting row only supplies the series' time-of-day span.
		// Its own status is irrelevant here: completing or skipping the
		// base occurrence does not stop the series, and a cancelled series
		// never comes back from ListActive.
		if pattern.Meeting == nil {
			continue
		}
		if excludeID != nil && (pattern.Meeting.ID == *excludeID || pattern.MeetingID == *excludeID) {
			continue
		}
		if !pattern.DaysOfWeek.Intersects(daysOfWeek) {
			continue
		}

		existingLoc, err := time.LoadLocation(pattern.Meeting.Timezone)
		if err != nil {
			existingLoc = time.UTC
		}
		existingStart, existingEnd := timeOfDaySpan(pattern.Meeting.StartTime, pattern.Meeting.EndTime, existingLoc)

		if spansOverlap(existingStart, existingEnd, proposedStart, proposedEnd) {
			return true, nil
		}
	}

	return false, nil
}

// timeOfDaySpan projects an interval onto minutes-of-day in the given
// location. Spans that cross midnight get 24h added to the end so the span
// stays ordered.
func timeOfDaySpan(start, end time.Time, loc *time.Location) (int, int) {
	s := minutesOfDay(start.In(loc))
	e := minutesOfDay(end.In(loc))
	if e <= s {
		e += 24 * 60
	}
	return s, e
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// spansOverlap applies half-open overlap to two minutes-of-day spans.
func spansOverlap(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}
