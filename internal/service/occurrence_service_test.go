// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectly/meeting-service/internal/domain/models"
)

func baseMeetingForPattern(start time.Time, timezone string) *models.Meeting {
	goal := "weekly sync"
	return &models.Meeting{
		ID:        uuid.New(),
		ProjectID: uuid.New(),
		CreatorID: uuid.New(),
		Title:     "Team sync",
		Goal:      &goal,
		Language:  "en",
		Type:      models.MeetingTypeOnline,
		StartTime: start.UTC(),
		EndTime:   start.Add(time.Hour).UTC(),
		Timezone:  timezone,
		Status:    models.MeetingStatusScheduled,
	}
}

func TestGenerateFutureInstancesDaily(t *testing.T) {
	svc := NewOccurrenceService()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	base := baseMeetingForPattern(start, "UTC")
	pattern := &models.RecurringMeetingPattern{
		ID:             uuid.New(),
		MeetingID:      base.ID,
		Type:           models.RecurrenceTypeDaily,
		RepeatInterval: 1,
		EndDate:        start.AddDate(0, 0, 7),
	}

	instances := svc.GenerateFutureInstances(base, pattern, start.AddDate(1, 0, 0))

	// Sep 2 through Sep 7: the base itself is not regenerated and the end
	// date is exclusive.
	require.Len(t, instances, 6)
	assert.Equal(t, start.AddDate(0, 0, 1), instances[0].StartTime)
	assert.Equal(t, start.AddDate(0, 0, 6), instances[5].StartTime)

	for _, instance := range instances {
		assert.Equal(t, base.Title, instance.Title)
		assert.Equal(t, base.Goal, instance.Goal)
		assert.Equal(t, base.Type, instance.Type)
		assert.Equal(t, models.MeetingStatusScheduled, instance.Status)
		assert.Equal(t, time.Hour, instance.EndTime.Sub(instance.StartTime))
		require.NotNil(t, instance.OriginalMeetingID)
		assert.Equal(t, base.ID, *instance.OriginalMeetingID)
		require.NotNil(t, instance.RecurringPatternID)
		assert.Equal(t, pattern.ID, *instance.RecurringPatternID)
	}
}

func TestGenerateFutureInstancesCarryRoomReference(t *testing.T) {
	svc := NewOccurrenceService()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	base := baseMeetingForPattern(start, "UTC")
	sid := "RM_abc123"
	room := "team-sync"
	base.RoomSID = &sid
	base.RoomName = &room
	pattern := &models.RecurringMeetingPattern{
		ID:             uuid.New(),
		MeetingID:      base.ID,
		Type:           models.RecurrenceTypeDaily,
		RepeatInterval: 1,
		EndDate:        start.AddDate(0, 0, 3),
	}

	instances := svc.GenerateFutureInstances(base, pattern, start.AddDate(1, 0, 0))

	require.NotEmpty(t, instances)
	for _, instance := range instances {
		require.NotNil(t, instance.RoomSID)
		assert.Equal(t, sid, *instance.RoomSID)
		require.NotNil(t, instance.RoomName)
		assert.Equal(t, room, *instance.RoomName)
	}
}

func TestGenerateFutureInstancesDailyInterval(t *testing.T) {
	svc := NewOccurrenceService()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	base := baseMeetingForPattern(start, "UTC")
	pattern := &models.RecurringMeetingPattern{
		ID:             uuid.New(),
		MeetingID:      base.ID,
		Type:           models.RecurrenceTypeDaily,
		RepeatInterval: 3,
		EndDate:        start.AddDate(0, 0, 10),
	}

	instances := svc.GenerateFutureInstances(base, pattern, start.AddDate(1, 0, 0))

	// Sep 4, Sep 7, Sep 10; Sep 13 falls past the end date.
	require.Len(t, instances, 3)
	assert.Equal(t, start.AddDate(0, 0, 3), instances[0].StartTime)
	assert.Equal(t, start.AddDate(0, 0, 6), instances[1].StartTime)
	assert.Equal(t, start.AddDate(0, 0, 9), instances[2].StartTime)
}

func TestGenerateFutureInstancesWeekly(t *testing.T) {
	svc := NewOccurrenceService()

	// Tuesday September 1st, 2026, 09:00 New York.
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, newYork)

	base := baseMeetingForPattern(start, "America/New_York")
	pattern := &models.RecurringMeetingPattern{
		ID:             uuid.New(),
		MeetingID:      base.ID,
		Type:           models.RecurrenceTypeWeekly,
		RepeatInterval: 1,
		DaysOfWeek:     models.DayOf(time.Tuesday).With(time.Thursday),
		EndDate:        start.AddDate(0, 0, 14).UTC(),
	}

	instances := svc.GenerateFutureInstances(base, pattern, start.AddDate(1, 0, 0))

	// Thu Sep 3, Tue Sep 8, Thu Sep 10; Tue Sep 15 hits the end date.
	require.Len(t, instances, 3)
	expected := []time.Time{
		time.Date(2026, 9, 3, 9, 0, 0, 0, newYork).UTC(),
		time.Date(2026, 9, 8, 9, 0, 0, 0, newYork).UTC(),
		time.Date(2026, 9, 10, 9, 0, 0, 0, newYork).UTC(),
	}
	for i, want := range expected {
		assert.True(t, want.Equal(instances[i].StartTime), "instance %d: want %s got %s", i, want, instances[i].StartTime)
	}
}

func TestGenerateFutureInstancesWeeklyInterval(t *testing.T) {
	svc := NewOccurrenceService()

	// Monday September 7th, 2026, 10:00 UTC, every second week.
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	base := baseMeetingForPattern(start, "UTC")
	pattern := &models.RecurringMeetingPattern{
		ID:             uuid.New(),
		MeetingID:      base.ID,
		Type:           models.RecurrenceTypeWeekly,
		RepeatInterval: 2,
		DaysOfWeek:     models.DayOf(time.Monday),
		EndDate:        start.AddDate(0, 0, 43),
	}

	instances := svc.GenerateFutureInstances(base, pattern, start.AddDate(1, 0, 0))

	require.Len(t, instances, 3)
	assert.Equal(t, start.AddDate(0, 0, 14), instances[0].StartTime)
	assert.Equal(t, start.AddDate(0, 0, 28), instances[1].StartTime)
	assert.Equal(t, start.AddDate(0, 0, 42), instances[2].StartTime)
}

func TestGenerateFutureInstancesSkipsExceptions(t *testing.T) {
	svc := NewOccurrenceService()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	base := baseMeetingForPattern(start, "UTC")
	pattern := &models.RecurringMeetingPattern{
		ID:             uuid.New(),
		MeetingID:      base.ID,
		Type:           models.RecurrenceTypeDaily,
		RepeatInterval: 1,
		EndDate:        start.AddDate(0, 0, 5),
		Exceptions: []models.RecurringMeetingException{
			{Date: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), Kind: models.ExceptionKindSkip},
		},
	}

	instances := svc.GenerateFutureInstances(base, pattern, start.AddDate(1, 0, 0))

	require.Len(t, instances, 3)
	for _, instance := range instances {
		assert.NotEqual(t, 3, instance.StartTime.Day())
	}
}

func TestGenerateFutureInstancesHorizonCapsExpansion(t *testing.T) {
	svc := NewOccurrenceService()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	base := baseMeetingForPattern(start, "UTC")
	pattern := &models.RecurringMeetingPattern{
		ID:             uuid.New(),
		MeetingID:      base.ID,
		Type:           models.RecurrenceTypeDaily,
		RepeatInterval: 1,
		EndDate:        start.AddDate(0, 6, 0),
	}

	instances := svc.GenerateFutureInstances(base, pattern, start.AddDate(0, 0, 10))

	require.Len(t, instances, 9)
	assert.True(t, instances[len(instances)-1].StartTime.Before(start.AddDate(0, 0, 10)))
}

func TestGenerateFutureInstancesCancelledPattern(t *testing.T) {
	svc := NewOccurrenceService()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	base := baseMeetingForPattern(start, "UTC")
	pattern := &models.RecurringMeetingPattern{
		ID:             uuid.New(),
		MeetingID:      base.ID,
		Type:           models.RecurrenceTypeDaily,
		RepeatInterval: 1,
		EndDate:        start.AddDate(0, 1, 0),
		IsCancelled:    true,
	}

	assert.Empty(t, svc.GenerateFutureInstances(base, pattern, start.AddDate(1, 0, 0)))
}

func TestNextOccurrenceTimes(t *testing.T) {
	svc := NewOccurrenceService()

	start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	base := baseMeetingForPattern(start, "UTC")
	pattern := &models.RecurringMeetingPattern{
		ID:             uuid.New(),
		MeetingID:      base.ID,
		Type:           models.RecurrenceTypeDaily,
		RepeatInterval: 1,
		EndDate:        start.AddDate(0, 1, 0),
	}

	t.Run("includes the base meeting while still ahead", func(t *testing.T) {
		now := start.AddDate(0, 0, -1)
		times := svc.NextOccurrenceTimes(base, pattern, now, 3)

		require.Len(t, times, 3)
		assert.Equal(t, start, times[0])
		assert.Equal(t, start.AddDate(0, 0, 1), times[1])
		assert.Equal(t, start.AddDate(0, 0, 2), times[2])
	})

	t.Run("starts from the next occurrence once the base has passed", func(t *testing.T) {
		now := start.AddDate(0, 0, 2).Add(time.Minute)
		times := svc.NextOccurrenceTimes(base, pattern, now, 2)

		require.Len(t, times, 2)
		assert.Equal(t, start.AddDate(0, 0, 3), times[0])
		assert.Equal(t, start.AddDate(0, 0, 4), times[1])
	})

	t.Run("single meeting yields just its own start", func(t *testing.T) {
		times := svc.NextOccurrenceTimes(base, nil, start.AddDate(0, 0, -1), 5)
		require.Len(t, times, 1)
		assert.Equal(t, start, times[0])
	})
}

func TestTimeOfDayDelta(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	oldStart := time.Date(2026, 9, 1, 10, 0, 0, 0, loc)
	newStart := time.Date(2026, 9, 20, 11, 30, 0, 0, loc)

	// Only the wall-clock shift matters; the date difference is ignored.
	assert.Equal(t, 90*time.Minute, TimeOfDayDelta(oldStart.UTC(), newStart.UTC(), loc))
	assert.Equal(t, -90*time.Minute, TimeOfDayDelta(newStart.UTC(), oldStart.UTC(), loc))
}
