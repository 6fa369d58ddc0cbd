// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package invite

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectly/meeting-service/internal/domain/models"
	"github.com/projectly/meeting-service/pkg/utils"
)

func testMeeting() *models.Meeting {
	return &models.Meeting{
		ID:        uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Title:     "Architecture Review",
		Goal:      utils.StringPtr("Review the Q4 roadmap; align on priorities"),
		Type:      models.MeetingTypeOnline,
		StartTime: time.Date(2025, 9, 15, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 9, 15, 15, 0, 0, 0, time.UTC),
		Timezone:  "America/New_York",
	}
}

func TestGenerateInvite(t *testing.T) {
	generator := NewICSGenerator()

	t.Run("single meeting", func(t *testing.T) {
		meeting := testMeeting()

		ics, err := generator.GenerateInvite(meeting, nil)
		require.NoError(t, err)

		assert.Contains(t, ics, "BEGIN:VCALENDAR\r\n")
		assert.Contains(t, ics, "METHOD:REQUEST\r\n")
		assert.Contains(t, ics, "UID:11111111-2222-3333-4444-555555555555\r\n")
		// 14:00 UTC is 10:00 in New York during DST.
		assert.Contains(t, ics, "DTSTART;TZID=America/New_York:20250915T100000\r\n")
		assert.Contains(t, ics, "DTEND;TZID=America/New_York:20250915T110000\r\n")
		assert.Contains(t, ics, "SUMMARY:Architecture Review\r\n")
		assert.Contains(t, ics, "DESCRIPTION:Review the Q4 roadmap\\; align on priorities\r\n")
		assert.NotContains(t, ics, "RRULE:")
		assert.Contains(t, ics, "END:VCALENDAR\r\n")
	})

	t.Run("weekly recurring meeting", func(t *testing.T) {
		meeting := testMeeting()
		pattern := &models.RecurringMeetingPattern{
			ID:             uuid.New(),
			Type:           models.RecurrenceTypeWeekly,
			RepeatInterval: 1,
			DaysOfWeek:     models.DayOf(time.Monday) | models.DayOf(time.Wednesday),
			EndDate:        time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		}

		ics, err := generator.GenerateInvite(meeting, pattern)
		require.NoError(t, err)

		rruleLine := lineWithPrefix(t, ics, "RRULE:")
		assert.Contains(t, rruleLine, "FREQ=WEEKLY")
		assert.Contains(t, rruleLine, "BYDAY=MO,WE")
		assert.Contains(t, rruleLine, "UNTIL=20251231T000000Z")
	})

	t.Run("daily pattern with exception", func(t *testing.T) {
		meeting := testMeeting()
		pattern := &models.RecurringMeetingPattern{
			ID:             uuid.New(),
			Type:           models.RecurrenceTypeDaily,
			RepeatInterval: 2,
			EndDate:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			Exceptions: []models.RecurringMeetingException{
				{Date: time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC), Kind: models.ExceptionKindSkip},
			},
		}

		ics, err := generator.GenerateInvite(meeting, pattern)
		require.NoError(t, err)

		rruleLine := lineWithPrefix(t, ics, "RRULE:")
		assert.Contains(t, rruleLine, "FREQ=DAILY")
		assert.Contains(t, rruleLine, "INTERVAL=2")
		// Exceptions exclude the occurrence at its local start time.
		assert.Contains(t, ics, "EXDATE;TZID=America/New_York:20250917T100000\r\n")
	})

	t.Run("cancelled pattern omits recurrence", func(t *testing.T) {
		meeting := testMeeting()
		pattern := &models.RecurringMeetingPattern{
			ID:             uuid.New(),
			Type:           models.RecurrenceTypeDaily,
			RepeatInterval: 1,
			EndDate:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			IsCancelled:    true,
		}

		ics, err := generator.GenerateInvite(meeting, pattern)
		require.NoError(t, err)
		assert.NotContains(t, ics, "RRULE:")
	})

	t.Run("invalid timezone", func(t *testing.T) {
		meeting := testMeeting()
		meeting.Timezone = "Mars/Olympus_Mons"

		_, err := generator.GenerateInvite(meeting, nil)
		assert.Error(t, err)
	})
}

func lineWithPrefix(t *testing.T, ics, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(ics, "\r\n") {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	t.Fatalf("no line with prefix %q in:\n%s", prefix, ics)
	return ""
}
