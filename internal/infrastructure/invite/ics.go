// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

// Package invite renders iCalendar invitations attached to meeting
// notification emails.
package invite

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
)

// ICS constants for consistent values across all generated invites
const (
	icsProdID   = "-//Projectly//Projectly Meeting Service//EN"
	icalVersion = "2.0"
	icalScale   = "GREGORIAN"
)

// Invite organizer information
const (
	organizerEmail = "meetings@projectly.io"
	organizerName  = "Projectly"
)

// ICSGenerator generates iCalendar invites for meetings.
type ICSGenerator struct{}

// NewICSGenerator creates a new ICSGenerator.
func NewICSGenerator() *ICSGenerator {
	return &ICSGenerator{}
}

// Ensure [ICSGenerator] implements [domain.InviteGenerator].
var _ domain.InviteGenerator = (*ICSGenerator)(nil)

// GenerateInvite renders a REQUEST invite for the meeting. When a recurring
// pattern is given the event carries an RRULE, and skipped occurrences are
// excluded via EXDATE.
func (g *ICSGenerator) GenerateInvite(meeting *models.Meeting, pattern *models.RecurringMeetingPattern) (string, error) {
	loc, err := time.LoadLocation(meeting.Timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", meeting.Timezone, err)
	}

	startLocal := meeting.StartTime.In(loc)
	endLocal := meeting.EndTime.In(loc)
	dtstamp := time.Now().UTC().Format("20060102T150405Z")

	var ics strings.Builder
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString(fmt.Sprintf("VERSION:%s\r\n", icalVersion))
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", icsProdID))
	ics.WriteString(fmt.Sprintf("CALSCALE:%s\r\n", icalScale))
	ics.WriteString("METHOD:REQUEST\r\n")

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s\r\n", meeting.ID))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", dtstamp))
	ics.WriteString(fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s\r\n", organizerName, organizerEmail))
	ics.WriteString(fmt.Sprintf("DTSTART;TZID=%s:%s\r\n", meeting.Timezone, startLocal.Format("20060102T150405")))
	ics.WriteString(fmt.Sprintf("DTEND;TZID=%s:%s\r\n", meeting.Timezone, endLocal.Format("20060102T150405")))

	if pattern != nil && !pattern.IsCancelled {
		rule, err := recurrenceRule(pattern)
		if err != nil {
			return "", err
		}
		ics.WriteString(fmt.Sprintf("RRULE:%s\r\n", rule))

		for _, ex := range pattern.Exceptions {
			exDate := ex.Date.UTC()
			exLocal := time.Date(exDate.Year(), exDate.Month(), exDate.Day(),
				startLocal.Hour(), startLocal.Minute(), startLocal.Second(), 0, loc)
			ics.WriteString(fmt.Sprintf("EXDATE;TZID=%s:%s\r\n", meeting.Timezone, exLocal.Format("20060102T150405")))
		}
	}

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeText(meeting.Title)))
	if meeting.Goal != nil && *meeting.Goal != "" {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeText(*meeting.Goal)))
	}
	if meeting.Location != nil && *meeting.Location != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeText(*meeting.Location)))
	}
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String(), nil
}

// recurrenceRule builds the RRULE value for a pattern.
func recurrenceRule(pattern *models.RecurringMeetingPattern) (string, error) {
	opt := rrule.ROption{
		Interval: pattern.RepeatInterval,
		Until:    pattern.EndDate.UTC(),
	}

	switch pattern.Type {
	case models.RecurrenceTypeDaily:
		opt.Freq = rrule.DAILY
	case models.RecurrenceTypeWeekly:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = byWeekdays(pattern.DaysOfWeek)
	default:
		return "", fmt.Errorf("unknown recurrence type %q", pattern.Type)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return "", fmt.Errorf("building recurrence rule: %w", err)
	}
	return rule.String(), nil
}

func byWeekdays(mask models.DaysOfWeek) []rrule.Weekday {
	mapping := map[time.Weekday]rrule.Weekday{
		time.Sunday:    rrule.SU,
		time.Monday:    rrule.MO,
		time.Tuesday:   rrule.TU,
		time.Wednesday: rrule.WE,
		time.Thursday:  rrule.TH,
		time.Friday:    rrule.FR,
		time.Saturday:  rrule.SA,
	}

	days := mask.Weekdays()
	out := make([]rrule.Weekday, 0, len(days))
	for _, day := range days {
		out = append(out, mapping[day])
	}
	return out
}

// escapeText escapes special characters per RFC 5545 section 3.3.11.
func escapeText(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(s)
}
