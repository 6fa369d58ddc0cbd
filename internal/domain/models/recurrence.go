// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/projectly/meeting-service/pkg/constants"
)

// RecurrenceType is the unit a recurring pattern steps by.
type RecurrenceType string

const (
	RecurrenceTypeDaily  RecurrenceType = "daily"
	RecurrenceTypeWeekly RecurrenceType = "weekly"
)

// DaysOfWeek is a fixed-width day-of-week bitmask, bit 0 = Sunday through
// bit 6 = Saturday, matching time.Weekday numbering.
type DaysOfWeek uint8

// DayOf returns the mask bit for a single weekday.
func DayOf(w time.Weekday) DaysOfWeek {
	return 1 << uint(w)
}

// Has reports whether the weekday's bit is set.
func (d DaysOfWeek) Has(w time.Weekday) bool {
	return d&DayOf(w) != 0
}

// With returns the mask with the weekday's bit set.
func (d DaysOfWeek) With(w time.Weekday) DaysOfWeek {
	return d | DayOf(w)
}

// Intersects reports whether the two masks share any day.
func (d DaysOfWeek) Intersects(o DaysOfWeek) bool {
	return d&o != 0
}

// IsEmpty reports whether no day is flagged.
func (d DaysOfWeek) IsEmpty() bool {
	return d == 0
}

// Weekdays lists the flagged days in Sunday-first order.
func (d DaysOfWeek) Weekdays() []time.Weekday {
	var days []time.Weekday
	for w := time.Sunday; w <= time.Saturday; w++ {
		if d.Has(w) {
			days = append(days, w)
		}
	}
	return days
}

func (d DaysOfWeek) String() string {
	days := d.Weekdays()
	if len(days) == 0 {
		return "none"
	}
	parts := make([]string, len(days))
	for i, w := range days {
		parts[i] = w.String()[:3]
	}
	return strings.Join(parts, ",")
}

// RecurringMeetingPattern is the recurrence rule owned by exactly one base
// meeting. End dates are always compared in UTC.
type RecurringMeetingPattern struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MeetingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"meeting_id"`

	Type              RecurrenceType `gorm:"type:varchar(20);not null" json:"type"`
	RepeatInterval    int            `gorm:"not null;default:1" json:"repeat_interval"`
	DaysOfWeek        DaysOfWeek     `gorm:"type:smallint;not null;default:0" json:"days_of_week"`
	EndDate           time.Time      `gorm:"not null" json:"end_date"`
	IsCancelled       bool           `gorm:"not null;default:false" json:"is_cancelled"`
	LastGeneratedDate *time.Time     `json:"last_generated_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Meeting    *Meeting                    `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	Exceptions []RecurringMeetingException `gorm:"foreignKey:PatternID" json:"exceptions,omitempty"`
}

func (RecurringMeetingPattern) TableName() string {
	return "recurring_meeting_patterns"
}

// Validate checks the pattern invariants at creation time.
func (p *RecurringMeetingPattern) Validate(now time.Time) error {
	var fields []FieldError

	switch p.Type {
	case RecurrenceTypeDaily, RecurrenceTypeWeekly:
	default:
		fields = append(fields, FieldErr("recurrence.type", "Unknown recurrence type"))
	}
	if p.RepeatInterval <= 0 {
		fields = append(fields, FieldErr("recurrence.repeat_interval", "Repeat interval must be positive"))
	} else if p.RepeatInterval > constants.MaxRepeatInterval {
		fields = append(fields, FieldErr("recurrence.repeat_interval", "Repeat interval cannot exceed 365"))
	}
	if p.Type == RecurrenceTypeWeekly && p.DaysOfWeek.IsEmpty() {
		fields = append(fields, FieldErr("recurrence.days_of_week", "Weekly recurrence requires at least one day of the week"))
	}
	endUTC := p.EndDate.UTC()
	if !endUTC.After(now.UTC()) {
		fields = append(fields, FieldErr("recurrence.end_date", "End date must be in the future"))
	} else if endUTC.After(now.UTC().Add(constants.MaxPatternDuration)) {
		fields = append(fields, FieldErr("recurrence.end_date", "End date cannot be more than one year out"))
	}

	if len(fields) > 0 {
		return validationError(fields)
	}
	return nil
}

// IsActive reports whether the series still generates occurrences as of now.
func (p *RecurringMeetingPattern) IsActive(now time.Time) bool {
	return !p.IsCancelled && p.EndDate.UTC().After(now.UTC())
}

// HasExceptionOn reports whether a dated exception exists for the calendar
// date of t in the given location. Exception dates are stored as plain
// dates at UTC midnight.
func (p *RecurringMeetingPattern) HasExceptionOn(t time.Time, loc *time.Location) bool {
	y, m, d := t.In(loc).Date()
	for _, ex := range p.Exceptions {
		ey, em, ed := ex.Date.UTC().Date()
		if y == ey && m == em && d == ed {
			return true
		}
	}
	return false
}

// ExceptionKind distinguishes skipped occurrences from individually
// modified ones.
type ExceptionKind string

const (
	ExceptionKindSkip     ExceptionKind = "skip"
	ExceptionKindModified ExceptionKind = "modified"
)

// RecurringMeetingException marks a single dated occurrence of a pattern as
// skipped or individually modified.
type RecurringMeetingException struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatternID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_pattern_exception_date" json:"pattern_id"`
	Date      time.Time     `gorm:"type:date;not null;uniqueIndex:idx_pattern_exception_date" json:"date"`
	Kind      ExceptionKind `gorm:"type:varchar(20);not null" json:"kind"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (RecurringMeetingException) TableName() string {
	return "recurring_meeting_exceptions"
}
