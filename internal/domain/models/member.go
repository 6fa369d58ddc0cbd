// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"time"

	"github.com/google/uuid"
)

// MeetingMember joins a meeting with an organization member and tracks
// attendance confirmation.
type MeetingMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MeetingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meeting_member" json:"meeting_id"`
	MemberID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meeting_member" json:"member_id"`
	Confirmed bool      `gorm:"not null;default:false" json:"confirmed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MeetingMember) TableName() string {
	return "meeting_members"
}

// PrivilegeLevel is the ordered permission level for a project aspect.
type PrivilegeLevel int

const (
	PrivilegeLevelNone PrivilegeLevel = iota
	PrivilegeLevelRead
	PrivilegeLevelWrite
)

func (l PrivilegeLevel) String() string {
	switch l {
	case PrivilegeLevelRead:
		return "read"
	case PrivilegeLevelWrite:
		return "write"
	default:
		return "none"
	}
}

// ProjectAspect is a named project capability area used for privilege checks.
type ProjectAspect string

const (
	AspectMeetings     ProjectAspect = "meetings"
	AspectMembers      ProjectAspect = "members"
	AspectSettings     ProjectAspect = "settings"
	AspectRequirements ProjectAspect = "requirements"
	AspectTasks        ProjectAspect = "tasks"
)

// ProjectPrivilege holds one organization member's leveled permissions for
// each aspect of a project.
type ProjectPrivilege struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_member_privilege" json:"project_id"`
	MemberID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_member_privilege" json:"member_id"`

	Meetings     PrivilegeLevel `gorm:"not null;default:0" json:"meetings"`
	Members      PrivilegeLevel `gorm:"not null;default:0" json:"members"`
	Settings     PrivilegeLevel `gorm:"not null;default:0" json:"settings"`
	Requirements PrivilegeLevel `gorm:"not null;default:0" json:"requirements"`
	Tasks        PrivilegeLevel `gorm:"not null;default:0" json:"tasks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProjectPrivilege) TableName() string {
	return "project_privileges"
}

// Level returns the stored level for an aspect. A nil privilege row yields
// None for every aspect.
func (p *ProjectPrivilege) Level(aspect ProjectAspect) PrivilegeLevel {
	if p == nil {
		return PrivilegeLevelNone
	}
	switch aspect {
	case AspectMeetings:
		return p.Meetings
	case AspectMembers:
		return p.Members
	case AspectSettings:
		return p.Settings
	case AspectRequirements:
		return p.Requirements
	case AspectTasks:
		return p.Tasks
	default:
		return PrivilegeLevelNone
	}
}

// OrganizationMember is the minimal member record the scheduling core needs
// for notification addressing. Member CRUD lives in another service.
type OrganizationMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PushTokens []MemberPushToken `gorm:"foreignKey:MemberID" json:"push_tokens,omitempty"`
}

func (OrganizationMember) TableName() string {
	return "organization_members"
}

// MemberPushToken is a registered push-notification device token.
type MemberPushToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MemberID  uuid.UUID `gorm:"type:uuid;not null;index" json:"member_id"`
	Token     string    `gorm:"type:varchar(255);not null" json:"token"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MemberPushToken) TableName() string {
	return "member_push_tokens"
}
