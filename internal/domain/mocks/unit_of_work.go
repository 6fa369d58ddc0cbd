// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/projectly/meeting-service/internal/domain"
)

// FakeUnitOfWork is a functional unit-of-work double: Execute runs the
// callback against the configured repositories without any transaction,
// unless ExecuteErr is set, in which case the callback never runs.
type FakeUnitOfWork struct {
	Repositories *domain.Repositories
	ExecuteErr   error
}

func (u *FakeUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, repos *domain.Repositories) error) error {
	if u.ExecuteErr != nil {
		return u.ExecuteErr
	}
	return fn(ctx, u.Repositories)
}

func (u *FakeUnitOfWork) Repos() *domain.Repositories {
	return u.Repositories
}

// NewFakeUnitOfWork wires a FakeUnitOfWork over fresh repository mocks and
// returns them for expectation setup.
func NewFakeUnitOfWork() (*FakeUnitOfWork, *MockMeetingRepository, *MockRecurringPatternRepository, *MockMeetingMemberRepository, *MockProjectPrivilegeRepository, *MockMemberDirectory) {
	meetings := &MockMeetingRepository{}
	patterns := &MockRecurringPatternRepository{}
	members := &MockMeetingMemberRepository{}
	privileges := &MockProjectPrivilegeRepository{}
	directory := &MockMemberDirectory{}
	uow := &FakeUnitOfWork{
		Repositories: &domain.Repositories{
			Meetings:   meetings,
			Patterns:   patterns,
			Members:    members,
			Privileges: privileges,
			Directory:  directory,
		},
	}
	return uow, meetings, patterns, members, privileges, directory
}
