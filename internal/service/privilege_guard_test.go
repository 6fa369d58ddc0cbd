// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/mocks"
	"github.com/projectly/meeting-service/internal/domain/models"
)

func TestPrivilegeGuardHasPrivilege(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	projectID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name            string
		aspect          models.ProjectAspect
		required        models.PrivilegeLevel
		resourceCreator *uuid.UUID
		setupMocks      func(repo *mocks.MockProjectPrivilegeRepository)
		expected        bool
		expectedError   bool
	}{
		{
			name:            "creator always has write access",
			aspect:          models.AspectMeetings,
			required:        models.PrivilegeLevelWrite,
			resourceCreator: &actorID,
			setupMocks:      func(repo *mocks.MockProjectPrivilegeRepository) {},
			expected:        true,
		},
		{
			name:            "creator clause does not apply to other actors",
			aspect:          models.AspectMeetings,
			required:        models.PrivilegeLevelWrite,
			resourceCreator: &otherID,
			setupMocks: func(repo *mocks.MockProjectPrivilegeRepository) {
				repo.On("Get", ctx, projectID, actorID).Return(&models.ProjectPrivilege{
					Meetings: models.PrivilegeLevelRead,
				}, nil)
			},
			expected: false,
		},
		{
			name:     "missing privilege row means none",
			aspect:   models.AspectMeetings,
			required: models.PrivilegeLevelRead,
			setupMocks: func(repo *mocks.MockProjectPrivilegeRepository) {
				repo.On("Get", ctx, projectID, actorID).Return(nil, nil)
			},
			expected: false,
		},
		{
			name:     "write level satisfies read requirement",
			aspect:   models.AspectMeetings,
			required: models.PrivilegeLevelRead,
			setupMocks: func(repo *mocks.MockProjectPrivilegeRepository) {
				repo.On("Get", ctx, projectID, actorID).Return(&models.ProjectPrivilege{
					Meetings: models.PrivilegeLevelWrite,
				}, nil)
			},
			expected: true,
		},
		{
			name:     "read level does not satisfy write requirement",
			aspect:   models.AspectMeetings,
			required: models.PrivilegeLevelWrite,
			setupMocks: func(repo *mocks.MockProjectPrivilegeRepository) {
				repo.On("Get", ctx, projectID, actorID).Return(&models.ProjectPrivilege{
					Meetings: models.PrivilegeLevelRead,
				}, nil)
			},
			expected: false,
		},
		{
			name:     "level on one aspect does not leak into another",
			aspect:   models.AspectMeetings,
			required: models.PrivilegeLevelRead,
			setupMocks: func(repo *mocks.MockProjectPrivilegeRepository) {
				repo.On("Get", ctx, projectID, actorID).Return(&models.ProjectPrivilege{
					Tasks: models.PrivilegeLevelWrite,
				}, nil)
			},
			expected: false,
		},
		{
			name:     "repository error is propagated",
			aspect:   models.AspectMeetings,
			required: models.PrivilegeLevelRead,
			setupMocks: func(repo *mocks.MockProjectPrivilegeRepository) {
				repo.On("Get", ctx, projectID, actorID).Return(nil, errors.New("db down"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockProjectPrivilegeRepository{}
			tt.setupMocks(repo)

			guard := NewPrivilegeGuard()
			ok, err := guard.HasPrivilege(ctx, repo, actorID, projectID, tt.aspect, tt.required, tt.resourceCreator)

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, ok)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestPrivilegeGuardRequirePrivilege(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	projectID := uuid.New()

	repo := &mocks.MockProjectPrivilegeRepository{}
	repo.On("Get", ctx, projectID, actorID).Return(nil, nil)

	guard := NewPrivilegeGuard()
	err := guard.RequirePrivilege(ctx, repo, actorID, projectID,
		models.AspectMeetings, models.PrivilegeLevelWrite, nil)

	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnauthorized, domain.GetErrorType(err))
}
