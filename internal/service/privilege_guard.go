// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/domain/models"
)

// PrivilegeGuard resolves whether an actor may read or write a named aspect
// of a project. Creators always retain write access to their own resources
// regardless of stored privilege.
type PrivilegeGuard struct{}

// NewPrivilegeGuard creates a new PrivilegeGuard.
func NewPrivilegeGuard() *PrivilegeGuard {
	return &PrivilegeGuard{}
}

// HasPrivilege reports whether the actor holds at least the required level
// for the aspect. resourceCreator, when non-nil, is the creator of the
// resource being touched; the creator clause only grants access to them.
// A missing privilege row means None, never an error.
func (g *PrivilegeGuard) HasPrivilege(
	ctx context.Context,
	privileges domain.ProjectPrivilegeRepository,
	actorID, projectID uuid.UUID,
	aspect models.ProjectAspect,
	required models.PrivilegeLevel,
	resourceCreator *uuid.UUID,
) (bool, error) {
	if resourceCreator != nil && *resourceCreator == actorID {
		return true, nil
	}

	row, err := privileges.Get(ctx, projectID, actorID)
	if err != nil {
		return false, err
	}
	// A nil row yields None for every aspect.
	return row.Level(aspect) >= required, nil
}

// RequirePrivilege is HasPrivilege raised to an error: it returns an
// Unauthorized domain error when the check fails.
func (g *PrivilegeGuard) RequirePrivilege(
	ctx context.Context,
	privileges domain.ProjectPrivilegeRepository,
	actorID, projectID uuid.UUID,
	aspect models.ProjectAspect,
	required models.PrivilegeLevel,
	resourceCreator *uuid.UUID,
) error {
	ok, err := g.HasPrivilege(ctx, privileges, actorID, projectID, aspect, required, resourceCreator)
	if err != nil {
		return domain.NewInternalError("failed to resolve project privileges", err)
	}
	if !ok {
		return domain.NewUnauthorizedError("actor lacks " + required.String() + " access to project " + string(aspect))
	}
	return nil
}
