// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/projectly/meeting-service/internal/logging"
)

const actorLocalKey = "actor_id"

// ActorMiddleware resolves the calling member from the X-Actor-ID header set
// by the authenticating gateway. Requests without a valid actor are rejected.
func ActorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("X-Actor-ID")
		if raw == "" {
			return c.Status(http.StatusUnauthorized).JSON(errorResponse{Error: "missing X-Actor-ID header"})
		}

		actorID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(errorResponse{Error: "invalid X-Actor-ID header"})
		}

		c.Locals(actorLocalKey, actorID)
		c.SetUserContext(logging.AppendCtx(c.UserContext(), slog.String("actor_id", actorID.String())))
		return c.Next()
	}
}

func actorID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(actorLocalKey).(uuid.UUID)
	return id
}
