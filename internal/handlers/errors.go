// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/projectly/meeting-service/internal/domain"
	"github.com/projectly/meeting-service/internal/logging"
)

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields []fieldErrorPayload `json:"fields,omitempty"`
}

type fieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeError maps a service error onto an HTTP response.
func writeError(c *fiber.Ctx, err error) error {
	status := statusFor(err)

	resp := errorResponse{Error: err.Error()}
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		resp.Error = domainErr.Message
		for _, f := range domainErr.Fields {
			resp.Fields = append(resp.Fields, fieldErrorPayload{Field: f.Field, Message: f.Message})
		}
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "request failed",
			logging.ErrKey, err,
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
		)
		// Internal detail stays out of the response body.
		resp.Error = http.StatusText(status)
		resp.Fields = nil
	}

	return c.Status(status).JSON(resp)
}

func statusFor(err error) int {
	switch domain.GetErrorType(err) {
	case domain.ErrorTypeValidation:
		return http.StatusBadRequest
	case domain.ErrorTypeUnauthorized:
		return http.StatusForbidden
	case domain.ErrorTypeNotFound:
		return http.StatusNotFound
	case domain.ErrorTypeConflict:
		return http.StatusConflict
	case domain.ErrorTypeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
