// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"errors"
	"strings"

	"github.com/projectly/meeting-service/internal/domain/models"
)

// ErrorType represents the semantic category of an error
type ErrorType int

const (
	ErrorTypeValidation   ErrorType = iota // Input validation errors (400 Bad Request)
	ErrorTypeUnauthorized                  // Privilege check failures (403 Forbidden)
	ErrorTypeNotFound                      // Resource not found errors (404 Not Found)
	ErrorTypeConflict                      // Resource conflict errors (409 Conflict)
	ErrorTypeInternal                      // Internal server errors (500 Internal Server Error)
	ErrorTypeUnavailable                   // External service failures (503 Service Unavailable)
)

// DomainError represents an error with semantic type information.
// Validation errors additionally carry the list of field-level failures so
// callers can surface them without parsing message strings.
type DomainError struct {
	Type    ErrorType
	Message string
	Fields  []models.FieldError
	Err     error // underlying error for wrapping
}

func (e *DomainError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Field + ": " + f.Message
		}
		msg += " (" + strings.Join(parts, "; ") + ")"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// GetErrorType returns the semantic type of an error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return ErrorTypeValidation
	}
	return ErrorTypeInternal // default fallback
}

// GetFieldErrors returns the field-level failures carried by a validation
// error, or nil for any other error.
func GetFieldErrors(err error) []models.FieldError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Fields
	}
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}
	return nil
}

// Error constructors for different types
func NewValidationError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeValidation, Message: message, Err: errors.Join(err...)}
}

// NewFieldValidationError builds a validation error out of field-level failures.
func NewFieldValidationError(fields ...models.FieldError) *DomainError {
	return &DomainError{Type: ErrorTypeValidation, Message: "validation failed", Fields: fields}
}

func NewUnauthorizedError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUnauthorized, Message: message, Err: errors.Join(err...)}
}

func NewNotFoundError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeNotFound, Message: message, Err: errors.Join(err...)}
}

func NewConflictError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeConflict, Message: message, Err: errors.Join(err...)}
}

func NewInternalError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeInternal, Message: message, Err: errors.Join(err...)}
}

func NewUnavailableError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUnavailable, Message: message, Err: errors.Join(err...)}
}
