// Copyright The Projectly Authors.
// SPDX-License-Identifier: MIT

package models

import "strings"

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErr builds a FieldError.
func FieldErr(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}

// ValidationError carries a structured list of field-level failures raised
// by entity invariants and state-machine guards.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError from field-level failures.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func validationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
