// Package services defines the business logic for feedback records.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// Feedback-related errors.
var (
	// ErrMissingRequiredFields is returned when contactPerson, email or
	// feedback is blank after normalization.
	ErrMissingRequiredFields = errors.New("contactPerson, email and feedback are required")

	// ErrFeedbackNotFound indicates that no record matches the identifier,
	// including identifiers the store cannot parse.
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrIdempotencyConflict is returned when a concurrent request claimed the
	// same Idempotency-Key first and its record cannot be loaded.
	ErrIdempotencyConflict = errors.New("idempotency key already in use")
)
