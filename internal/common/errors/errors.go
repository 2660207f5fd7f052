// Package errors provides the standardized error taxonomy surfaced by the
// identity store and the job/application engine. Every failure carries a
// distinguishable code so the presentation layer can render an appropriate
// message without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeNotAuthenticated ErrorCode = "NOT_AUTHENTICATED"
	ErrCodeWrongRole        ErrorCode = "WRONG_ROLE"
	ErrCodeForbidden        ErrorCode = "FORBIDDEN"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken         ErrorCode = "EMAIL_TAKEN"

	ErrCodeActorNotFound       ErrorCode = "ACTOR_NOT_FOUND"
	ErrCodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	ErrCodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"

	ErrCodeJobNotOpen           ErrorCode = "JOB_NOT_OPEN"
	ErrCodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"

	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"
)

// Kind groups codes into the coarse categories the caller branches on.
type Kind string

const (
	KindNotAuthenticated Kind = "not-authenticated"
	KindWrongRole        Kind = "wrong-role"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not-found"
	KindInvalidState     Kind = "invalid-state"
	KindValidation       Kind = "validation"
	KindInternal         Kind = "internal"
)

var codeKinds = map[ErrorCode]Kind{
	ErrCodeNotAuthenticated:     KindNotAuthenticated,
	ErrCodeWrongRole:            KindWrongRole,
	ErrCodeForbidden:            KindForbidden,
	ErrCodeInvalidCredentials:   KindNotAuthenticated,
	ErrCodeEmailTaken:           KindInvalidState,
	ErrCodeActorNotFound:        KindNotFound,
	ErrCodeJobNotFound:          KindNotFound,
	ErrCodeApplicationNotFound:  KindNotFound,
	ErrCodeJobNotOpen:           KindInvalidState,
	ErrCodeDuplicateApplication: KindInvalidState,
	ErrCodeValidationFailed:     KindValidation,
	ErrCodeSessionStoreFailed:   KindInternal,
}

// Error represents a structured application error.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("gigmatch[%s]: %s", e.Code, e.Message)
}

// KindOf classifies an error. Non-taxonomy errors map to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		if k, ok := codeKinds[e.Code]; ok {
			return k
		}
	}
	return KindInternal
}

// CodeOf extracts the error code, or "" for non-taxonomy errors.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

func newError(code ErrorCode, message, details string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotAuthenticatedError is returned when an operation requires a
// current actor and none is present.
func NewNotAuthenticatedError(operation string) *Error {
	return newError(ErrCodeNotAuthenticated, "Not authenticated", fmt.Sprintf("operation: %s", operation))
}

// NewWrongRoleError is returned when the actor's role cannot perform the
// operation at all.
func NewWrongRoleError(required, actual string) *Error {
	return newError(ErrCodeWrongRole, "Operation not permitted for role",
		fmt.Sprintf("required: %s, actual: %s", required, actual))
}

// NewForbiddenError is returned when the actor is authenticated but does
// not own the resource.
func NewForbiddenError(resource, id string) *Error {
	return newError(ErrCodeForbidden, "Not the owner of this resource",
		fmt.Sprintf("%s: %s", resource, id))
}

// NewInvalidCredentialsError is returned on a failed directory lookup.
func NewInvalidCredentialsError() *Error {
	return newError(ErrCodeInvalidCredentials, "Invalid email or password", "")
}

// NewEmailTakenError is returned when a signup email is already in use
// by an actor of either role.
func NewEmailTakenError(email string) *Error {
	return newError(ErrCodeEmailTaken, "Email already in use", fmt.Sprintf("email: %s", email))
}

// NewActorNotFoundError is returned for an unknown actor id.
func NewActorNotFoundError(actorID string) *Error {
	return newError(ErrCodeActorNotFound, "Actor not found", fmt.Sprintf("actorId: %s", actorID))
}

// NewJobNotFoundError is returned for an unknown job id.
func NewJobNotFoundError(jobID string) *Error {
	return newError(ErrCodeJobNotFound, "Job not found", fmt.Sprintf("jobId: %s", jobID))
}

// NewApplicationNotFoundError is returned for an unknown application id.
func NewApplicationNotFoundError(appID string) *Error {
	return newError(ErrCodeApplicationNotFound, "Application not found", fmt.Sprintf("applicationId: %s", appID))
}

// NewJobNotOpenError is returned when applying to a filled or closed job.
func NewJobNotOpenError(jobID, status string) *Error {
	return newError(ErrCodeJobNotOpen, "This job is no longer accepting applications",
		fmt.Sprintf("jobId: %s, status: %s", jobID, status))
}

// NewDuplicateApplicationError is returned when the (job, seeker) pair
// already has an application.
func NewDuplicateApplicationError(jobID, seekerID string) *Error {
	return newError(ErrCodeDuplicateApplication, "Application already exists",
		fmt.Sprintf("jobId: %s, seekerId: %s", jobID, seekerID))
}

// NewValidationError is returned for malformed input.
func NewValidationError(details string) *Error {
	return newError(ErrCodeValidationFailed, "Input validation failed", details)
}

// NewSessionStoreError wraps a session persistence failure.
func NewSessionStoreError(err error) *Error {
	return newError(ErrCodeSessionStoreFailed, "Session store operation failed", err.Error())
}
