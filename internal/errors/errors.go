package errors

import (
	"errors"
	"fmt"
)

// Step identifies which stage of a team mutation a remote failure happened
// at. The step is preserved end to end so the user-facing message can
// distinguish "nothing happened" from "team saved but assignment failed".
type Step string

const (
	StepCoreSave   Step = "core_save"
	StepAssignment Step = "assignment"
	StepDelete     Step = "delete"
	StepFetch      Step = "fetch"
)

// ValidationError represents a local validation failure. No network call was
// attempted; the user can fix the buffer and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RemoteError represents a rejection or transport failure from the remote
// entity store. Callers must treat it as "state not changed remotely" for
// the step it names; earlier steps of the same attempt may have succeeded.
type RemoteError struct {
	Step       Step
	StatusCode int
	Message    string
	cause      error
}

func (e *RemoteError) Error() string {
	step := e.Step
	if step == "" {
		step = "remote"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("remote store error at %s: status=%d %s", step, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote store error at %s: %s", step, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.cause
}

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// Entity Not Found Errors
var (
	ErrOrganisationNotFound = &NotFoundError{Entity: "organisation"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrMemberNotFound       = &NotFoundError{Entity: "member"}
)

// Orchestration Errors
var (
	// ErrSubmissionInFlight is returned when a submit arrives while a
	// mutation for the same modal instance is still in flight. The extra
	// submit is neither queued nor merged.
	ErrSubmissionInFlight = errors.New("a submission for this modal is already in flight")

	// ErrMissingTeamIdentity is returned when an edit submit carries no
	// persisted team to update.
	ErrMissingTeamIdentity = errors.New("team has no remote identity")
)

// Helper Functions

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRemote checks if an error is a RemoteError
func IsRemote(err error) bool {
	var remoteErr *RemoteError
	return errors.As(err, &remoteErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// StepOf returns the step a RemoteError happened at, or "" for other errors.
func StepOf(err error) Step {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Step
	}
	return ""
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewRemoteError creates a new RemoteError without a step; the orchestrator
// stamps the step via AtStep once it knows which stage failed.
func NewRemoteError(statusCode int, message string) error {
	return &RemoteError{StatusCode: statusCode, Message: message}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// AtStep converts any error into a RemoteError carrying the given step. A
// RemoteError keeps its status code; a NotFoundError becomes a terminal
// RemoteError (status 404) that still matches the original sentinel through
// errors.Is; anything else is treated as a transport failure.
func AtStep(err error, step Step) error {
	if err == nil {
		return nil
	}
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return &RemoteError{
			Step:       step,
			StatusCode: remoteErr.StatusCode,
			Message:    remoteErr.Message,
			cause:      err,
		}
	}
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return &RemoteError{
			Step:       step,
			StatusCode: 404,
			Message:    notFoundErr.Error(),
			cause:      err,
		}
	}
	return &RemoteError{Step: step, Message: err.Error(), cause: err}
}
