package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Design Lifecycle Errors
var (
	ErrValidation        = errors.New("validation failed")
	ErrNoIdentity        = errors.New("no authenticated identity")
	ErrInsufficientRole  = errors.New("insufficient role")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTeamFull          = errors.New("team is full")
	ErrAlreadyJoined     = errors.New("already joined")
	ErrActiveProject     = errors.New("already participating in an ongoing project")
)

// NewValidationError reports a bad input shape or constraint violation for a
// specific field.
func NewValidationError(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    reason,
		Field:      field,
	}
}

// NewAuthError reports that no authenticated identity is present.
func NewAuthError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrNoIdentity,
		Details:    "Please log in and try again",
	}
}

// NewPermissionError reports that the caller is authenticated but lacks the
// role required for the operation.
func NewPermissionError(required string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrInsufficientRole,
		Details:    fmt.Sprintf("This action requires the %s role", required),
	}
}

// NewInvalidTransitionError reports an illegal state machine move.
func NewInvalidTransitionError(from, action string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrInvalidTransition,
		Details:    fmt.Sprintf("Cannot %s a design in status '%s'", action, from),
		Field:      "status",
	}
}

// NewCapacityError reports that a design's team has no free slots left.
func NewCapacityError(capacity int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrTeamFull,
		Details:    fmt.Sprintf("All %d team slots are taken", capacity),
	}
}

// NewAlreadyJoinedError reports a duplicate team join attempt.
func NewAlreadyJoinedError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrAlreadyJoined,
		Details:    "You have already joined this project",
	}
}

// NewPolicyError reports a business rule violation such as the
// one-active-project rule.
func NewPolicyError(reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrActiveProject,
		Details:    reason,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNoIdentity(err error) bool {
	return errors.Is(err, ErrNoIdentity)
}

func IsInsufficientRole(err error) bool {
	return errors.Is(err, ErrInsufficientRole)
}

func IsInvalidTransition(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}

func IsTeamFull(err error) bool {
	return errors.Is(err, ErrTeamFull)
}

func IsAlreadyJoined(err error) bool {
	return errors.Is(err, ErrAlreadyJoined)
}

func IsActiveProject(err error) bool {
	return errors.Is(err, ErrActiveProject)
}
