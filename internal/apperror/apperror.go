package apperror

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ValidationError reports the first offending field of a malformed request
// payload. It is produced before any persistence or external call runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PreconditionError signals that a required prior step is missing, e.g.
// requesting a match analysis before completing the profile.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// NotFoundError is returned on point lookups of absent records.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// UpstreamError wraps a failure from an external collaborator (AI or job
// search provider). The wrapped cause is logged, never sent to clients.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// StoreError wraps a persistence failure, surfaced unmodified from the
// store with no retry.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// StatusCode maps the taxonomy onto HTTP statuses.
func StatusCode(err error) int {
	switch err.(type) {
	case *ValidationError, *PreconditionError:
		return fiber.StatusBadRequest
	case *NotFoundError:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
