package booking

import (
	"errors"
	"fmt"
)

// LifecycleError is a structured failure from a booking operation.
type LifecycleError struct {
	Code    string
	Message string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(id int64) error {
	return &LifecycleError{
		Code:    "notFound",
		Message: fmt.Sprintf("no booking with id %d", id),
	}
}

func NewInvalidStatusError(status string) error {
	return &LifecycleError{
		Code:    "invalidStatus",
		Message: fmt.Sprintf("status %q is not a valid transition target", status),
	}
}

// IsNotFound reports whether err is a not-found lifecycle error.
func IsNotFound(err error) bool {
	var le *LifecycleError
	return errors.As(err, &le) && le.Code == "notFound"
}

// IsInvalidStatus reports whether err is an invalid-status lifecycle error.
func IsInvalidStatus(err error) bool {
	var le *LifecycleError
	return errors.As(err, &le) && le.Code == "invalidStatus"
}
