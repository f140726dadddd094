package wizard

import (
	"errors"
	"fmt"
)

// FlowError is a structured failure from a wizard operation.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionNotFoundError(id string) error {
	return &FlowError{
		Code:    "sessionNotFound",
		Message: fmt.Sprintf("wizard session %s not found or expired", id),
	}
}

func NewStepError(msg string) error {
	return &FlowError{Code: "invalidStep", Message: msg}
}

func NewValidationError(msg string) error {
	return &FlowError{Code: "validationFailure", Message: msg}
}

func NewSlotError(msg string) error {
	return &FlowError{Code: "slotUnavailable", Message: msg}
}

func NewUnknownServiceError(id int) error {
	return &FlowError{
		Code:    "unknownService",
		Message: fmt.Sprintf("no service with id %d in the catalog", id),
	}
}

func hasCode(err error, code string) bool {
	var fe *FlowError
	return errors.As(err, &fe) && fe.Code == code
}

// IsSessionNotFound reports whether err means the session is gone.
func IsSessionNotFound(err error) bool { return hasCode(err, "sessionNotFound") }

// IsStepViolation reports whether err is an out-of-order step request.
func IsStepViolation(err error) bool { return hasCode(err, "invalidStep") }

// IsValidationFailure reports whether err is a details validation failure.
func IsValidationFailure(err error) bool { return hasCode(err, "validationFailure") }
