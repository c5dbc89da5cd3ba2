package workflow

import "errors"

// WorkflowError is a custom error type for workflow-related errors
type WorkflowError string

// Error implements the error interface
func (e WorkflowError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound    WorkflowError = "session not found"
	ErrEmployeeNotFound   WorkflowError = "employee not found"
	ErrWardNotFound       WorkflowError = "ward not found"
	ErrInvalidMealType    WorkflowError = "invalid meal type"
	ErrInvalidMealCount   WorkflowError = "meal count must be between 1 and 100"
	ErrInvalidMealsServed WorkflowError = "meals served must be between 0 and the meal count"
	ErrInvalidCheckpoint  WorkflowError = "invalid checkpoint type"
	ErrInvalidQRCode      WorkflowError = "QR code does not match the checkpoint location"
	ErrSessionClosed      WorkflowError = "session is already completed or cancelled"
	ErrNilConfig          WorkflowError = "config cannot be nil"
	ErrNilSessionRepo     WorkflowError = "session repository cannot be nil"
	ErrNilDirectoryRepo   WorkflowError = "directory repository cannot be nil"
	ErrNilNotifier        WorkflowError = "notifier cannot be nil"
	ErrNilClock           WorkflowError = "clock cannot be nil"
	ErrNilUUIDGenerator   WorkflowError = "UUID generator cannot be nil"
	ErrNilSweeper         WorkflowError = "sweeper cannot be nil"
)

// IsNotFound reports whether the error means a referenced record is absent
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrWardNotFound)
}

// IsInvalidInput reports whether the error means the caller's input was rejected
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidMealType) ||
		errors.Is(err, ErrInvalidMealCount) ||
		errors.Is(err, ErrInvalidMealsServed) ||
		errors.Is(err, ErrInvalidCheckpoint) ||
		errors.Is(err, ErrInvalidQRCode)
}

// IsConflict reports whether the error means the session's state forbids
// the transition
func IsConflict(err error) bool {
	return errors.Is(err, ErrSessionClosed)
}
