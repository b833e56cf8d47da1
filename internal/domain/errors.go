package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrAlreadyEnrolled    = errors.New("user already enrolled in event")
	ErrCapacityExceeded   = errors.New("event has reached its maximum assistance")
	ErrEventNotFuture     = errors.New("event is today or already happened")
	ErrEnrollmentDisabled = errors.New("event is not enabled for enrollment")
	ErrNotEnrolled        = errors.New("user not enrolled in event")
	ErrUserNotFound       = errors.New("user not found")
)

// Stable error codes exposed to API clients.
const (
	CodeEventNotFound      = "event_not_found"
	CodeAlreadyEnrolled    = "already_enrolled"
	CodeCapacityExceeded   = "capacity_exceeded"
	CodeEventNotFuture     = "event_not_future"
	CodeEnrollmentDisabled = "enrollment_disabled"
	CodeNotEnrolled        = "not_enrolled"
	CodeUserNotFound       = "user_not_found"
	CodeStorage            = "storage_error"
)

var businessCodes = []struct {
	err  error
	code string
}{
	{ErrEventNotFound, CodeEventNotFound},
	{ErrAlreadyEnrolled, CodeAlreadyEnrolled},
	{ErrCapacityExceeded, CodeCapacityExceeded},
	{ErrEventNotFuture, CodeEventNotFuture},
	{ErrEnrollmentDisabled, CodeEnrollmentDisabled},
	{ErrNotEnrolled, CodeNotEnrolled},
	{ErrUserNotFound, CodeUserNotFound},
}

// StorageError reports a failure of the persistence layer, as opposed to a
// rejected request.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError for operation op.
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// Code returns the stable code of err, or "" when err carries no domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, bc := range businessCodes {
		if errors.Is(err, bc.err) {
			return bc.code
		}
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return CodeStorage
	}
	return ""
}

// IsBusiness reports whether err is one of the rule violations above.
func IsBusiness(err error) bool {
	code := Code(err)
	return code != "" && code != CodeStorage
}
