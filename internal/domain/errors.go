package domain

import "errors"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// InvalidLevelErr represents an interest level outside the [0,1] range reaching
// the encoder. Levels are validated upstream, so this indicates a programming
// error and is never retried.
type InvalidLevelErr struct {
	domainErr
}

// NewInvalidLevelErr creates a new InvalidLevelErr with the given message.
func NewInvalidLevelErr(message string) *InvalidLevelErr {
	return &InvalidLevelErr{
		domainErr: domainErr{message: message},
	}
}

// StoreUnavailableErr represents a transient failure of the vector store's
// backing medium. Callers may retry a small number of times.
type StoreUnavailableErr struct {
	domainErr
	cause error
}

// NewStoreUnavailableErr creates a new StoreUnavailableErr wrapping the given cause.
func NewStoreUnavailableErr(message string, cause error) *StoreUnavailableErr {
	return &StoreUnavailableErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause of the store failure.
func (e *StoreUnavailableErr) Unwrap() error {
	return e.cause
}

// TimeoutErr represents an operation that exceeded its deadline. It is
// surfaced directly; retry policy belongs to the caller.
type TimeoutErr struct {
	domainErr
}

// NewTimeoutErr creates a new TimeoutErr with the given message.
func NewTimeoutErr(message string) *TimeoutErr {
	return &TimeoutErr{
		domainErr: domainErr{message: message},
	}
}

// IsStoreUnavailable reports whether err is a StoreUnavailableErr.
func IsStoreUnavailable(err error) bool {
	var unavailable *StoreUnavailableErr
	return errors.As(err, &unavailable)
}

// IsTimeout reports whether err is a TimeoutErr.
func IsTimeout(err error) bool {
	var timeout *TimeoutErr
	return errors.As(err, &timeout)
}
