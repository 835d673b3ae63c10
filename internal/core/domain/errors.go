package domain

import "errors"

// Input errors: user-correctable, reported inline.
var (
	ErrIncompleteInput  = errors.New("incomplete booking input")
	ErrPastDatedBooking = errors.New("booking time is not in the future")
)

// Collaborator errors: user-visible and retryable by hand.
var (
	ErrBookingRejected  = errors.New("booking rejected by datastore")
	ErrSubmissionFailed = errors.New("booking submission failed")
)

// ErrDatastoreUnavailable reports a read from the record store that failed
// in transport.
var ErrDatastoreUnavailable = errors.New("datastore unavailable")

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrIdentityRequired = errors.New("identity not resolved")
	ErrForbidden        = errors.New("access forbidden")
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
