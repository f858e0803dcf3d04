package domain

import "errors"

// Error taxonomy surfaced by the services. Handlers map these to HTTP
// statuses; anything else is an internal error and must not leak store
// detail to the caller.
var (
	// ErrInvalidInput signals a malformed request rejected at the service
	// boundary before it reaches business logic.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict signals a uniqueness violation on identity email.
	ErrConflict = errors.New("email already registered")

	// ErrInvalidOTP signals an absent, stale, or mismatched one-time code.
	ErrInvalidOTP = errors.New("invalid or expired code")

	// ErrInvalidCredentials is returned uniformly for unknown email and
	// wrong password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized signals a missing, malformed, expired, or unowned
	// session token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicate signals a cart entry that already exists.
	ErrDuplicate = errors.New("already in cart")

	// ErrNotFound signals an absent record.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable signals a transient storage failure; the caller
	// may retry.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrMailDelivery signals that the mail transport failed. It is fatal
	// to the triggering request and is not retried automatically.
	ErrMailDelivery = errors.New("mail delivery failed")
)
