package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrBranchNotFound = errors.New("branch not found")
	ErrRoomNotFound   = errors.New("room not found")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotActive  = errors.New("booking is not active")
	ErrInvalidStayRange  = errors.New("invalid stay range")
	ErrInvalidGuestCount = errors.New("invalid guest count")

	// Auth errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrProfileMissing   = errors.New("profile not loaded")

	// Payment errors
	ErrPaymentRejected = errors.New("payment link rejected")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
