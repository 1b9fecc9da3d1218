package booking

import "errors"

var (
	// ErrInvalidBooking is returned when a booking request fails validation.
	ErrInvalidBooking = errors.New("invalid booking request")
	// ErrBookingNotFound is returned when no booking matches the identifier.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNotOwner is returned when a user reads another user's booking.
	ErrNotOwner = errors.New("booking belongs to another user")
)
