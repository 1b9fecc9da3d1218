package user

import "errors"

var (
	// ErrAllFieldsRequired is returned when registration is missing a field.
	ErrAllFieldsRequired = errors.New("all fields are required")
	// ErrCredentialsRequired is returned when login is missing email or password.
	ErrCredentialsRequired = errors.New("email and password are required")
	// ErrEmailAlreadyRegistered is returned when the email is already taken.
	// Produced both by the pre-insert lookup and, atomically, by the unique
	// index on insert.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is returned for unknown email and wrong password
	// alike, so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrCurrentPasswordIncorrect is returned when a password change presents
	// a current password that does not verify against the stored hash.
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	// ErrUserNotFound is returned when no user matches the identifier.
	ErrUserNotFound = errors.New("user not found")
)
