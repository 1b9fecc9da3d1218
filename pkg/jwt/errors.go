package jwt

import "errors"

var (
	ErrMissingSecret           = errors.New("jwt: missing signing secret")
	ErrInvalidToken            = errors.New("jwt: invalid token")
	ErrExpiredToken            = errors.New("jwt: token is expired")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
)
