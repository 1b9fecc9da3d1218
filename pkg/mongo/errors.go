package mongo

import "errors"

var (
	// ErrFailedToConnect indicates the client could not reach MongoDB within
	// the configured attempts.
	ErrFailedToConnect = errors.New("failed to connect to mongo")

	// ErrHealthcheckFailed indicates a readiness ping failed.
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)
