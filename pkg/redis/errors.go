package redis

import "errors"

// Errors returned by Connect and the readiness check.
var (
	ErrFailedToParseRedisConnString = errors.New("redis: invalid connection URL")
	ErrRedisNotReady                = errors.New("redis: not ready before the connect deadline")
	ErrEmptyConnectionURL           = errors.New("redis: connection URL is empty")
	ErrHealthcheckFailed            = errors.New("redis: ping failed")
)
