package domain

import "errors"

var (
	// ErrMalformedRequest is returned when a request body cannot be decoded.
	ErrMalformedRequest = errors.New("malformed request body")

	// ErrRateLimited is returned when rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)
