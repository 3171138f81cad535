package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrNoData                = errors.New("no data fetched")
	ErrParticipantsUnmatched = errors.New("participants unmatched")
)
