package giveaway

import "errors"

// Define errors
var (
	// ErrPrizeNotFound indicates a stale or malformed claim token
	ErrPrizeNotFound = errors.New("prize not found")

	// ErrStorageUnavailable indicates a transient storage failure; callers
	// must not assume any state change occurred
	ErrStorageUnavailable = errors.New("storage unavailable")
)
