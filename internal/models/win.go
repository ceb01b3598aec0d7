package models

import (
	"time"
)

// RejectReason explains why a claim attempt was not granted
type RejectReason string

const (
	// RejectReasonCapacityFull indicates the prize already has its full set of winners
	RejectReasonCapacityFull RejectReason = "capacity_full"

	// RejectReasonAlreadyWon indicates the user already holds a win for this prize
	RejectReasonAlreadyWon RejectReason = "already_won"
)

// WinRecord records a granted claim of a prize by a user
type WinRecord struct {
	// ID is the sequential identifier assigned when the claim is granted
	ID int64

	// UserID is the Discord user ID of the winner
	UserID string

	// PrizeID is the prize that was claimed
	PrizeID int64

	// WonAt is when the claim was granted
	WonAt time.Time
}
