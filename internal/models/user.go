package models

import (
	"time"
)

// User represents a registered giveaway participant
type User struct {
	// ID is the Discord user ID of the participant
	ID string

	// Name is the display name of the participant
	Name string

	// RegisteredAt is when the user first registered
	RegisteredAt time.Time
}
