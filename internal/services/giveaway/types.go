package giveaway

import (
	"github.com/pixeldrop/pixeldrop/internal/models"
)

// RegisterUserInput contains parameters for enrolling a user
type RegisterUserInput struct {
	// UserID is the Discord user ID
	UserID string

	// UserName is the display name recorded at registration time
	UserName string
}

// RegisterUserOutput contains the result of enrolling a user
type RegisterUserOutput struct {
	// AlreadyRegistered is true when the user was enrolled before this call
	AlreadyRegistered bool
}

// SeedPrizesInput contains parameters for seeding prizes
type SeedPrizesInput struct {
	// Images are the source asset references, one prize each
	Images []string
}

// SeedPrizesOutput contains the result of seeding prizes
type SeedPrizesOutput struct {
	// Created is the number of new prizes
	Created int
}

// ClaimInput contains parameters for one claim attempt
type ClaimInput struct {
	// UserID is the Discord user ID pressing the claim button
	UserID string

	// PrizeID is the prize bound to the button
	PrizeID int64
}

// ClaimOutput contains the outcome of a claim attempt
type ClaimOutput struct {
	// Granted is true when the user won one of the prize's slots
	Granted bool

	// Reason is set when the claim was rejected; a rejection is an
	// expected outcome, not an error
	Reason models.RejectReason

	// WinID is the sequential win record ID; zero unless granted
	WinID int64

	// Image is the prize's source asset reference
	Image string

	// Exhausted is true when this grant consumed the prize's last slot
	Exhausted bool
}

// GetLeaderboardInput contains parameters for building the leaderboard
type GetLeaderboardInput struct {
	// Limit caps the number of standings returned
	Limit int
}

// GetLeaderboardOutput contains the leaderboard
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetUserCollectionInput contains parameters for reading a user's collection
type GetUserCollectionInput struct {
	UserID string
}

// GetUserCollectionOutput contains a user's won images and the full image set
type GetUserCollectionOutput struct {
	// WonImages are the asset references of prizes the user has claimed
	WonImages []string

	// AllImages are the asset references of every seeded prize
	AllImages []string
}
