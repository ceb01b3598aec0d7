package win

import (
	"time"

	"github.com/pixeldrop/pixeldrop/internal/models"
)

// RecordWinInput contains parameters for adjudicating a claim attempt
type RecordWinInput struct {
	UserID  string
	PrizeID int64

	// WonAt is the claim timestamp recorded on grant
	WonAt time.Time
}

// RecordWinOutput contains the outcome of a claim attempt
type RecordWinOutput struct {
	// Granted is true when the claim won one of the prize's slots
	Granted bool

	// Reason is set when the claim was not granted
	Reason models.RejectReason

	// WinID is the sequential win record ID; zero unless granted
	WinID int64

	// Exhausted is true when this grant consumed the prize's last slot
	Exhausted bool
}

// WinCountInput contains parameters for counting a prize's winners
type WinCountInput struct {
	PrizeID int64
}

// WinCountOutput contains the number of winners of a prize
type WinCountOutput struct {
	Count int
}

// HasWonInput contains parameters for checking a (user, prize) pair
type HasWonInput struct {
	UserID  string
	PrizeID int64
}

// HasWonOutput contains the result of checking a (user, prize) pair
type HasWonOutput struct {
	HasWon bool
}

// TopWinnersInput contains parameters for building the leaderboard
type TopWinnersInput struct {
	Limit int
}

// TopWinnersOutput contains the leaderboard standings
type TopWinnersOutput struct {
	Standings []*models.WinnerStanding
}

// WinsForUserInput contains parameters for listing a user's wins
type WinsForUserInput struct {
	UserID string
}

// WinsForUserOutput contains the IDs of prizes the user has won
type WinsForUserOutput struct {
	PrizeIDs []int64
}
