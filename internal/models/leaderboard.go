package models

// WinnerStanding is one row of the leaderboard
type WinnerStanding struct {
	// UserID is the Discord user ID of the winner
	UserID string

	// UserName is the display name of the winner
	UserName string

	// WinCount is how many prizes the user has claimed
	WinCount int
}

// Leaderboard represents the current top winners, ordered by descending win count
type Leaderboard struct {
	// Standings contains one entry per user with at least one win
	Standings []*WinnerStanding
}
