package win

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pixeldrop/pixeldrop/internal/repositories/win Repository

// Repository defines the interface for win record persistence
type Repository interface {
	// RecordWin adjudicates one claim attempt. The uniqueness check, the
	// capacity check, the insert and the exhaustion flip happen inside a
	// single atomic step; no concurrent caller can interleave between them.
	RecordWin(ctx context.Context, input *RecordWinInput) (*RecordWinOutput, error)

	// WinCount returns how many users have won the given prize
	WinCount(ctx context.Context, input *WinCountInput) (*WinCountOutput, error)

	// HasWon reports whether the user already holds a win for the prize
	HasWon(ctx context.Context, input *HasWonInput) (*HasWonOutput, error)

	// TopWinners returns users ordered by descending win count; users
	// without wins are absent
	TopWinners(ctx context.Context, input *TopWinnersInput) (*TopWinnersOutput, error)

	// WinsForUser returns the IDs of all prizes the user has won
	WinsForUser(ctx context.Context, input *WinsForUserInput) (*WinsForUserOutput, error)
}
