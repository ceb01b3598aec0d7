package giveaway

import "context"

// Service defines the interface for giveaway operations
type Service interface {
	// RegisterUser enrolls a user in the giveaway; repeat registration is a no-op
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)

	// SeedPrizes creates prizes for image assets that are not seeded yet
	SeedPrizes(ctx context.Context, input *SeedPrizesInput) (*SeedPrizesOutput, error)

	// Claim adjudicates one claim attempt on a prize
	Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error)

	// GetLeaderboard returns the top winners by descending win count
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetUserCollection returns which prize images a user has won, along
	// with the full set of seeded images
	GetUserCollection(ctx context.Context, input *GetUserCollectionInput) (*GetUserCollectionOutput, error)
}
