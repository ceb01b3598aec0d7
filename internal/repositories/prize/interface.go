package prize

import (
	"context"

	"github.com/pixeldrop/pixeldrop/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pixeldrop/pixeldrop/internal/repositories/prize Repository

// Repository defines the interface for prize data persistence
type Repository interface {
	// SeedPrizes bulk-inserts prizes for the given image references,
	// silently skipping references that are already seeded
	SeedPrizes(ctx context.Context, input *SeedPrizesInput) (*SeedPrizesOutput, error)

	// GetPrize retrieves a prize by ID
	GetPrize(ctx context.Context, input *GetPrizeInput) (*models.Prize, error)

	// ListEligible retrieves all prizes that can still be offered: not
	// exhausted, short of the winner cap, and not yet offered in the session
	ListEligible(ctx context.Context, input *ListEligibleInput) (*ListEligibleOutput, error)

	// ListImages retrieves the image references of all seeded prizes
	ListImages(ctx context.Context) (*ListImagesOutput, error)

	// MarkExhausted permanently retires a prize from selection
	MarkExhausted(ctx context.Context, input *MarkExhaustedInput) error

	// MarkOffered flags a prize as offered for the given driver session
	MarkOffered(ctx context.Context, input *MarkOfferedInput) error
}
