package prize

import "github.com/pixeldrop/pixeldrop/internal/models"

// SeedPrizesInput contains parameters for seeding prizes
type SeedPrizesInput struct {
	// Images are the source asset references to seed, one prize each
	Images []string
}

// SeedPrizesOutput contains the result of seeding prizes
type SeedPrizesOutput struct {
	// Created is the number of prizes that did not exist before this call
	Created int
}

// GetPrizeInput contains parameters for retrieving a prize
type GetPrizeInput struct {
	PrizeID int64
}

// ListEligibleInput contains parameters for listing eligible prizes
type ListEligibleInput struct {
	// Session scopes the offered-prize exclusion; empty means no exclusion
	Session string
}

// ListEligibleOutput contains the prizes eligible for a distribution round
type ListEligibleOutput struct {
	Prizes []*models.Prize
}

// ListImagesOutput contains the image references of all seeded prizes
type ListImagesOutput struct {
	Images []string
}

// MarkExhaustedInput contains parameters for retiring a prize
type MarkExhaustedInput struct {
	PrizeID int64
}

// MarkOfferedInput contains parameters for flagging a prize as offered
type MarkOfferedInput struct {
	Session string
	PrizeID int64
}
