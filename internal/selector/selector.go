package selector

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/pixeldrop/pixeldrop/internal/models"
	prizeRepo "github.com/pixeldrop/pixeldrop/internal/repositories/prize"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_selector.go github.com/pixeldrop/pixeldrop/internal/selector Selector

// ErrNoEligiblePrizes is returned when every prize is exhausted, fully
// claimed or already offered. This is the expected steady state once a
// giveaway runs dry, not a fault.
var ErrNoEligiblePrizes = errors.New("no eligible prizes")

// Selector picks the prize for a distribution round
type Selector interface {
	// PickEligible returns one eligible prize chosen uniformly at random
	PickEligible(ctx context.Context, input *PickEligibleInput) (*PickEligibleOutput, error)
}

// PickEligibleInput contains parameters for picking a prize
type PickEligibleInput struct {
	// Session scopes the offered-prize exclusion; empty means no exclusion
	Session string
}

// PickEligibleOutput contains the chosen prize
type PickEligibleOutput struct {
	Prize *models.Prize
}

// Config for the prize selector
type Config struct {
	// PrizeRepo supplies the eligible set
	PrizeRepo prizeRepo.Repository

	// Optional seed for testing
	Seed int64
}

// randomSelector implements Selector with a seedable random source
type randomSelector struct {
	prizeRepo prizeRepo.Repository
	random    *rand.Rand
}

// New creates a new prize selector
func New(cfg *Config) (*randomSelector, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PrizeRepo == nil {
		return nil, errors.New("prize repository cannot be nil")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randomSelector{
		prizeRepo: cfg.PrizeRepo,
		random:    rand.New(rand.NewSource(seed)),
	}, nil
}

// PickEligible returns one eligible prize chosen uniformly at random. The
// selection can go stale before a claim lands on it; the claim transaction,
// not the selector, is what enforces the winner cap.
func (s *randomSelector) PickEligible(ctx context.Context, input *PickEligibleInput) (*PickEligibleOutput, error) {
	if input == nil {
		input = &PickEligibleInput{}
	}

	eligible, err := s.prizeRepo.ListEligible(ctx, &prizeRepo.ListEligibleInput{
		Session: input.Session,
	})
	if err != nil {
		return nil, err
	}

	if len(eligible.Prizes) == 0 {
		return nil, ErrNoEligiblePrizes
	}

	return &PickEligibleOutput{
		Prize: eligible.Prizes[s.random.Intn(len(eligible.Prizes))],
	}, nil
}
