package giveaway

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixeldrop/pixeldrop/internal/common/clock"
	"github.com/pixeldrop/pixeldrop/internal/models"
	prizeRepo "github.com/pixeldrop/pixeldrop/internal/repositories/prize"
	userRepo "github.com/pixeldrop/pixeldrop/internal/repositories/user"
	winRepo "github.com/pixeldrop/pixeldrop/internal/repositories/win"
)

// DefaultLeaderboardLimit caps the leaderboard when no limit is given
const DefaultLeaderboardLimit = 10

// Config holds configuration for the giveaway service
type Config struct {
	UserRepo  userRepo.Repository
	PrizeRepo prizeRepo.Repository
	WinRepo   winRepo.Repository
	Clock     clock.Clock
}

// service implements the Service interface
type service struct {
	userRepo  userRepo.Repository
	prizeRepo prizeRepo.Repository
	winRepo   winRepo.Repository
	clock     clock.Clock
}

// New creates a new giveaway service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.UserRepo == nil {
		return nil, errors.New("user repository cannot be nil")
	}

	if cfg.PrizeRepo == nil {
		return nil, errors.New("prize repository cannot be nil")
	}

	if cfg.WinRepo == nil {
		return nil, errors.New("win repository cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	return &service{
		userRepo:  cfg.UserRepo,
		prizeRepo: cfg.PrizeRepo,
		winRepo:   cfg.WinRepo,
		clock:     c,
	}, nil
}

// RegisterUser enrolls a user in the giveaway
func (s *service) RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	out, err := s.userRepo.RegisterUser(ctx, &userRepo.RegisterUserInput{
		User: &models.User{
			ID:           input.UserID,
			Name:         input.UserName,
			RegisteredAt: s.clock.Now(),
		},
	})
	if err != nil {
		return nil, s.storageErr(err)
	}

	return &RegisterUserOutput{AlreadyRegistered: out.AlreadyRegistered}, nil
}

// SeedPrizes creates prizes for image assets that are not seeded yet
func (s *service) SeedPrizes(ctx context.Context, input *SeedPrizesInput) (*SeedPrizesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.prizeRepo.SeedPrizes(ctx, &prizeRepo.SeedPrizesInput{
		Images: input.Images,
	})
	if err != nil {
		return nil, s.storageErr(err)
	}

	return &SeedPrizesOutput{Created: out.Created}, nil
}

// Claim adjudicates one claim attempt. The prize lookup and the claim are
// separate steps; only the win repository's atomic transaction decides who
// gets a slot, so a stale lookup can never over-grant.
func (s *service) Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error) {
	if input == nil || input.UserID == "" || input.PrizeID == 0 {
		return nil, errors.New("input, user ID and prize ID cannot be empty")
	}

	p, err := s.prizeRepo.GetPrize(ctx, &prizeRepo.GetPrizeInput{
		PrizeID: input.PrizeID,
	})
	if err != nil {
		if errors.Is(err, prizeRepo.ErrPrizeNotFound) {
			return nil, ErrPrizeNotFound
		}
		return nil, s.storageErr(err)
	}

	out, err := s.winRepo.RecordWin(ctx, &winRepo.RecordWinInput{
		UserID:  input.UserID,
		PrizeID: input.PrizeID,
		WonAt:   s.clock.Now(),
	})
	if err != nil {
		return nil, s.storageErr(err)
	}

	return &ClaimOutput{
		Granted:   out.Granted,
		Reason:    out.Reason,
		WinID:     out.WinID,
		Image:     p.Image,
		Exhausted: out.Exhausted,
	}, nil
}

// GetLeaderboard returns the top winners by descending win count
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := DefaultLeaderboardLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	out, err := s.winRepo.TopWinners(ctx, &winRepo.TopWinnersInput{
		Limit: limit,
	})
	if err != nil {
		return nil, s.storageErr(err)
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			Standings: out.Standings,
		},
	}, nil
}

// GetUserCollection returns which prize images a user has won, joining a
// user's prize IDs against the seeded image index
func (s *service) GetUserCollection(ctx context.Context, input *GetUserCollectionInput) (*GetUserCollectionOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	wins, err := s.winRepo.WinsForUser(ctx, &winRepo.WinsForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, s.storageErr(err)
	}

	allImages, err := s.prizeRepo.ListImages(ctx)
	if err != nil {
		return nil, s.storageErr(err)
	}

	wonImages := make([]string, 0, len(wins.PrizeIDs))
	for _, prizeID := range wins.PrizeIDs {
		p, err := s.prizeRepo.GetPrize(ctx, &prizeRepo.GetPrizeInput{
			PrizeID: prizeID,
		})
		if err != nil {
			if errors.Is(err, prizeRepo.ErrPrizeNotFound) {
				continue
			}
			return nil, s.storageErr(err)
		}
		wonImages = append(wonImages, p.Image)
	}

	return &GetUserCollectionOutput{
		WonImages: wonImages,
		AllImages: allImages.Images,
	}, nil
}

// storageErr maps repository transport failures to ErrStorageUnavailable
func (s *service) storageErr(err error) error {
	if errors.Is(err, userRepo.ErrUnavailable) ||
		errors.Is(err, prizeRepo.ErrUnavailable) ||
		errors.Is(err, winRepo.ErrUnavailable) {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return err
}
