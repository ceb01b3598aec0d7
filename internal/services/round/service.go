package round

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pixeldrop/pixeldrop/internal/common/uuid"
	prizeRepo "github.com/pixeldrop/pixeldrop/internal/repositories/prize"
	userRepo "github.com/pixeldrop/pixeldrop/internal/repositories/user"
	"github.com/pixeldrop/pixeldrop/internal/selector"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultInterval is the round period when none is configured
	DefaultInterval = time.Minute

	// DefaultMaxConcurrentSends bounds the notification fan-out
	DefaultMaxConcurrentSends = 8

	// deliveryTimeout bounds a single user's delivery so one slow inbox
	// cannot stall the round past its period
	deliveryTimeout = 10 * time.Second
)

// Config holds configuration for the round driver
type Config struct {
	UserRepo  userRepo.Repository
	PrizeRepo prizeRepo.Repository
	Selector  selector.Selector
	Notifier  Notifier
	UUID      uuid.UUID

	// Interval is the round period
	Interval time.Duration

	// MaxConcurrentSends bounds the notification fan-out
	MaxConcurrentSends int
}

// service implements the Service interface
type service struct {
	userRepo  userRepo.Repository
	prizeRepo prizeRepo.Repository
	selector  selector.Selector
	notifier  Notifier

	interval           time.Duration
	maxConcurrentSends int

	// session scopes the offered-prize marker to this driver run
	session string
}

// New creates a new round driver
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

	if cfg.Selector == nil {
		return nil, errors.New("selector cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	gen := cfg.UUID
	if gen == nil {
		gen = uuid.New()
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	maxSends := cfg.MaxConcurrentSends
	if maxSends <= 0 {
		maxSends = DefaultMaxConcurrentSends
	}

	return &service{
		userRepo:           cfg.UserRepo,
		prizeRepo:          cfg.PrizeRepo,
		selector:           cfg.Selector,
		notifier:           cfg.Notifier,
		interval:           interval,
		maxConcurrentSends: maxSends,
		session:            gen.NewUUID(),
	}, nil
}

// Start runs rounds on a fixed interval until the context is cancelled.
// Rounds execute sequentially on this goroutine, so the driver can never
// overlap itself; ticks that arrive mid-round coalesce.
func (s *service) Start(ctx context.Context) {
	slog.Info("round driver started",
		slog.String("session", s.session),
		slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("round driver stopped", slog.String("session", s.session))
			return
		case <-ticker.C:
			if err := s.RunRound(ctx); err != nil {
				slog.Error("round failed", slog.String("error", err.Error()))
			}
		}
	}
}

// RunRound performs one distribution round: list the audience, pick a prize,
// fan out previews, mark the prize offered. An empty audience or an empty
// eligible set ends the round quietly; both are expected states.
func (s *service) RunRound(ctx context.Context) error {
	users, err := s.userRepo.ListUserIDs(ctx)
	if err != nil {
		return err
	}

	if len(users.UserIDs) == 0 {
		slog.Info("no registered users, skipping round")
		return nil
	}

	picked, err := s.selector.PickEligible(ctx, &selector.PickEligibleInput{
		Session: s.session,
	})
	if err != nil {
		if errors.Is(err, selector.ErrNoEligiblePrizes) {
			slog.Info("no eligible prizes left, skipping round")
			return nil
		}
		return err
	}

	p := picked.Prize

	slog.Info("distributing prize preview",
		slog.Int64("prize_id", p.ID),
		slog.String("image", p.Image),
		slog.Int("recipients", len(users.UserIDs)))

	// Deliveries are independent: one unreachable user must not abort the
	// round for the others, so failures are logged and swallowed here
	g := &errgroup.Group{}
	g.SetLimit(s.maxConcurrentSends)

	for _, userID := range users.UserIDs {
		g.Go(func() error {
			deliverCtx, cancel := context.WithTimeout(ctx, deliveryTimeout)
			defer cancel()

			err := s.notifier.DeliverPreview(deliverCtx, &DeliverPreviewInput{
				UserID:  userID,
				PrizeID: p.ID,
				Image:   p.Image,
			})
			if err != nil {
				slog.Warn("preview delivery failed",
					slog.String("user_id", userID),
					slog.Int64("prize_id", p.ID),
					slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Error returns are reserved for storage failures; delivery errors
	// were already handled per user
	_ = g.Wait()

	return s.prizeRepo.MarkOffered(ctx, &prizeRepo.MarkOfferedInput{
		Session: s.session,
		PrizeID: p.ID,
	})
}
