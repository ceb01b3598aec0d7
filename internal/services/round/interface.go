package round

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/pixeldrop/pixeldrop/internal/services/round Notifier

// Notifier delivers a prize preview to a single user. Implementations send
// the degraded image plus a claim action bound to the prize.
type Notifier interface {
	DeliverPreview(ctx context.Context, input *DeliverPreviewInput) error
}

// Service defines the interface for the distribution round driver
type Service interface {
	// Start runs rounds on a fixed interval until the context is cancelled.
	// Rounds are sequenced; a new round never starts while one is in flight.
	Start(ctx context.Context)

	// RunRound performs one distribution round
	RunRound(ctx context.Context) error
}
