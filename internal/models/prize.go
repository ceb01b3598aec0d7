package models

// PrizeState describes where a prize is in its lifecycle
type PrizeState string

const (
	// PrizeStateAvailable indicates a prize with no winners yet
	PrizeStateAvailable PrizeState = "available"

	// PrizeStatePartiallyWon indicates a prize with at least one winner but open slots left
	PrizeStatePartiallyWon PrizeState = "partially_won"

	// PrizeStateExhausted indicates a prize with no slots left; terminal
	PrizeStateExhausted PrizeState = "exhausted"
)

// MaxWinnersPerPrize is the number of distinct users that can claim one prize
const MaxWinnersPerPrize = 3

// Prize represents a giveaway image that users race to claim
type Prize struct {
	// ID is the sequential identifier assigned at seeding time
	ID int64

	// Image is the source asset reference, unique across all prizes
	Image string

	// Exhausted is set once the prize has no claim slots left
	Exhausted bool
}

// State derives the lifecycle state from the exhausted flag and a win count
func (p *Prize) State(winCount int) PrizeState {
	if p.Exhausted || winCount >= MaxWinnersPerPrize {
		return PrizeStateExhausted
	}
	if winCount > 0 {
		return PrizeStatePartiallyWon
	}
	return PrizeStateAvailable
}
