package user

import (
	"context"

	"github.com/pixeldrop/pixeldrop/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pixeldrop/pixeldrop/internal/repositories/user Repository

// Repository defines the interface for user data persistence
type Repository interface {
	// RegisterUser persists a user; registering an existing user is a no-op
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// ListUserIDs retrieves the IDs of all registered users
	ListUserIDs(ctx context.Context) (*ListUserIDsOutput, error)
}
