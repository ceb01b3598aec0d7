package user

import "github.com/pixeldrop/pixeldrop/internal/models"

// RegisterUserInput contains parameters for registering a user
type RegisterUserInput struct {
	User *models.User
}

// RegisterUserOutput contains the result of registering a user
type RegisterUserOutput struct {
	// AlreadyRegistered is true when the user existed before this call
	AlreadyRegistered bool
}

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string
}

// ListUserIDsOutput contains the IDs of all registered users
type ListUserIDsOutput struct {
	UserIDs []string
}
