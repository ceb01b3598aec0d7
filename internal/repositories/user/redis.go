package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pixeldrop/pixeldrop/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix = "user:"
	usersKey      = "users"
)

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

// ErrUnavailable is returned when the storage backend cannot be reached
var ErrUnavailable = errors.New("storage unavailable")

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// RegisterUser persists a user to Redis. Registering a user that already
// exists leaves the stored record untouched and reports AlreadyRegistered.
func (r *redisRepository) RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	if input == nil || input.User == nil {
		return nil, errors.New("input and user cannot be nil")
	}

	u := input.User

	if u.ID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	// SADD reports whether the member was new; that decides idempotence
	added, err := r.client.SAdd(ctx, usersKey, u.ID).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to register user: %v", ErrUnavailable, err)
	}

	if added == 0 {
		return &RegisterUserOutput{AlreadyRegistered: true}, nil
	}

	userKey := fmt.Sprintf("%s%s", userKeyPrefix, u.ID)
	err = r.client.HSet(ctx, userKey,
		"name", u.Name,
		"registered_at", u.RegisteredAt.Format(time.RFC3339),
	).Err()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to save user record: %v", ErrUnavailable, err)
	}

	return &RegisterUserOutput{AlreadyRegistered: false}, nil
}

// GetUser retrieves a user by ID from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userKey := fmt.Sprintf("%s%s", userKeyPrefix, input.UserID)
	fields, err := r.client.HGetAll(ctx, userKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrUnavailable, err)
	}

	if len(fields) == 0 {
		return nil, ErrUserNotFound
	}

	u := &models.User{
		ID:   input.UserID,
		Name: fields["name"],
	}

	if raw, ok := fields["registered_at"]; ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			u.RegisteredAt = t
		}
	}

	return u, nil
}

// ListUserIDs retrieves the IDs of all registered users from Redis
func (r *redisRepository) ListUserIDs(ctx context.Context) (*ListUserIDsOutput, error) {
	ids, err := r.client.SMembers(ctx, usersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list user IDs: %v", ErrUnavailable, err)
	}

	return &ListUserIDsOutput{UserIDs: ids}, nil
}
