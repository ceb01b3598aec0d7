package prize

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pixeldrop/pixeldrop/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	prizeKeyPrefix   = "prize:"
	prizesKey        = "prizes"
	prizeSeqKey      = "prize:next_id"
	prizeImagesKey   = "prize_images"
	offeredKeyPrefix = "offered:"

	// winnersKeyPrefix is owned by the win repository; eligibility reads
	// the hash length to enforce the winner cap without a second lookup
	winnersKeyPrefix = "prize_winners:"

	// offeredTTL bounds how long a session's offered set can linger
	offeredTTL = 24 * time.Hour
)

// ErrPrizeNotFound is returned when a prize is not found
var ErrPrizeNotFound = errors.New("prize not found")

// ErrUnavailable is returned when the storage backend cannot be reached
var ErrUnavailable = errors.New("storage unavailable")

// Config holds configuration for the Redis prize repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed prize repository
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

// SeedPrizes bulk-inserts prizes, assigning sequential IDs. Image references
// that already have a prize are skipped without error.
func (r *redisRepository) SeedPrizes(ctx context.Context, input *SeedPrizesInput) (*SeedPrizesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	created := 0
	for _, image := range input.Images {
		if image == "" {
			continue
		}

		exists, err := r.client.HExists(ctx, prizeImagesKey, image).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to check prize image: %v", ErrUnavailable, err)
		}
		if exists {
			continue
		}

		id, err := r.client.Incr(ctx, prizeSeqKey).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to allocate prize ID: %v", ErrUnavailable, err)
		}

		prizeKey := fmt.Sprintf("%s%d", prizeKeyPrefix, id)

		pipe := r.client.Pipeline()
		pipe.HSet(ctx, prizeKey, "image", image, "exhausted", 0)
		pipe.SAdd(ctx, prizesKey, id)
		pipe.HSet(ctx, prizeImagesKey, image, id)

		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("%w: failed to seed prize: %v", ErrUnavailable, err)
		}

		created++
	}

	return &SeedPrizesOutput{Created: created}, nil
}

// GetPrize retrieves a prize by ID from Redis
func (r *redisRepository) GetPrize(ctx context.Context, input *GetPrizeInput) (*models.Prize, error) {
	if input == nil || input.PrizeID == 0 {
		return nil, errors.New("input and prize ID cannot be empty")
	}

	prizeKey := fmt.Sprintf("%s%d", prizeKeyPrefix, input.PrizeID)
	fields, err := r.client.HGetAll(ctx, prizeKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get prize: %v", ErrUnavailable, err)
	}

	if len(fields) == 0 {
		return nil, ErrPrizeNotFound
	}

	return prizeFromFields(input.PrizeID, fields), nil
}

// ListEligible retrieves all prizes still open for a distribution round
func (r *redisRepository) ListEligible(ctx context.Context, input *ListEligibleInput) (*ListEligibleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.SMembers(ctx, prizesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list prizes: %v", ErrUnavailable, err)
	}

	if len(ids) == 0 {
		return &ListEligibleOutput{Prizes: []*models.Prize{}}, nil
	}

	offered := map[string]bool{}
	if input.Session != "" {
		offeredKey := fmt.Sprintf("%s%s", offeredKeyPrefix, input.Session)
		members, err := r.client.SMembers(ctx, offeredKey).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list offered prizes: %v", ErrUnavailable, err)
		}
		for _, m := range members {
			offered[m] = true
		}
	}

	// Fetch each prize hash and its winner count in one round trip
	pipe := r.client.Pipeline()
	prizeCmds := make(map[string]*redis.MapStringStringCmd, len(ids))
	countCmds := make(map[string]*redis.IntCmd, len(ids))

	for _, id := range ids {
		prizeCmds[id] = pipe.HGetAll(ctx, fmt.Sprintf("%s%s", prizeKeyPrefix, id))
		countCmds[id] = pipe.HLen(ctx, fmt.Sprintf("%s%s", winnersKeyPrefix, id))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to fetch prizes: %v", ErrUnavailable, err)
	}

	prizes := make([]*models.Prize, 0, len(ids))
	for _, id := range ids {
		if offered[id] {
			continue
		}

		fields, err := prizeCmds[id].Result()
		if err != nil || len(fields) == 0 {
			continue
		}

		winCount, err := countCmds[id].Result()
		if err != nil {
			continue
		}

		prizeID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}

		p := prizeFromFields(prizeID, fields)
		if p.Exhausted || winCount >= models.MaxWinnersPerPrize {
			continue
		}

		prizes = append(prizes, p)
	}

	return &ListEligibleOutput{Prizes: prizes}, nil
}

// ListImages retrieves the image references of all seeded prizes
func (r *redisRepository) ListImages(ctx context.Context) (*ListImagesOutput, error) {
	index, err := r.client.HGetAll(ctx, prizeImagesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list prize images: %v", ErrUnavailable, err)
	}

	images := make([]string, 0, len(index))
	for image := range index {
		images = append(images, image)
	}

	return &ListImagesOutput{Images: images}, nil
}

// MarkExhausted permanently retires a prize from selection
func (r *redisRepository) MarkExhausted(ctx context.Context, input *MarkExhaustedInput) error {
	if input == nil || input.PrizeID == 0 {
		return errors.New("input and prize ID cannot be empty")
	}

	prizeKey := fmt.Sprintf("%s%d", prizeKeyPrefix, input.PrizeID)
	if err := r.client.HSet(ctx, prizeKey, "exhausted", 1).Err(); err != nil {
		return fmt.Errorf("%w: failed to mark prize exhausted: %v", ErrUnavailable, err)
	}

	return nil
}

// MarkOffered flags a prize as offered for the given driver session
func (r *redisRepository) MarkOffered(ctx context.Context, input *MarkOfferedInput) error {
	if input == nil || input.Session == "" || input.PrizeID == 0 {
		return errors.New("input, session and prize ID cannot be empty")
	}

	offeredKey := fmt.Sprintf("%s%s", offeredKeyPrefix, input.Session)

	pipe := r.client.Pipeline()
	pipe.SAdd(ctx, offeredKey, input.PrizeID)
	pipe.Expire(ctx, offeredKey, offeredTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: failed to mark prize offered: %v", ErrUnavailable, err)
	}

	return nil
}

// prizeFromFields builds a Prize from its Redis hash fields
func prizeFromFields(id int64, fields map[string]string) *models.Prize {
	return &models.Prize{
		ID:        id,
		Image:     fields["image"],
		Exhausted: fields["exhausted"] == "1",
	}
}
