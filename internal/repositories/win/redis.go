package win

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
	winnersKeyPrefix  = "prize_winners:"
	userWinsKeyPrefix = "user_wins:"
	ratingKey         = "rating"
	winSeqKey         = "win:next_id"

	// prizeKeyPrefix and userKeyPrefix are owned by the prize and user
	// repositories; the claim script flips the exhausted field in place
	// and the leaderboard joins display names from the user hashes
	prizeKeyPrefix = "prize:"
	userKeyPrefix  = "user:"
)

// ErrUnavailable is returned when the storage backend cannot be reached
var ErrUnavailable = errors.New("storage unavailable")

// claimScript is the single atomicity boundary of the claim protocol. Redis
// runs a script with nothing interleaved, so the uniqueness check, the
// capacity check, the insert and the exhaustion flip cannot race with a
// concurrent claim on the same prize. Every key is passed in statically to
// keep the script valid under cluster hash-slot rules.
//
// KEYS: winners hash, prize hash, rating zset, user wins set, win id counter
// ARGV: user ID, winner cap, timestamp, prize ID
var claimScript = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 1 then
	return {"already_won", 0}
end
if redis.call("HLEN", KEYS[1]) >= tonumber(ARGV[2]) then
	return {"capacity_full", 0}
end
local id = redis.call("INCR", KEYS[5])
redis.call("HSET", KEYS[1], ARGV[1], ARGV[3])
redis.call("ZINCRBY", KEYS[3], 1, ARGV[1])
redis.call("SADD", KEYS[4], ARGV[4])
if redis.call("HLEN", KEYS[1]) >= tonumber(ARGV[2]) then
	redis.call("HSET", KEYS[2], "exhausted", 1)
	return {"exhausted", id}
end
return {"granted", id}
`)

// Config holds configuration for the Redis win repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed win repository
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

// RecordWin adjudicates one claim attempt through the claim script
func (r *redisRepository) RecordWin(ctx context.Context, input *RecordWinInput) (*RecordWinOutput, error) {
	if input == nil || input.UserID == "" || input.PrizeID == 0 {
		return nil, errors.New("input, user ID and prize ID cannot be empty")
	}

	wonAt := input.WonAt
	if wonAt.IsZero() {
		wonAt = time.Now()
	}

	keys := []string{
		fmt.Sprintf("%s%d", winnersKeyPrefix, input.PrizeID),
		fmt.Sprintf("%s%d", prizeKeyPrefix, input.PrizeID),
		ratingKey,
		fmt.Sprintf("%s%s", userWinsKeyPrefix, input.UserID),
		winSeqKey,
	}

	res, err := claimScript.Run(ctx, r.client, keys,
		input.UserID,
		models.MaxWinnersPerPrize,
		wonAt.UTC().Format(time.RFC3339),
		input.PrizeID,
	).Slice()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to run claim script: %v", ErrUnavailable, err)
	}

	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected claim script result: %v", res)
	}

	verdict, _ := res[0].(string)
	winID, _ := res[1].(int64)

	switch verdict {
	case "granted":
		return &RecordWinOutput{Granted: true, WinID: winID}, nil
	case "exhausted":
		return &RecordWinOutput{Granted: true, WinID: winID, Exhausted: true}, nil
	case "already_won":
		return &RecordWinOutput{Reason: models.RejectReasonAlreadyWon}, nil
	case "capacity_full":
		return &RecordWinOutput{Reason: models.RejectReasonCapacityFull}, nil
	default:
		return nil, fmt.Errorf("unexpected claim script verdict: %q", verdict)
	}
}

// WinCount returns how many users have won the given prize
func (r *redisRepository) WinCount(ctx context.Context, input *WinCountInput) (*WinCountOutput, error) {
	if input == nil || input.PrizeID == 0 {
		return nil, errors.New("input and prize ID cannot be empty")
	}

	winnersKey := fmt.Sprintf("%s%d", winnersKeyPrefix, input.PrizeID)
	count, err := r.client.HLen(ctx, winnersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to count winners: %v", ErrUnavailable, err)
	}

	return &WinCountOutput{Count: int(count)}, nil
}

// HasWon reports whether the user already holds a win for the prize
func (r *redisRepository) HasWon(ctx context.Context, input *HasWonInput) (*HasWonOutput, error) {
	if input == nil || input.UserID == "" || input.PrizeID == 0 {
		return nil, errors.New("input, user ID and prize ID cannot be empty")
	}

	winnersKey := fmt.Sprintf("%s%d", winnersKeyPrefix, input.PrizeID)
	hasWon, err := r.client.HExists(ctx, winnersKey, input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check win record: %v", ErrUnavailable, err)
	}

	return &HasWonOutput{HasWon: hasWon}, nil
}

// TopWinners returns the leaderboard, joining display names from user records
func (r *redisRepository) TopWinners(ctx context.Context, input *TopWinnersInput) (*TopWinnersOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and limit must be positive")
	}

	entries, err := r.client.ZRevRangeWithScores(ctx, ratingKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read rating: %v", ErrUnavailable, err)
	}

	if len(entries) == 0 {
		return &TopWinnersOutput{Standings: []*models.WinnerStanding{}}, nil
	}

	// Join display names in one round trip
	pipe := r.client.Pipeline()
	nameCmds := make([]*redis.StringCmd, len(entries))
	for i, entry := range entries {
		userID := entry.Member.(string)
		nameCmds[i] = pipe.HGet(ctx, fmt.Sprintf("%s%s", userKeyPrefix, userID), "name")
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: failed to fetch winner names: %v", ErrUnavailable, err)
	}

	standings := make([]*models.WinnerStanding, 0, len(entries))
	for i, entry := range entries {
		userID := entry.Member.(string)

		name, err := nameCmds[i].Result()
		if err != nil {
			// Rating entries always come from registered users; fall
			// back to the raw ID if the record is missing anyway
			name = userID
		}

		standings = append(standings, &models.WinnerStanding{
			UserID:   userID,
			UserName: name,
			WinCount: int(entry.Score),
		})
	}

	return &TopWinnersOutput{Standings: standings}, nil
}

// WinsForUser returns the IDs of all prizes the user has won
func (r *redisRepository) WinsForUser(ctx context.Context, input *WinsForUserInput) (*WinsForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userWinsKey := fmt.Sprintf("%s%s", userWinsKeyPrefix, input.UserID)
	members, err := r.client.SMembers(ctx, userWinsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list user wins: %v", ErrUnavailable, err)
	}

	prizeIDs := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		prizeIDs = append(prizeIDs, id)
	}

	return &WinsForUserOutput{PrizeIDs: prizeIDs}, nil
}
