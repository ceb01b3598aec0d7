package win

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pixeldrop/pixeldrop/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

// seedPrize writes a prize hash directly, the shape the prize repository uses
func (s *RedisRepositoryTestSuite) seedPrize(prizeID int64, image string) {
	prizeKey := fmt.Sprintf("%s%d", prizeKeyPrefix, prizeID)
	s.Require().NoError(s.client.HSet(context.Background(), prizeKey,
		"image", image, "exhausted", 0).Err())
}

func (s *RedisRepositoryTestSuite) recordWin(userID string, prizeID int64) *RecordWinOutput {
	out, err := s.repo.RecordWin(context.Background(), &RecordWinInput{
		UserID:  userID,
		PrizeID: prizeID,
		WonAt:   s.testNow,
	})
	s.Require().NoError(err)
	return out
}

func (s *RedisRepositoryTestSuite) TestRecordWinGrantsFirstClaim() {
	s.seedPrize(1, "cat.png")

	out := s.recordWin("user-1", 1)
	s.True(out.Granted)
	s.False(out.Exhausted)
	s.Equal(int64(1), out.WinID)

	count, err := s.repo.WinCount(context.Background(), &WinCountInput{PrizeID: 1})
	s.Require().NoError(err)
	s.Equal(1, count.Count)

	hasWon, err := s.repo.HasWon(context.Background(), &HasWonInput{
		UserID:  "user-1",
		PrizeID: 1,
	})
	s.Require().NoError(err)
	s.True(hasWon.HasWon)
}

func (s *RedisRepositoryTestSuite) TestRecordWinAssignsSequentialIDs() {
	s.seedPrize(1, "cat.png")
	s.seedPrize(2, "dog.png")

	s.Equal(int64(1), s.recordWin("user-1", 1).WinID)
	s.Equal(int64(2), s.recordWin("user-2", 1).WinID)
	s.Equal(int64(3), s.recordWin("user-1", 2).WinID)
}

func (s *RedisRepositoryTestSuite) TestRecordWinRejectsSecondClaimBySameUser() {
	s.seedPrize(1, "cat.png")

	s.True(s.recordWin("user-1", 1).Granted)

	out := s.recordWin("user-1", 1)
	s.False(out.Granted)
	s.Equal(models.RejectReasonAlreadyWon, out.Reason)
	s.Zero(out.WinID)

	count, err := s.repo.WinCount(context.Background(), &WinCountInput{PrizeID: 1})
	s.Require().NoError(err)
	s.Equal(1, count.Count)
}

func (s *RedisRepositoryTestSuite) TestRecordWinExhaustsPrizeAtCapacity() {
	s.seedPrize(1, "cat.png")

	s.True(s.recordWin("user-1", 1).Granted)
	s.True(s.recordWin("user-2", 1).Granted)

	third := s.recordWin("user-3", 1)
	s.True(third.Granted)
	s.True(third.Exhausted)

	// The script flips the prize's exhausted field in the same atomic step
	prizeKey := fmt.Sprintf("%s%d", prizeKeyPrefix, 1)
	exhausted, err := s.client.HGet(context.Background(), prizeKey, "exhausted").Result()
	s.Require().NoError(err)
	s.Equal("1", exhausted)

	fourth := s.recordWin("user-4", 1)
	s.False(fourth.Granted)
	s.Equal(models.RejectReasonCapacityFull, fourth.Reason)
}

func (s *RedisRepositoryTestSuite) TestRecordWinScenarioFourUsers() {
	// A, B and C claim concurrently: all granted, prize exhausted.
	// D is capacity-rejected, a repeat claim by A is uniqueness-rejected.
	s.seedPrize(1, "cat.png")

	var wg sync.WaitGroup
	outcomes := make([]*RecordWinOutput, 3)
	errs := make([]error, 3)
	for n, userID := range []string{"user-a", "user-b", "user-c"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[n], errs[n] = s.repo.RecordWin(context.Background(), &RecordWinInput{
				UserID:  userID,
				PrizeID: 1,
				WonAt:   s.testNow,
			})
		}()
	}
	wg.Wait()

	for n, out := range outcomes {
		s.Require().NoError(errs[n])
		s.True(out.Granted)
	}

	d := s.recordWin("user-d", 1)
	s.False(d.Granted)
	s.Equal(models.RejectReasonCapacityFull, d.Reason)

	a := s.recordWin("user-a", 1)
	s.False(a.Granted)
	s.Equal(models.RejectReasonAlreadyWon, a.Reason)
}

func (s *RedisRepositoryTestSuite) TestConcurrentClaimsNeverExceedCapacity() {
	// Many distinct users race for one fresh prize: exactly the winner
	// cap succeed, everyone else is capacity-rejected, regardless of
	// interleaving
	const claimants = 20

	s.seedPrize(1, "cat.png")

	type result struct {
		out *RecordWinOutput
		err error
	}

	var wg sync.WaitGroup
	results := make(chan result, claimants)

	for n := range claimants {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.repo.RecordWin(context.Background(), &RecordWinInput{
				UserID:  fmt.Sprintf("user-%d", n),
				PrizeID: 1,
				WonAt:   s.testNow,
			})
			results <- result{out: out, err: err}
		}()
	}
	wg.Wait()
	close(results)

	granted, rejected := 0, 0
	for res := range results {
		s.Require().NoError(res.err)
		out := res.out
		if out.Granted {
			granted++
		} else {
			rejected++
			s.Equal(models.RejectReasonCapacityFull, out.Reason)
		}
	}

	s.Equal(models.MaxWinnersPerPrize, granted)
	s.Equal(claimants-models.MaxWinnersPerPrize, rejected)

	count, err := s.repo.WinCount(context.Background(), &WinCountInput{PrizeID: 1})
	s.Require().NoError(err)
	s.Equal(models.MaxWinnersPerPrize, count.Count)
}

func (s *RedisRepositoryTestSuite) TestTopWinnersOrdering() {
	s.seedPrize(1, "cat.png")
	s.seedPrize(2, "dog.png")
	s.seedPrize(3, "fox.png")

	// Register display names the way the user repository stores them
	for id, name := range map[string]string{
		"user-1": "Alice",
		"user-2": "Bob",
	} {
		userKey := fmt.Sprintf("%s%s", userKeyPrefix, id)
		s.Require().NoError(s.client.HSet(context.Background(), userKey, "name", name).Err())
	}

	s.True(s.recordWin("user-1", 1).Granted)
	s.True(s.recordWin("user-1", 2).Granted)
	s.True(s.recordWin("user-2", 3).Granted)

	out, err := s.repo.TopWinners(context.Background(), &TopWinnersInput{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(out.Standings, 2)

	s.Equal("Alice", out.Standings[0].UserName)
	s.Equal(2, out.Standings[0].WinCount)
	s.Equal("Bob", out.Standings[1].UserName)
	s.Equal(1, out.Standings[1].WinCount)
}

func (s *RedisRepositoryTestSuite) TestTopWinnersOmitsUsersWithoutWins() {
	out, err := s.repo.TopWinners(context.Background(), &TopWinnersInput{Limit: 10})
	s.Require().NoError(err)
	s.Empty(out.Standings)
}

func (s *RedisRepositoryTestSuite) TestWinsForUser() {
	s.seedPrize(1, "cat.png")
	s.seedPrize(2, "dog.png")

	s.True(s.recordWin("user-1", 1).Granted)
	s.True(s.recordWin("user-1", 2).Granted)

	out, err := s.repo.WinsForUser(context.Background(), &WinsForUserInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.ElementsMatch([]int64{1, 2}, out.PrizeIDs)

	empty, err := s.repo.WinsForUser(context.Background(), &WinsForUserInput{
		UserID: "user-2",
	})
	s.Require().NoError(err)
	s.Empty(empty.PrizeIDs)
}
