package giveaway

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/pixeldrop/pixeldrop/internal/common/clock/mocks"
	"github.com/pixeldrop/pixeldrop/internal/models"
	prizeRepo "github.com/pixeldrop/pixeldrop/internal/repositories/prize"
	prizeMocks "github.com/pixeldrop/pixeldrop/internal/repositories/prize/mocks"
	userRepo "github.com/pixeldrop/pixeldrop/internal/repositories/user"
	userMocks "github.com/pixeldrop/pixeldrop/internal/repositories/user/mocks"
	winRepo "github.com/pixeldrop/pixeldrop/internal/repositories/win"
	winMocks "github.com/pixeldrop/pixeldrop/internal/repositories/win/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GiveawayServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUserRepo  *userMocks.MockRepository
	mockPrizeRepo *prizeMocks.MockRepository
	mockWinRepo   *winMocks.MockRepository
	mockClock     *clockMocks.MockClock
	service       Service
	ctx           context.Context

	// Test data
	testTime    time.Time
	testUserID  string
	testName    string
	testPrizeID int64

	// Reusable test fixtures
	expectedPrize *models.Prize
}

func (s *GiveawayServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockPrizeRepo = prizeMocks.NewMockRepository(s.mockCtrl)
	s.mockWinRepo = winMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"
	s.testName = "Test User"
	s.testPrizeID = 7

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.expectedPrize = &models.Prize{
		ID:    s.testPrizeID,
		Image: "cat.png",
	}

	svc, err := New(&Config{
		UserRepo:  s.mockUserRepo,
		PrizeRepo: s.mockPrizeRepo,
		WinRepo:   s.mockWinRepo,
		Clock:     s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *GiveawayServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGiveawayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GiveawayServiceTestSuite))
}

func (s *GiveawayServiceTestSuite) TestRegisterUser() {
	s.mockUserRepo.EXPECT().
		RegisterUser(s.ctx, &userRepo.RegisterUserInput{
			User: &models.User{
				ID:           s.testUserID,
				Name:         s.testName,
				RegisteredAt: s.testTime,
			},
		}).
		Return(&userRepo.RegisterUserOutput{AlreadyRegistered: false}, nil)

	out, err := s.service.RegisterUser(s.ctx, &RegisterUserInput{
		UserID:   s.testUserID,
		UserName: s.testName,
	})
	s.Require().NoError(err)
	s.False(out.AlreadyRegistered)
}

func (s *GiveawayServiceTestSuite) TestRegisterUserAlreadyRegistered() {
	s.mockUserRepo.EXPECT().
		RegisterUser(s.ctx, gomock.Any()).
		Return(&userRepo.RegisterUserOutput{AlreadyRegistered: true}, nil)

	out, err := s.service.RegisterUser(s.ctx, &RegisterUserInput{
		UserID:   s.testUserID,
		UserName: s.testName,
	})
	s.Require().NoError(err)
	s.True(out.AlreadyRegistered)
}

func (s *GiveawayServiceTestSuite) TestClaimGranted() {
	s.mockPrizeRepo.EXPECT().
		GetPrize(s.ctx, &prizeRepo.GetPrizeInput{PrizeID: s.testPrizeID}).
		Return(s.expectedPrize, nil)

	s.mockWinRepo.EXPECT().
		RecordWin(s.ctx, &winRepo.RecordWinInput{
			UserID:  s.testUserID,
			PrizeID: s.testPrizeID,
			WonAt:   s.testTime,
		}).
		Return(&winRepo.RecordWinOutput{Granted: true, WinID: 3}, nil)

	out, err := s.service.Claim(s.ctx, &ClaimInput{
		UserID:  s.testUserID,
		PrizeID: s.testPrizeID,
	})
	s.Require().NoError(err)
	s.True(out.Granted)
	s.Equal(int64(3), out.WinID)
	s.Equal("cat.png", out.Image)
	s.False(out.Exhausted)
}

func (s *GiveawayServiceTestSuite) TestClaimGrantedLastSlot() {
	s.mockPrizeRepo.EXPECT().
		GetPrize(s.ctx, gomock.Any()).
		Return(s.expectedPrize, nil)

	s.mockWinRepo.EXPECT().
		RecordWin(s.ctx, gomock.Any()).
		Return(&winRepo.RecordWinOutput{Granted: true, WinID: 9, Exhausted: true}, nil)

	out, err := s.service.Claim(s.ctx, &ClaimInput{
		UserID:  s.testUserID,
		PrizeID: s.testPrizeID,
	})
	s.Require().NoError(err)
	s.True(out.Granted)
	s.True(out.Exhausted)
}

func (s *GiveawayServiceTestSuite) TestClaimRejectedCapacityFull() {
	s.mockPrizeRepo.EXPECT().
		GetPrize(s.ctx, gomock.Any()).
		Return(s.expectedPrize, nil)

	s.mockWinRepo.EXPECT().
		RecordWin(s.ctx, gomock.Any()).
		Return(&winRepo.RecordWinOutput{Reason: models.RejectReasonCapacityFull}, nil)

	out, err := s.service.Claim(s.ctx, &ClaimInput{
		UserID:  s.testUserID,
		PrizeID: s.testPrizeID,
	})
	s.Require().NoError(err)
	s.False(out.Granted)
	s.Equal(models.RejectReasonCapacityFull, out.Reason)
}

func (s *GiveawayServiceTestSuite) TestClaimRejectedAlreadyWon() {
	s.mockPrizeRepo.EXPECT().
		GetPrize(s.ctx, gomock.Any()).
		Return(s.expectedPrize, nil)

	s.mockWinRepo.EXPECT().
		RecordWin(s.ctx, gomock.Any()).
		Return(&winRepo.RecordWinOutput{Reason: models.RejectReasonAlreadyWon}, nil)

	out, err := s.service.Claim(s.ctx, &ClaimInput{
		UserID:  s.testUserID,
		PrizeID: s.testPrizeID,
	})
	s.Require().NoError(err)
	s.False(out.Granted)
	s.Equal(models.RejectReasonAlreadyWon, out.Reason)
}

func (s *GiveawayServiceTestSuite) TestClaimPrizeNotFound() {
	s.mockPrizeRepo.EXPECT().
		GetPrize(s.ctx, gomock.Any()).
		Return(nil, prizeRepo.ErrPrizeNotFound)

	_, err := s.service.Claim(s.ctx, &ClaimInput{
		UserID:  s.testUserID,
		PrizeID: s.testPrizeID,
	})
	s.Require().ErrorIs(err, ErrPrizeNotFound)
}

func (s *GiveawayServiceTestSuite) TestClaimStorageUnavailable() {
	s.mockPrizeRepo.EXPECT().
		GetPrize(s.ctx, gomock.Any()).
		Return(s.expectedPrize, nil)

	s.mockWinRepo.EXPECT().
		RecordWin(s.ctx, gomock.Any()).
		Return(nil, winRepo.ErrUnavailable)

	_, err := s.service.Claim(s.ctx, &ClaimInput{
		UserID:  s.testUserID,
		PrizeID: s.testPrizeID,
	})
	s.Require().ErrorIs(err, ErrStorageUnavailable)
}

func (s *GiveawayServiceTestSuite) TestGetLeaderboard() {
	standings := []*models.WinnerStanding{
		{UserID: "user-1", UserName: "Alice", WinCount: 4},
		{UserID: "user-2", UserName: "Bob", WinCount: 1},
	}

	s.mockWinRepo.EXPECT().
		TopWinners(s.ctx, &winRepo.TopWinnersInput{Limit: 5}).
		Return(&winRepo.TopWinnersOutput{Standings: standings}, nil)

	out, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{Limit: 5})
	s.Require().NoError(err)
	s.Equal(standings, out.Leaderboard.Standings)
}

func (s *GiveawayServiceTestSuite) TestGetLeaderboardDefaultLimit() {
	s.mockWinRepo.EXPECT().
		TopWinners(s.ctx, &winRepo.TopWinnersInput{Limit: DefaultLeaderboardLimit}).
		Return(&winRepo.TopWinnersOutput{Standings: []*models.WinnerStanding{}}, nil)

	out, err := s.service.GetLeaderboard(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(out.Leaderboard.Standings)
}

func (s *GiveawayServiceTestSuite) TestGetUserCollection() {
	s.mockWinRepo.EXPECT().
		WinsForUser(s.ctx, &winRepo.WinsForUserInput{UserID: s.testUserID}).
		Return(&winRepo.WinsForUserOutput{PrizeIDs: []int64{1, 2}}, nil)

	s.mockPrizeRepo.EXPECT().
		ListImages(s.ctx).
		Return(&prizeRepo.ListImagesOutput{Images: []string{"cat.png", "dog.png", "fox.png"}}, nil)

	s.mockPrizeRepo.EXPECT().
		GetPrize(s.ctx, &prizeRepo.GetPrizeInput{PrizeID: int64(1)}).
		Return(&models.Prize{ID: 1, Image: "cat.png"}, nil)

	s.mockPrizeRepo.EXPECT().
		GetPrize(s.ctx, &prizeRepo.GetPrizeInput{PrizeID: int64(2)}).
		Return(&models.Prize{ID: 2, Image: "dog.png"}, nil)

	out, err := s.service.GetUserCollection(s.ctx, &GetUserCollectionInput{
		UserID: s.testUserID,
	})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"cat.png", "dog.png"}, out.WonImages)
	s.ElementsMatch([]string{"cat.png", "dog.png", "fox.png"}, out.AllImages)
}

func (s *GiveawayServiceTestSuite) TestSeedPrizes() {
	s.mockPrizeRepo.EXPECT().
		SeedPrizes(s.ctx, &prizeRepo.SeedPrizesInput{Images: []string{"cat.png"}}).
		Return(&prizeRepo.SeedPrizesOutput{Created: 1}, nil)

	out, err := s.service.SeedPrizes(s.ctx, &SeedPrizesInput{Images: []string{"cat.png"}})
	s.Require().NoError(err)
	s.Equal(1, out.Created)
}
