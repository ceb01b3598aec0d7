package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/pixeldrop/pixeldrop/internal/models"
	prizeRepo "github.com/pixeldrop/pixeldrop/internal/repositories/prize"
	prizeMocks "github.com/pixeldrop/pixeldrop/internal/repositories/prize/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SelectorTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockPrizeRepo *prizeMocks.MockRepository
	ctx           context.Context
}

func (s *SelectorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPrizeRepo = prizeMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()
}

func (s *SelectorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSelectorTestSuite(t *testing.T) {
	suite.Run(t, new(SelectorTestSuite))
}

func (s *SelectorTestSuite) newSelector() Selector {
	sel, err := New(&Config{
		PrizeRepo: s.mockPrizeRepo,
		Seed:      42,
	})
	s.Require().NoError(err)
	return sel
}

func (s *SelectorTestSuite) TestPickEligibleReturnsAnEligiblePrize() {
	eligible := []*models.Prize{
		{ID: 1, Image: "cat.png"},
		{ID: 2, Image: "dog.png"},
		{ID: 3, Image: "fox.png"},
	}

	s.mockPrizeRepo.EXPECT().
		ListEligible(s.ctx, &prizeRepo.ListEligibleInput{Session: "session-a"}).
		Return(&prizeRepo.ListEligibleOutput{Prizes: eligible}, nil)

	out, err := s.newSelector().PickEligible(s.ctx, &PickEligibleInput{
		Session: "session-a",
	})
	s.Require().NoError(err)
	s.Contains(eligible, out.Prize)
}

func (s *SelectorTestSuite) TestPickEligibleSingleCandidate() {
	only := &models.Prize{ID: 5, Image: "owl.png"}

	s.mockPrizeRepo.EXPECT().
		ListEligible(s.ctx, gomock.Any()).
		Return(&prizeRepo.ListEligibleOutput{Prizes: []*models.Prize{only}}, nil)

	out, err := s.newSelector().PickEligible(s.ctx, &PickEligibleInput{})
	s.Require().NoError(err)
	s.Equal(only, out.Prize)
}

func (s *SelectorTestSuite) TestPickEligibleEmptySet() {
	s.mockPrizeRepo.EXPECT().
		ListEligible(s.ctx, gomock.Any()).
		Return(&prizeRepo.ListEligibleOutput{Prizes: []*models.Prize{}}, nil)

	_, err := s.newSelector().PickEligible(s.ctx, &PickEligibleInput{})
	s.Require().ErrorIs(err, ErrNoEligiblePrizes)
}

func (s *SelectorTestSuite) TestPickEligibleRepositoryError() {
	repoErr := errors.New("storage unavailable")

	s.mockPrizeRepo.EXPECT().
		ListEligible(s.ctx, gomock.Any()).
		Return(nil, repoErr)

	_, err := s.newSelector().PickEligible(s.ctx, &PickEligibleInput{})
	s.Require().ErrorIs(err, repoErr)
}
