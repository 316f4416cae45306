package campaigns_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/campaigns"
	"github.com/KirkDiggler/rpg-gm-api/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	newRepo func() (campaigns.Repository, func())
	repo    campaigns.Repository
	cleanup func()
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (campaigns.Repository, func()) {
			return campaigns.NewInMemory(), func() {}
		},
	})
}

func TestRedisRepositorySuite(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (campaigns.Repository, func()) {
		client, cleanup := testutils.CreateTestRedisClient(s.T())
		repo, err := campaigns.NewRedisRepository(&campaigns.RedisConfig{Client: client})
		s.Require().NoError(err)
		return repo, cleanup
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) createCampaign(id string, createdAt int64) *entities.Campaign {
	c := &entities.Campaign{
		ID:        id,
		OwnerID:   testutils.TestOwnerID,
		Name:      "Campaign " + id,
		PartySize: 4,
		CreatedAt: createdAt,
	}
	_, err := s.repo.Create(s.ctx, campaigns.CreateInput{Campaign: c})
	s.Require().NoError(err)
	return c
}

func (s *RepositoryTestSuite) createSession(id, campaignID string, order int) {
	_, err := s.repo.CreateSession(s.ctx, campaigns.CreateSessionInput{Session: &entities.Session{
		ID:         id,
		CampaignID: campaignID,
		OwnerID:    testutils.TestOwnerID,
		Name:       "Session " + id,
		Order:      order,
	}})
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	c := s.createCampaign("c-1", 1)

	out, err := s.repo.Get(s.ctx, campaigns.GetInput{ID: "c-1"})
	s.Require().NoError(err)
	s.Equal(c, out.Campaign)

	_, err = s.repo.Create(s.ctx, campaigns.CreateInput{Campaign: c})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, campaigns.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, campaigns.CreateInput{Campaign: &entities.Campaign{ID: "c-1"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, campaigns.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestListByOwner() {
	s.createCampaign("c-2", 2)
	s.createCampaign("c-1", 1)
	_, err := s.repo.Create(s.ctx, campaigns.CreateInput{Campaign: &entities.Campaign{ID: "c-3", OwnerID: "other"}})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, campaigns.ListInput{OwnerID: testutils.TestOwnerID})
	s.Require().NoError(err)
	s.Require().Len(out.Campaigns, 2)
	s.Equal("c-1", out.Campaigns[0].ID)
	s.Equal("c-2", out.Campaigns[1].ID)
}

func (s *RepositoryTestSuite) TestSessions() {
	s.createCampaign("c-1", 1)
	s.createSession("s-2", "c-1", 2)
	s.createSession("s-0", "c-1", 0)
	s.createSession("s-1", "c-1", 1)

	out, err := s.repo.ListSessions(s.ctx, campaigns.ListSessionsInput{CampaignID: "c-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 3)
	s.Equal("s-0", out.Sessions[0].ID)
	s.Equal("s-1", out.Sessions[1].ID)
	s.Equal("s-2", out.Sessions[2].ID)

	got, err := s.repo.GetSession(s.ctx, campaigns.GetSessionInput{ID: "s-1"})
	s.Require().NoError(err)
	s.Equal("c-1", got.Session.CampaignID)

	s.Require().NoError(s.repo.DeleteSession(s.ctx, campaigns.DeleteSessionInput{ID: "s-1"}))
	err = s.repo.DeleteSession(s.ctx, campaigns.DeleteSessionInput{ID: "s-1"})
	s.True(errors.IsNotFound(err))

	out, err = s.repo.ListSessions(s.ctx, campaigns.ListSessionsInput{CampaignID: "c-1"})
	s.Require().NoError(err)
	s.Len(out.Sessions, 2)
}

func (s *RepositoryTestSuite) TestCreateSessionRequiresCampaign() {
	_, err := s.repo.CreateSession(s.ctx, campaigns.CreateSessionInput{Session: &entities.Session{
		ID:         "s-1",
		CampaignID: "missing",
	}})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDeleteRemovesSessions() {
	s.createCampaign("c-1", 1)
	s.createSession("s-0", "c-1", 0)
	s.createSession("s-1", "c-1", 1)

	out, err := s.repo.Delete(s.ctx, campaigns.DeleteInput{ID: "c-1"})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"s-0", "s-1"}, out.DeletedSessionIDs)

	_, err = s.repo.GetSession(s.ctx, campaigns.GetSessionInput{ID: "s-0"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, campaigns.ListInput{OwnerID: testutils.TestOwnerID})
	s.Require().NoError(err)
	s.Empty(list.Campaigns)

	_, err = s.repo.Delete(s.ctx, campaigns.DeleteInput{ID: "c-1"})
	s.True(errors.IsNotFound(err))
}
