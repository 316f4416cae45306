package campaign_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/calculator"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/campaign"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/campaigns"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/encounters"
	librarymock "github.com/KirkDiggler/rpg-gm-api/internal/repositories/library/mock"
	"github.com/KirkDiggler/rpg-gm-api/internal/testutils"
	"github.com/KirkDiggler/rpg-gm-api/internal/testutils/mocks"
)

const owner = testutils.TestOwnerID

type OrchestratorTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	encounterRepo *encounters.InMemoryRepository
	encounters    encounter.Service
	orchestrator  campaign.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	lookup := librarymock.NewMockLookup(s.ctrl)
	mocks.ExpectLibrary(lookup, mocks.DefaultLibrary())

	calc, err := calculator.NewOrchestrator(&calculator.Config{Lookup: lookup})
	s.Require().NoError(err)

	fixed := &clock.Fixed{T: time.Unix(1700000000, 0)}
	s.encounterRepo = encounters.NewInMemory()
	s.encounters, err = encounter.NewOrchestrator(&encounter.Config{
		Repository:  s.encounterRepo,
		Calculator:  calc,
		IDGenerator: idgen.NewSequential("enc"),
		Clock:       fixed,
	})
	s.Require().NoError(err)

	s.orchestrator, err = campaign.NewOrchestrator(&campaign.Config{
		Campaigns:        campaigns.NewInMemory(),
		Encounters:       s.encounterRepo,
		EncounterService: s.encounters,
		Calculator:       calc,
		IDGenerator:      idgen.NewSequential("cmp"),
		Clock:            fixed,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) createCampaign(seed *entities.CampaignInitialization) *campaign.CreateCampaignOutput {
	out, err := s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{
		OwnerID:        owner,
		Name:           "Abomination Vaults",
		PartySize:      4,
		Initialization: seed,
	})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := campaign.NewOrchestrator(&campaign.Config{})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestCreateCampaignValidation() {
	_, err := s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{OwnerID: owner})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{OwnerID: owner, Name: "x", PartySize: -1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{OwnerID: owner, Name: "x", PartySize: engine.MaxPartySize + 1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCampaignDefaultsPartySize() {
	out, err := s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{OwnerID: owner, Name: "Solo"})
	s.Require().NoError(err)
	s.Equal(4, out.Campaign.PartySize)
	s.Nil(out.InitialSession)
	s.Nil(out.InitialEncounter)
}

func (s *OrchestratorTestSuite) TestCreateCampaignWithInitialization() {
	out := s.createCampaign(&entities.CampaignInitialization{
		Experience: 500,
		Gold:       100,
		Items:      []string{testutils.LongswordID},
	})

	s.Require().NotNil(out.InitialSession)
	s.Equal(0, out.InitialSession.Order)

	e := out.InitialEncounter
	s.Require().NotNil(e)
	s.Equal(entities.KindRewardInitialization, entities.KindOf(e.Kind))
	s.Equal(entities.StatusPrepared, e.Status)
	s.Equal(out.InitialSession.ID, e.SessionID)
	s.Equal(1, e.PartyLevel)
	s.Equal(1, e.PartySize)
	s.Equal(500, e.TotalExperience.Value())
	s.Equal(entities.Currency{Gold: 100}, e.TreasureCurrency)
	s.InDelta(1.0, e.TotalItemsValue.Value(), 1e-9)
}

func (s *OrchestratorTestSuite) TestSessionsAreOrdered() {
	c := s.createCampaign(&entities.CampaignInitialization{})

	first, err := s.orchestrator.CreateSession(s.ctx, &campaign.CreateSessionInput{OwnerID: owner, CampaignID: c.Campaign.ID, Name: "One"})
	s.Require().NoError(err)
	s.Equal(1, first.Session.Order)

	second, err := s.orchestrator.CreateSession(s.ctx, &campaign.CreateSessionInput{OwnerID: owner, CampaignID: c.Campaign.ID, Name: "Two"})
	s.Require().NoError(err)
	s.Equal(2, second.Session.Order)

	got, err := s.orchestrator.GetCampaign(s.ctx, &campaign.GetCampaignInput{OwnerID: owner, CampaignID: c.Campaign.ID})
	s.Require().NoError(err)
	s.Require().Len(got.Sessions, 3)
	s.Equal(c.InitialSession.ID, got.Sessions[0].ID)
	s.Equal(first.Session.ID, got.Sessions[1].ID)
	s.Equal(second.Session.ID, got.Sessions[2].ID)
}

func (s *OrchestratorTestSuite) TestOtherOwnersSeeNothing() {
	c := s.createCampaign(nil)

	_, err := s.orchestrator.GetCampaign(s.ctx, &campaign.GetCampaignInput{OwnerID: "intruder", CampaignID: c.Campaign.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetStats(s.ctx, &campaign.GetStatsInput{OwnerID: "intruder", CampaignID: c.Campaign.ID})
	s.True(errors.IsNotFound(err))

	list, err := s.orchestrator.ListCampaigns(s.ctx, &campaign.ListCampaignsInput{OwnerID: "intruder"})
	s.Require().NoError(err)
	s.Empty(list.Campaigns)
}

func (s *OrchestratorTestSuite) TestDeleteSessionCascades() {
	c := s.createCampaign(nil)
	session, err := s.orchestrator.CreateSession(s.ctx, &campaign.CreateSessionInput{OwnerID: owner, CampaignID: c.Campaign.ID, Name: "One"})
	s.Require().NoError(err)

	e := testutils.CreateTestCombatEncounter(owner)
	e.SessionID = session.Session.ID
	_, err = s.encounters.CreateEncounters(s.ctx, &encounter.CreateEncountersInput{OwnerID: owner, Encounters: []*entities.Encounter{e}})
	s.Require().NoError(err)

	s.Run("session of another campaign", func() {
		other := s.createCampaign(nil)
		_, err := s.orchestrator.DeleteSession(s.ctx, &campaign.DeleteSessionInput{
			OwnerID:    owner,
			CampaignID: other.Campaign.ID,
			SessionID:  session.Session.ID,
		})
		s.True(errors.IsNotFound(err))
	})

	out, err := s.orchestrator.DeleteSession(s.ctx, &campaign.DeleteSessionInput{
		OwnerID:    owner,
		CampaignID: c.Campaign.ID,
		SessionID:  session.Session.ID,
	})
	s.Require().NoError(err)
	s.Equal(1, out.DeletedEncounters)

	list, err := s.encounters.ListEncounters(s.ctx, &encounter.ListEncountersInput{OwnerID: owner})
	s.Require().NoError(err)
	s.Empty(list.Encounters)
}

func (s *OrchestratorTestSuite) TestDeleteCampaignCascades() {
	c := s.createCampaign(&entities.CampaignInitialization{Experience: 100})

	out, err := s.orchestrator.DeleteCampaign(s.ctx, &campaign.DeleteCampaignInput{OwnerID: owner, CampaignID: c.Campaign.ID})
	s.Require().NoError(err)
	s.Equal(1, out.DeletedSessions)
	s.Equal(1, out.DeletedEncounters)

	_, err = s.orchestrator.GetCampaign(s.ctx, &campaign.GetCampaignInput{OwnerID: owner, CampaignID: c.Campaign.ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetStats() {
	c := s.createCampaign(&entities.CampaignInitialization{
		Experience: 500,
		Gold:       100,
		Items:      []string{testutils.LongswordID},
	})
	session, err := s.orchestrator.CreateSession(s.ctx, &campaign.CreateSessionInput{OwnerID: owner, CampaignID: c.Campaign.ID, Name: "One"})
	s.Require().NoError(err)

	fight := testutils.CreateTestCombatEncounter(owner)
	fight.SessionID = session.Session.ID
	_, err = s.encounters.CreateEncounters(s.ctx, &encounter.CreateEncountersInput{OwnerID: owner, Encounters: []*entities.Encounter{fight}})
	s.Require().NoError(err)

	_, err = s.encounters.CreateAccomplishment(s.ctx, &encounter.CreateAccomplishmentInput{
		OwnerID:   owner,
		SessionID: session.Session.ID,
		Name:      "Freed the prisoners",
		Size:      engine.AccomplishmentMajor,
	})
	s.Require().NoError(err)

	out, err := s.orchestrator.GetStats(s.ctx, &campaign.GetStatsInput{OwnerID: owner, CampaignID: c.Campaign.ID})
	s.Require().NoError(err)
	stats := out.Stats

	s.Equal(2, stats.NumSessions)
	s.Equal(1, stats.NumAccomplishments)
	s.Equal(1, stats.NumCombatEncounters)
	s.Equal(0, stats.NumSubsystemEncounters)

	s.Equal(688, stats.TotalExperience)
	s.Equal(0, stats.Level)
	s.Equal(688, stats.ExperienceThisLevel)
	s.InDelta(6.0, stats.TotalTreasureItemsValue, 1e-9)
	s.InDelta(110.0, stats.TotalTreasureCurrencyValue, 1e-9)
	s.InDelta(116.0, stats.TotalCombinedTreasureValue, 1e-9)

	s.InDelta(0.0, stats.ExpectedTreasureStartOfLevel, 1e-9)
	s.InDelta(175.0, stats.ExpectedTreasureEndOfLevel, 1e-9)
	s.InDelta(120.0, stats.ExpectedTreasure, 1e-9)

	s.Require().Len(stats.Encounters, 3)
	s.Equal(entities.KindRewardInitialization, stats.Encounters[0].Kind)
	s.Equal(500, stats.Encounters[0].AccumulatedExperience)
	s.InDelta(87.5, stats.Encounters[0].CalculatedExpectedTreasure, 1e-9)

	s.Equal(entities.KindCombat, stats.Encounters[1].Kind)
	s.Equal(608, stats.Encounters[1].AccumulatedExperience)
	s.InDelta(6.0, stats.Encounters[1].AccumulatedItemsValue, 1e-9)
	s.InDelta(110.0, stats.Encounters[1].AccumulatedCurrency, 1e-9)

	s.Equal(688, stats.Encounters[2].AccumulatedExperience)
}

func (s *OrchestratorTestSuite) TestGetStatsEmptyCampaign() {
	c := s.createCampaign(nil)

	out, err := s.orchestrator.GetStats(s.ctx, &campaign.GetStatsInput{OwnerID: owner, CampaignID: c.Campaign.ID})
	s.Require().NoError(err)
	s.Equal(0, out.Stats.TotalExperience)
	s.Equal(0, out.Stats.NumSessions)
	s.Empty(out.Stats.Encounters)
	s.InDelta(0.0, out.Stats.ExpectedTreasure, 1e-9)
}
