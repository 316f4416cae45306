package library_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/library"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *library.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := library.Open(s.ctx, library.MemoryPath)
	s.Require().NoError(err)
	s.store = store

	potion := 3.0
	s.Require().NoError(s.store.UpsertCreatures(s.ctx, []library.Creature{
		{ID: "goblin-warrior", Name: "Goblin Warrior", Level: -1},
		{ID: "ogre", Name: "Ogre", Level: 3},
	}))
	s.Require().NoError(s.store.UpsertHazards(s.ctx, []library.Hazard{
		{ID: "pit", Name: "Hidden Pit", Level: 0},
		{ID: "bog", Name: "Quicksand", Level: 3, Complex: true},
	}))
	s.Require().NoError(s.store.UpsertItems(s.ctx, []library.Item{
		{ID: "minor-healing-potion", Name: "Minor Healing Potion", Level: 1, Price: &potion, Consumable: true},
		{ID: "family-heirloom", Name: "Family Heirloom"},
	}))
}

func (s *StoreTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *StoreTestSuite) TestOpenRequiresPath() {
	_, err := library.Open(s.ctx, " ")
	s.Error(err)
}

func (s *StoreTestSuite) TestCreatureLevels() {
	levels, err := s.store.CreatureLevels(s.ctx, []string{"ogre", "goblin-warrior", "ogre", "dragon"})
	s.Require().NoError(err)
	s.Equal(map[string]int{"ogre": 3, "goblin-warrior": -1}, levels)
}

func (s *StoreTestSuite) TestCreatureLevelsEmpty() {
	levels, err := s.store.CreatureLevels(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(levels)
}

func (s *StoreTestSuite) TestHazards() {
	hazards, err := s.store.Hazards(s.ctx, []string{"pit", "bog"})
	s.Require().NoError(err)
	s.Equal(library.HazardInfo{Level: 0, Complex: false}, hazards["pit"])
	s.Equal(library.HazardInfo{Level: 3, Complex: true}, hazards["bog"])
}

func (s *StoreTestSuite) TestItemPricesSkipUnpriced() {
	prices, err := s.store.ItemPrices(s.ctx, []string{"minor-healing-potion", "family-heirloom", "missing"})
	s.Require().NoError(err)
	s.Equal(map[string]float64{"minor-healing-potion": 3}, prices)
}

func (s *StoreTestSuite) TestUpsertReplaces() {
	s.Require().NoError(s.store.UpsertCreatures(s.ctx, []library.Creature{{ID: "ogre", Name: "Ogre Warrior", Level: 4}}))
	levels, err := s.store.CreatureLevels(s.ctx, []string{"ogre"})
	s.Require().NoError(err)
	s.Equal(4, levels["ogre"])
}

func (s *StoreTestSuite) TestTreasureCurveIsSeeded() {
	curve, err := s.store.TreasureCurve(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(curve, 20)
	s.Equal(1, curve[0].Level)
	s.InDelta(175.0, curve[0].TotalValue, 0.001)
	s.InDelta(10.0, curve[0].CurrencyPerAdditionalPlayer, 0.001)
	s.Equal(20, curve[19].Level)
	s.InDelta(490000.0, curve[19].TotalValue, 0.001)
}
