package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
)

type EncounterTestSuite struct {
	suite.Suite
}

func TestEncounterSuite(t *testing.T) {
	suite.Run(t, new(EncounterTestSuite))
}

func enemies(levels ...int) []engine.EnemyInput {
	out := make([]engine.EnemyInput, len(levels))
	for i, l := range levels {
		out[i] = engine.EnemyInput{Level: l}
	}
	return out
}

func (s *EncounterTestSuite) TestReferenceScenarios() {
	testCases := []struct {
		name      string
		enemies   []engine.EnemyInput
		partySize int
		expected  int
	}{
		{name: "four on-level creatures", enemies: enemies(5, 5, 5, 5), partySize: 4, expected: 160},
		{name: "boss with minions", enemies: enemies(7, 1, 1, 1, 1), partySize: 4, expected: 120},
		{name: "two on-level creatures", enemies: enemies(5, 5), partySize: 4, expected: 80},
		{name: "party of five extreme penalty", enemies: enemies(5, 5, 5, 5, 3), partySize: 5, expected: 140},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, engine.ComputeEncounterXP(tc.enemies, nil, 5, tc.partySize))
		})
	}
}

func (s *EncounterTestSuite) TestDegenerateInputs() {
	s.Equal(0, engine.ComputeEncounterXP(nil, nil, 0, 0))
	s.Equal(0, engine.ComputeEncounterXP(nil, nil, 5, 0))
	s.Equal(0, engine.ComputeEncounterXP([]engine.EnemyInput{}, []engine.HazardInput{}, 5, 4))
	s.Equal(0, engine.ComputeEncounterXP(enemies(5), nil, 0, 4))
	s.Equal(0, engine.ComputeEncounterXP(enemies(5), nil, 5, 0))

	result := engine.CalculateEncounter(nil, nil, 5, 4)
	s.False(result.Computable)
	s.Equal(0, result.Total)
}

func (s *EncounterTestSuite) TestLevelAdjustment() {
	elite := []engine.EnemyInput{{Level: 5, Adjustment: 1}}
	weak := []engine.EnemyInput{{Level: 5, Adjustment: -1}}

	// 60 raw is Low for four players, so no party size correction applies
	s.Equal(60, engine.ComputeEncounterXP(elite, nil, 5, 4))
	s.Equal(30, engine.ComputeEncounterXP(weak, nil, 5, 4))
}

func (s *EncounterTestSuite) TestHazardsOnly() {
	hazards := []engine.HazardInput{
		{Level: 5, Complex: false},
		{Level: 5, Complex: true},
	}
	result := engine.CalculateEncounter(nil, hazards, 5, 4)
	s.True(result.Computable)
	s.Equal(48, result.Raw)
	s.Equal(engine.DifficultyTrivial, result.Difficulty)
	s.Equal(48, result.Total)
}

func (s *EncounterTestSuite) TestSmallPartyGetsBonus() {
	// raw 80 for three players: budgets 30/40/60/90/120 give Severe [75,105)
	result := engine.CalculateEncounter(enemies(5, 5), nil, 5, 3)
	s.Equal(80, result.Raw)
	s.Equal(engine.DifficultySevere, result.Difficulty)
	s.Equal(110, result.Total)
}

func (s *EncounterTestSuite) TestTrivialAdjustmentApplies() {
	// raw 40 for six players is Trivial, normalized by the Trivial delta
	result := engine.CalculateEncounter(enemies(5), nil, 5, 6)
	s.Equal(engine.DifficultyTrivial, result.Difficulty)
	s.Equal(20, result.Total)
}

func (s *EncounterTestSuite) TestLargePartyCanGoNegative() {
	result := engine.CalculateEncounter(enemies(1), nil, 5, 8)
	s.Equal(10, result.Raw)
	s.Equal(engine.DifficultyTrivial, result.Difficulty)
	s.Equal(-30, result.Total)
}

func (s *EncounterTestSuite) TestIdempotent() {
	roster := enemies(7, 6, 3)
	hazards := []engine.HazardInput{{Level: 8, Complex: true}}
	first := engine.CalculateEncounter(roster, hazards, 5, 5)
	second := engine.CalculateEncounter(roster, hazards, 5, 5)
	s.Equal(first, second)
}
