package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
)

type KindTestSuite struct {
	suite.Suite
}

func TestKindSuite(t *testing.T) {
	suite.Run(t, new(KindTestSuite))
}

func (s *KindTestSuite) TestCombatRoundTrip() {
	original := entities.KindEnvelope{Value: entities.CombatKind{
		Enemies: []entities.EncounterEnemy{
			{ID: "goblin-warrior", LevelAdjustment: 0},
			{ID: "goblin-commando", LevelAdjustment: 1},
		},
		Hazards: []string{"spear-launcher"},
	}}

	data, err := json.Marshal(original)
	s.Require().NoError(err)

	var decoded entities.KindEnvelope
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(original, decoded)
}

func (s *KindTestSuite) TestWireShape() {
	testCases := []struct {
		name     string
		kind     entities.EncounterKind
		expected string
	}{
		{
			name:     "combat",
			kind:     entities.CombatKind{Enemies: []entities.EncounterEnemy{{ID: "orc", LevelAdjustment: -1}}, Hazards: []string{"pit"}},
			expected: `{"type":"combat","enemies":[{"id":"orc","level_adjustment":-1}],"hazards":["pit"]}`,
		},
		{
			name:     "subsystem",
			kind:     entities.SubsystemKind{Subsystem: entities.SubsystemChase, Checks: []entities.SkillCheck{{Name: "Jump the gap", VictoryPoints: 2}}},
			expected: `{"type":"subsystem","subsystemType":"chase","subsystemChecks":[{"name":"Jump the gap","victory_points":2}]}`,
		},
		{
			name:     "accomplishment",
			kind:     entities.AccomplishmentKind{},
			expected: `{"type":"accomplishment"}`,
		},
		{
			name:     "reward initialization",
			kind:     entities.RewardInitializationKind{},
			expected: `{"type":"rewardInitialization"}`,
		},
		{
			name:     "unknown",
			kind:     entities.UnknownKind{},
			expected: `{"type":"unknown"}`,
		},
		{
			name:     "nil is unknown",
			kind:     nil,
			expected: `{"type":"unknown"}`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			data, err := json.Marshal(entities.KindEnvelope{Value: tc.kind})
			s.Require().NoError(err)
			s.JSONEq(tc.expected, string(data))
		})
	}
}

func (s *KindTestSuite) TestUnmarshalMissingTypeIsUnknown() {
	var decoded entities.KindEnvelope
	s.Require().NoError(json.Unmarshal([]byte(`{}`), &decoded))
	s.Equal(entities.UnknownKind{}, decoded.Value)
}

func (s *KindTestSuite) TestUnmarshalRejectsUnknownType() {
	var decoded entities.KindEnvelope
	err := json.Unmarshal([]byte(`{"type":"dungeon"}`), &decoded)
	s.Require().Error(err)
	s.Contains(err.Error(), "dungeon")
}

func (s *KindTestSuite) TestKindOf() {
	s.Equal(entities.KindUnknown, entities.KindOf(nil))
	s.Equal(entities.KindCombat, entities.KindOf(entities.CombatKind{}))
	s.Equal(entities.KindSubsystem, entities.KindOf(entities.SubsystemKind{}))
}
