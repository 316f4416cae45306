package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
)

type ExperienceTestSuite struct {
	suite.Suite
}

func TestExperienceSuite(t *testing.T) {
	suite.Run(t, new(ExperienceTestSuite))
}

func (s *ExperienceTestSuite) TestEnemyXPTable() {
	expected := map[int]int{
		-10: 10, -4: 10, -3: 15, -2: 20, -1: 30,
		0: 40, 1: 60, 2: 80, 3: 120, 4: 160, 12: 160,
	}
	for diff, xp := range expected {
		s.Equal(xp, engine.EnemyXP(diff), "level diff %d", diff)
	}
}

func (s *ExperienceTestSuite) TestEnemyXPIsMonotonic() {
	prev := engine.EnemyXP(-50)
	for diff := -49; diff <= 50; diff++ {
		xp := engine.EnemyXP(diff)
		s.GreaterOrEqual(xp, prev, "level diff %d", diff)
		prev = xp
	}
}

func (s *ExperienceTestSuite) TestHazardXP() {
	s.Equal(8, engine.HazardXP(0, false))
	s.Equal(40, engine.HazardXP(0, true))
	s.Equal(2, engine.HazardXP(-6, false))
	s.Equal(32, engine.HazardXP(7, false))
	s.Equal(160, engine.HazardXP(7, true))
}

func (s *ExperienceTestSuite) TestAccomplishmentXP() {
	s.Equal(10, engine.AccomplishmentXP(engine.AccomplishmentMinor))
	s.Equal(30, engine.AccomplishmentXP(engine.AccomplishmentModerate))
	s.Equal(80, engine.AccomplishmentXP(engine.AccomplishmentMajor))
	s.Equal(0, engine.AccomplishmentXP(engine.AccomplishmentSize(42)))

	size, ok := engine.ParseAccomplishmentSize("major")
	s.True(ok)
	s.Equal(engine.AccomplishmentMajor, size)

	_, ok = engine.ParseAccomplishmentSize("epic")
	s.False(ok)
}
