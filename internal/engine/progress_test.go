package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
)

type ProgressTestSuite struct {
	suite.Suite
	curve engine.ReferenceCurve
}

func TestProgressSuite(t *testing.T) {
	suite.Run(t, new(ProgressTestSuite))
}

func (s *ProgressTestSuite) SetupTest() {
	s.curve = engine.ReferenceCurve{
		{Level: 1, TotalValue: 175, CurrencyPerAdditionalPlayer: 10},
		{Level: 2, TotalValue: 300, CurrencyPerAdditionalPlayer: 18},
		{Level: 3, TotalValue: 500, CurrencyPerAdditionalPlayer: 30},
	}
}

func (s *ProgressTestSuite) TestExpectedAt() {
	s.Zero(s.curve.ExpectedAt(0, 4))
	s.InDelta(175.0, s.curve.ExpectedAt(1, 4), 0.0001)
	s.InDelta(475.0, s.curve.ExpectedAt(2, 4), 0.0001)
	s.InDelta(975.0, s.curve.ExpectedAt(3, 4), 0.0001)
	// saturates past the end of the table
	s.InDelta(975.0, s.curve.ExpectedAt(9, 4), 0.0001)
}

func (s *ProgressTestSuite) TestExpectedAtScalesWithPartySize() {
	s.InDelta(185.0+318.0, s.curve.ExpectedAt(2, 5), 0.0001)
	s.InDelta(165.0+282.0, s.curve.ExpectedAt(2, 3), 0.0001)
}

func (s *ProgressTestSuite) TestInterpolation() {
	progress := engine.ComputeLevelProgress(1250, 4, s.curve)
	s.Equal(1, progress.Level)
	s.Equal(250, progress.ExperienceThisLevel)
	s.InDelta(0.25, progress.Fraction, 0.0001)
	s.InDelta(175.0, progress.ExpectedStart, 0.0001)
	s.InDelta(475.0, progress.ExpectedEnd, 0.0001)
	s.InDelta(250.0, progress.Expected, 0.0001)
}

func (s *ProgressTestSuite) TestRoundsOnlyTheFinalValue() {
	// 175 + 0.333 * 300 = 274.9
	s.InDelta(275.0, engine.InterpolateExpectedTreasure(1333, 4, s.curve), 0.0001)
	s.InDelta(0.0, engine.InterpolateExpectedTreasure(1, 4, s.curve), 0.0001)
	s.InDelta(88.0, engine.InterpolateExpectedTreasure(500, 4, s.curve), 0.0001)
}

func (s *ProgressTestSuite) TestLevelBoundaries() {
	s.InDelta(0.0, engine.InterpolateExpectedTreasure(0, 4, s.curve), 0.0001)
	s.InDelta(175.0, engine.InterpolateExpectedTreasure(1000, 4, s.curve), 0.0001)
	s.InDelta(975.0, engine.InterpolateExpectedTreasure(3000, 4, s.curve), 0.0001)
	s.InDelta(975.0, engine.InterpolateExpectedTreasure(7500, 4, s.curve), 0.0001)
}

func (s *ProgressTestSuite) TestNegativeExperienceClampsToZero() {
	progress := engine.ComputeLevelProgress(-300, 4, s.curve)
	s.Equal(0, progress.Level)
	s.Equal(0, progress.ExperienceThisLevel)
	s.Zero(progress.Expected)
}

func (s *ProgressTestSuite) TestEmptyCurve() {
	s.Zero(engine.InterpolateExpectedTreasure(4500, 4, nil))
}

func (s *ProgressTestSuite) TestExpectedTreasureForExperience() {
	s.InDelta(30.0, s.curve.ExpectedTreasureForExperience(2, 100), 0.0001)
	s.Zero(s.curve.ExpectedTreasureForExperience(12, 100))
}
