package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
)

type TreasureTestSuite struct {
	suite.Suite
}

func TestTreasureSuite(t *testing.T) {
	suite.Run(t, new(TreasureTestSuite))
}

func price(v float64) *float64 {
	return &v
}

func (s *TreasureTestSuite) TestSumsPricesAndCurrency() {
	total := engine.ComputeTreasureValue([]*float64{price(10), price(2.5)}, 7.25)
	s.InDelta(19.75, total, 0.0001)
}

func (s *TreasureTestSuite) TestUnpricedItemsCountAsZero() {
	valuation := engine.ValueTreasure([]*float64{price(4), nil, price(0), nil}, 1)
	s.InDelta(5.0, valuation.Total, 0.0001)
	s.Equal(2, valuation.Unpriced)
}

func (s *TreasureTestSuite) TestEmpty() {
	s.Zero(engine.ComputeTreasureValue(nil, 0))
	s.InDelta(3.0, engine.ComputeTreasureValue(nil, 3), 0.0001)
}
