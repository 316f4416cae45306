package engine

// TreasureValuation is the value of a set of treasure.
type TreasureValuation struct {
	Total float64
	// Unpriced counts items without a known price. They contribute 0.
	Unpriced int
}

// ValueTreasure sums item prices and a flat currency amount. A nil price
// stands for an item whose price is unknown.
func ValueTreasure(prices []*float64, currency float64) TreasureValuation {
	v := TreasureValuation{Total: currency}
	for _, p := range prices {
		if p == nil {
			v.Unpriced++
			continue
		}
		v.Total += *p
	}
	return v
}

// ComputeTreasureValue returns the total monetary value of prices plus currency.
func ComputeTreasureValue(prices []*float64, currency float64) float64 {
	return ValueTreasure(prices, currency).Total
}
