package entities

import (
	"bytes"
	"encoding/json"
	"math"
)

// Currency is an amount of coins. The base unit is copper: one silver is ten
// copper and one gold is one hundred.
type Currency struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Copper int `json:"copper"`
}

// CurrencyFromGold converts a gold amount, possibly fractional, to coins.
func CurrencyFromGold(gold float64) Currency {
	return CurrencyFromBaseUnits(int(math.Round(gold * 100)))
}

// CurrencyFromBaseUnits splits copper into gold, silver and copper.
func CurrencyFromBaseUnits(copper int) Currency {
	return Currency{
		Gold:   copper / 100,
		Silver: (copper % 100) / 10,
		Copper: copper % 10,
	}
}

// BaseUnits returns the amount in copper.
func (c Currency) BaseUnits() int {
	return c.Gold*100 + c.Silver*10 + c.Copper
}

// GoldValue returns the amount in gold.
func (c Currency) GoldValue() float64 {
	return float64(c.BaseUnits()) / 100
}

// Add returns the sum of two amounts.
func (c Currency) Add(other Currency) Currency {
	return Currency{
		Gold:   c.Gold + other.Gold,
		Silver: c.Silver + other.Silver,
		Copper: c.Copper + other.Copper,
	}
}

// UnmarshalJSON accepts either a coin object or a bare number of gold.
func (c *Currency) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] != '{' && !bytes.Equal(trimmed, []byte("null")) {
		var gold float64
		if err := json.Unmarshal(trimmed, &gold); err != nil {
			return err
		}
		*c = CurrencyFromGold(gold)
		return nil
	}

	type coins Currency
	var v coins
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*c = Currency(v)
	return nil
}
