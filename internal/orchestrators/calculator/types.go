package calculator

import (
	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
)

// Reference prefixes used in unresolved reference lists.
const (
	RefCreature = "creature"
	RefHazard   = "hazard"
	RefItem     = "item"
)

// CalculateXPInput is a combat roster by library id
type CalculateXPInput struct {
	Enemies    []entities.EncounterEnemy
	Hazards    []string
	PartyLevel int
	PartySize  int
}

// CalculateXPOutput is the aggregated roster result
type CalculateXPOutput struct {
	Result engine.EncounterXP
	// Unresolved lists "creature:<id>" and "hazard:<id>" refs that counted as zero.
	Unresolved []string
}

// CalculateTreasureInput is a treasure bundle by library id
type CalculateTreasureInput struct {
	Items    []string
	Currency entities.Currency
}

// CalculateTreasureOutput values a treasure bundle in gold
type CalculateTreasureOutput struct {
	ItemsValue    float64
	CurrencyValue float64
	Total         float64
	// Unresolved lists "item:<id>" refs with no known price.
	Unresolved []string
}

// SeverityInput defines the request for severity ranges
type SeverityInput struct {
	PartySize int
	// Difficulty limits the output to one range when set.
	Difficulty *engine.Difficulty
}

// SeverityOutput lists the difficulty ranges for a party size
type SeverityOutput struct {
	Ranges []engine.SeverityRange
}

// ExpectedTreasureInput defines the request for interpolated treasure
type ExpectedTreasureInput struct {
	TotalExperience int
	PartySize       int
}

// ExpectedTreasureOutput is the interpolated treasure position
type ExpectedTreasureOutput struct {
	Progress engine.LevelProgress
	// Curve is the reference table the progress was read from.
	Curve engine.ReferenceCurve
}
