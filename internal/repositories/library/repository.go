// Package library resolves creature levels, hazard data, item prices and the
// expected treasure table from the reference library.
package library

//go:generate mockgen -destination=mock/mock_lookup.go -package=librarymock github.com/KirkDiggler/rpg-gm-api/internal/repositories/library Lookup

import (
	"context"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
)

// Lookup resolves library ids. Ids without a record are left out of the
// returned maps; callers decide how to treat them.
type Lookup interface {
	CreatureLevels(ctx context.Context, ids []string) (map[string]int, error)
	Hazards(ctx context.Context, ids []string) (map[string]HazardInfo, error)
	// ItemPrices returns gold prices. Items with no price are left out.
	ItemPrices(ctx context.Context, ids []string) (map[string]float64, error)
	TreasureCurve(ctx context.Context) (engine.ReferenceCurve, error)
}

// HazardInfo is what the XP calculation needs from a hazard.
type HazardInfo struct {
	Level   int
	Complex bool
}

// Creature is a library creature.
type Creature struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Hazard is a library hazard.
type Hazard struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Level   int    `json:"level"`
	Complex bool   `json:"complex"`
}

// Item is a library item. Price is in gold and nil when the item has none.
type Item struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Level      int      `json:"level"`
	Price      *float64 `json:"price"`
	Consumable bool     `json:"consumable"`
}
