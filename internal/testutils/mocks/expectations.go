// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/library"
	librarymock "github.com/KirkDiggler/rpg-gm-api/internal/repositories/library/mock"
)

// Library is the reference data served by ExpectLibrary.
type Library struct {
	Creatures map[string]int
	Hazards   map[string]library.HazardInfo
	Prices    map[string]float64
	Curve     engine.ReferenceCurve
}

// DefaultLibrary resolves the ids used by the testutils fixtures.
func DefaultLibrary() Library {
	return Library{
		Creatures: map[string]int{
			"goblin-warrior": -1,
			"orc-brute":      2,
			"ogre":           3,
		},
		Hazards: map[string]library.HazardInfo{
			"poison-dart":     {Level: 1},
			"collapsing-roof": {Level: 4, Complex: true},
		},
		Prices: map[string]float64{
			"longsword":      1,
			"healing-potion": 4,
		},
		Curve: engine.ReferenceCurve{
			{Level: 1, TotalValue: 175, CurrencyPerAdditionalPlayer: 10},
			{Level: 2, TotalValue: 300, CurrencyPerAdditionalPlayer: 18},
			{Level: 3, TotalValue: 500, CurrencyPerAdditionalPlayer: 30},
		},
	}
}

// ExpectLibrary makes the mock answer any lookup from lib, leaving out ids
// lib does not know.
func ExpectLibrary(mockLookup *librarymock.MockLookup, lib Library) {
	mockLookup.EXPECT().
		CreatureLevels(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []string) (map[string]int, error) {
			return pick(lib.Creatures, ids), nil
		}).
		AnyTimes()

	mockLookup.EXPECT().
		Hazards(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []string) (map[string]library.HazardInfo, error) {
			return pick(lib.Hazards, ids), nil
		}).
		AnyTimes()

	mockLookup.EXPECT().
		ItemPrices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []string) (map[string]float64, error) {
			return pick(lib.Prices, ids), nil
		}).
		AnyTimes()

	mockLookup.EXPECT().
		TreasureCurve(gomock.Any()).
		Return(lib.Curve, nil).
		AnyTimes()
}

func pick[V any](all map[string]V, ids []string) map[string]V {
	out := make(map[string]V, len(ids))
	for _, id := range ids {
		if v, ok := all[id]; ok {
			out[id] = v
		}
	}
	return out
}
