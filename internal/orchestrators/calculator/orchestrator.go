// Package calculator resolves library references and runs the encounter
// economy engine on them.
package calculator

//go:generate mockgen -destination=mock/mock_service.go -package=calculatormock github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/calculator Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/metrics"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/library"
)

// Service defines the calculator operations
type Service interface {
	// CalculateXP resolves creature and hazard levels and aggregates the roster.
	// Ids without a library record count as zero and are reported.
	CalculateXP(ctx context.Context, input *CalculateXPInput) (*CalculateXPOutput, error)

	// CalculateTreasure prices items and adds the currency.
	CalculateTreasure(ctx context.Context, input *CalculateTreasureInput) (*CalculateTreasureOutput, error)

	// Severity returns the difficulty ranges for a party size, or just the
	// range of one difficulty.
	Severity(ctx context.Context, input *SeverityInput) (*SeverityOutput, error)

	// ExpectedTreasure interpolates the reference treasure curve at an XP total.
	ExpectedTreasure(ctx context.Context, input *ExpectedTreasureInput) (*ExpectedTreasureOutput, error)
}

// Config holds the dependencies for the calculator
type Config struct {
	Lookup library.Lookup
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Lookup == nil {
		vb.RequiredField("Lookup")
	}

	return vb.Build()
}

type orchestrator struct {
	lookup library.Lookup
}

// NewOrchestrator creates a new calculator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{lookup: cfg.Lookup}, nil
}

func (o *orchestrator) CalculateXP(ctx context.Context, input *CalculateXPInput) (*CalculateXPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PartyLevel > engine.MaxPartyLevel {
		return nil, errors.InvalidArgumentf("party level cannot exceed %d", engine.MaxPartyLevel)
	}
	if input.PartySize > engine.MaxPartySize {
		return nil, errors.InvalidArgumentf("party size cannot exceed %d", engine.MaxPartySize)
	}

	enemyIDs := make([]string, len(input.Enemies))
	for i, e := range input.Enemies {
		enemyIDs[i] = e.ID
	}

	levels, err := o.lookup.CreatureLevels(ctx, enemyIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve creature levels")
	}
	hazards, err := o.lookup.Hazards(ctx, input.Hazards)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve hazards")
	}

	var unresolved []string
	enemies := make([]engine.EnemyInput, 0, len(input.Enemies))
	for _, e := range input.Enemies {
		level, ok := levels[e.ID]
		if !ok {
			unresolved = appendRef(unresolved, RefCreature, e.ID)
			continue
		}
		enemies = append(enemies, engine.EnemyInput{Level: level, Adjustment: e.LevelAdjustment})
	}

	hazardInputs := make([]engine.HazardInput, 0, len(input.Hazards))
	for _, id := range input.Hazards {
		h, ok := hazards[id]
		if !ok {
			unresolved = appendRef(unresolved, RefHazard, id)
			continue
		}
		hazardInputs = append(hazardInputs, engine.HazardInput{Level: h.Level, Complex: h.Complex})
	}

	if len(unresolved) > 0 {
		slog.WarnContext(ctx, "Roster references missing from library",
			"unresolved", unresolved,
			"party_level", input.PartyLevel,
		)
	}

	return &CalculateXPOutput{
		Result:     engine.CalculateEncounter(enemies, hazardInputs, input.PartyLevel, input.PartySize),
		Unresolved: unresolved,
	}, nil
}

func (o *orchestrator) CalculateTreasure(ctx context.Context, input *CalculateTreasureInput) (*CalculateTreasureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	prices, err := o.lookup.ItemPrices(ctx, input.Items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve item prices")
	}

	var unresolved []string
	resolved := make([]*float64, len(input.Items))
	for i, id := range input.Items {
		price, ok := prices[id]
		if !ok {
			unresolved = appendRef(unresolved, RefItem, id)
			continue
		}
		resolved[i] = &price
	}

	if len(unresolved) > 0 {
		slog.WarnContext(ctx, "Treasure items without a library price", "unresolved", unresolved)
	}

	items := engine.ValueTreasure(resolved, 0)
	currency := input.Currency.GoldValue()
	return &CalculateTreasureOutput{
		ItemsValue:    items.Total,
		CurrencyValue: currency,
		Total:         engine.ComputeTreasureValue(resolved, currency),
		Unresolved:    unresolved,
	}, nil
}

func (o *orchestrator) Severity(_ context.Context, input *SeverityInput) (*SeverityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkPartySize(input.PartySize); err != nil {
		return nil, err
	}

	ranges := engine.SeverityBoundaries(input.PartySize)
	if d := input.Difficulty; d != nil {
		if !d.Valid() {
			return nil, errors.InvalidArgumentf("unknown difficulty %d", int(*d))
		}
		ranges = ranges[*d : *d+1]
	}

	return &SeverityOutput{Ranges: ranges}, nil
}

func (o *orchestrator) ExpectedTreasure(ctx context.Context, input *ExpectedTreasureInput) (*ExpectedTreasureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := checkPartySize(input.PartySize); err != nil {
		return nil, err
	}

	curve, err := o.lookup.TreasureCurve(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load treasure curve")
	}

	return &ExpectedTreasureOutput{
		Progress: engine.ComputeLevelProgress(input.TotalExperience, input.PartySize, curve),
		Curve:    curve,
	}, nil
}

func checkPartySize(size int) error {
	if size < 1 || size > engine.MaxPartySize {
		return errors.InvalidArgumentf("party size must be between 1 and %d", engine.MaxPartySize)
	}
	return nil
}

// appendRef records one missing reference and counts it.
func appendRef(refs []string, refType, id string) []string {
	metrics.UnresolvedReferences.WithLabelValues(refType).Inc()
	return append(refs, refType+":"+id)
}
