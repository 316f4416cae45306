// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
)

// EncounterBuilder provides a fluent interface for building test Encounter instances
type EncounterBuilder struct {
	encounter *entities.Encounter
}

// NewEncounterBuilder creates a new builder for an empty prepared combat
// encounter with minimal defaults
func NewEncounterBuilder() *EncounterBuilder {
	now := time.Now().Unix()
	return &EncounterBuilder{
		encounter: &entities.Encounter{
			ID:         "encounter-test-123",
			OwnerID:    "owner-test-123",
			Name:       "Test Encounter",
			Status:     entities.StatusPrepared,
			Kind:       entities.CombatKind{},
			PartyLevel: 1,
			PartySize:  4,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}

// WithID sets the encounter ID
func (b *EncounterBuilder) WithID(id string) *EncounterBuilder {
	b.encounter.ID = id
	return b
}

// WithOwnerID sets the owner ID
func (b *EncounterBuilder) WithOwnerID(ownerID string) *EncounterBuilder {
	b.encounter.OwnerID = ownerID
	return b
}

// WithSessionID links the encounter to a session
func (b *EncounterBuilder) WithSessionID(sessionID string) *EncounterBuilder {
	b.encounter.SessionID = sessionID
	return b
}

// WithName sets the encounter name
func (b *EncounterBuilder) WithName(name string) *EncounterBuilder {
	b.encounter.Name = name
	return b
}

// WithStatus sets the status
func (b *EncounterBuilder) WithStatus(status entities.EncounterStatus) *EncounterBuilder {
	b.encounter.Status = status
	return b
}

// WithKind replaces the kind
func (b *EncounterBuilder) WithKind(kind entities.EncounterKind) *EncounterBuilder {
	b.encounter.Kind = kind
	return b
}

// WithParty sets party level and size
func (b *EncounterBuilder) WithParty(level, size int) *EncounterBuilder {
	b.encounter.PartyLevel = level
	b.encounter.PartySize = size
	return b
}

// WithEnemy adds an enemy, turning the encounter into a combat encounter if needed
func (b *EncounterBuilder) WithEnemy(id string, levelAdjustment int) *EncounterBuilder {
	combat, _ := b.encounter.Kind.(entities.CombatKind)
	combat.Enemies = append(combat.Enemies, entities.EncounterEnemy{ID: id, LevelAdjustment: levelAdjustment})
	b.encounter.Kind = combat
	return b
}

// WithHazard adds a hazard, turning the encounter into a combat encounter if needed
func (b *EncounterBuilder) WithHazard(id string) *EncounterBuilder {
	combat, _ := b.encounter.Kind.(entities.CombatKind)
	combat.Hazards = append(combat.Hazards, id)
	b.encounter.Kind = combat
	return b
}

// WithTreasureItems appends item ids
func (b *EncounterBuilder) WithTreasureItems(ids ...string) *EncounterBuilder {
	b.encounter.TreasureItems = append(b.encounter.TreasureItems, ids...)
	return b
}

// WithCurrency sets the treasure currency
func (b *EncounterBuilder) WithCurrency(c entities.Currency) *EncounterBuilder {
	b.encounter.TreasureCurrency = c
	return b
}

// WithExtraExperience sets the flat XP bonus
func (b *EncounterBuilder) WithExtraExperience(xp int) *EncounterBuilder {
	b.encounter.ExtraExperience = xp
	return b
}

// WithCreatedAt sets both timestamps
func (b *EncounterBuilder) WithCreatedAt(ts int64) *EncounterBuilder {
	b.encounter.CreatedAt = ts
	b.encounter.UpdatedAt = ts
	return b
}

// Build returns the constructed encounter
func (b *EncounterBuilder) Build() *entities.Encounter {
	return b.encounter
}
