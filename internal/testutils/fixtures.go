package testutils

import (
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/testutils/builders"
)

// Library ids used by the fixtures. mocks.DefaultLibrary resolves them to
// the levels noted.
const (
	TestOwnerID   = "owner-test-001"
	TestSessionID = "session-test-001"

	GoblinWarriorID  = "goblin-warrior"  // level -1
	OrcBruteID       = "orc-brute"       // level 2
	OgreID           = "ogre"            // level 3
	PoisonDartID     = "poison-dart"     // level 1 simple
	CollapsingRoofID = "collapsing-roof" // level 4 complex
	LongswordID      = "longsword"       // 1 gp
	HealingPotionID  = "healing-potion"  // 4 gp
	UnpricedRelicID  = "unpriced-relic"
)

// CreateTestCombatEncounter returns a prepared level 1 combat encounter for a
// party of four: two goblins, one orc and a simple hazard.
func CreateTestCombatEncounter(ownerID string) *entities.Encounter {
	return builders.NewEncounterBuilder().
		WithOwnerID(ownerID).
		WithName("Goblin ambush").
		WithStatus(entities.StatusPrepared).
		WithParty(1, 4).
		WithEnemy(GoblinWarriorID, 0).
		WithEnemy(GoblinWarriorID, 0).
		WithEnemy(OrcBruteID, 0).
		WithHazard(PoisonDartID).
		WithTreasureItems(LongswordID, HealingPotionID).
		WithCurrency(entities.CurrencyFromGold(10)).
		Build()
}

// CreateTestAccomplishment returns a prepared accomplishment worth xp.
func CreateTestAccomplishment(ownerID, sessionID string, xp int) *entities.Encounter {
	return builders.NewEncounterBuilder().
		WithID("accomplishment-test-001").
		WithOwnerID(ownerID).
		WithSessionID(sessionID).
		WithName("Rescued the mayor").
		WithStatus(entities.StatusSuccess).
		WithKind(entities.AccomplishmentKind{}).
		WithExtraExperience(xp).
		Build()
}

// CreateTestDraft returns an empty combat draft.
func CreateTestDraft(ownerID string) *entities.Encounter {
	return builders.NewEncounterBuilder().
		WithID("draft-test-001").
		WithOwnerID(ownerID).
		WithStatus(entities.StatusDraft).
		WithParty(1, 4).
		Build()
}
