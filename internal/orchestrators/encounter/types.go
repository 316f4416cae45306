package encounter

import (
	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
)

// Patch carries a partial edit. Nil fields are left unchanged.
type Patch struct {
	Name             *string
	Description      *string
	SessionID        *string
	Status           *entities.EncounterStatus
	Kind             entities.EncounterKind
	PartyLevel       *int
	PartySize        *int
	TreasureItems    *[]string
	TreasureCurrency *entities.Currency
	ExtraExperience  *int

	// Overrides pin a derived value. Clear* drops a pinned value so the
	// computed one shows again.
	TotalExperienceOverride      *int
	ClearTotalExperienceOverride bool
	TotalItemsValueOverride      *float64
	ClearTotalItemsValueOverride bool
}

// CreateEncountersInput defines the request for a batch insert
type CreateEncountersInput struct {
	OwnerID    string
	Encounters []*entities.Encounter
}

// CreateEncountersOutput defines the response for a batch insert
type CreateEncountersOutput struct {
	Encounters []*entities.Encounter
}

// GetEncounterInput defines the request for getting an encounter
type GetEncounterInput struct {
	OwnerID string
	ID      string
}

// GetEncounterOutput defines the response for getting an encounter
type GetEncounterOutput struct {
	Encounter *entities.Encounter
}

// ListEncountersInput defines the request for listing encounters
type ListEncountersInput struct {
	OwnerID string
	Filter  entities.EncounterFilter
}

// ListEncountersOutput defines the response for listing encounters
type ListEncountersOutput struct {
	Encounters []*entities.Encounter
}

// UpdateEncounterInput defines the request for editing an encounter
type UpdateEncounterInput struct {
	OwnerID string
	ID      string
	Patch   Patch
}

// UpdateEncounterOutput defines the response for editing an encounter
type UpdateEncounterOutput struct {
	Encounter *entities.Encounter
}

// RecalculateInput defines the request for refreshing derived values
type RecalculateInput struct {
	OwnerID string
	ID      string
}

// RecalculateOutput defines the response for refreshing derived values
type RecalculateOutput struct {
	Encounter *entities.Encounter
}

// DeleteEncounterInput defines the request for deleting an encounter
type DeleteEncounterInput struct {
	OwnerID string
	ID      string
}

// DeleteEncounterOutput defines the response for deleting an encounter
type DeleteEncounterOutput struct{}

// UnlinkSessionInput defines the request for detaching an encounter from its session
type UnlinkSessionInput struct {
	OwnerID string
	ID      string
}

// UnlinkSessionOutput defines the response for detaching an encounter
type UnlinkSessionOutput struct {
	Encounter *entities.Encounter
}

// GetDraftInput defines the request for the owner's draft
type GetDraftInput struct {
	OwnerID string
}

// GetDraftOutput defines the response for the owner's draft
type GetDraftOutput struct {
	Draft *entities.Encounter
	// Created is true when the slot was empty and a fresh draft was made.
	Created bool
}

// ReplaceDraftInput defines the request for starting over with a new draft
type ReplaceDraftInput struct {
	OwnerID string
	Draft   *entities.Encounter
}

// ReplaceDraftOutput defines the response for replacing the draft
type ReplaceDraftOutput struct {
	Draft *entities.Encounter
	// ReplacedID is the id of the discarded draft, empty if there was none.
	ReplacedID string
}

// UpdateDraftInput defines the request for editing the draft
type UpdateDraftInput struct {
	OwnerID string
	Patch   Patch
}

// UpdateDraftOutput defines the response for editing the draft
type UpdateDraftOutput struct {
	Draft *entities.Encounter
}

// ClearDraftInput defines the request for discarding the draft
type ClearDraftInput struct {
	OwnerID string
}

// ClearDraftOutput defines the response for discarding the draft
type ClearDraftOutput struct{}

// PromoteDraftInput defines the request for saving the draft
type PromoteDraftInput struct {
	OwnerID string
	// DraftID, when set, must match the draft in the slot.
	DraftID string
}

// PromoteDraftOutput defines the response for saving the draft
type PromoteDraftOutput struct {
	Encounter *entities.Encounter
}

// CreateAccomplishmentInput defines the request for a quick accomplishment
type CreateAccomplishmentInput struct {
	OwnerID     string
	SessionID   string
	Name        string
	Description string
	Size        engine.AccomplishmentSize
	// Experience replaces the award for Size when set.
	Experience *int
}

// CreateAccomplishmentOutput defines the response for a quick accomplishment
type CreateAccomplishmentOutput struct {
	Encounter *entities.Encounter
}
