// Package encounters persists encounters and each owner's draft slot.
package encounters

import (
	"context"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
)

// Repository stores encounters. Every owner has at most one draft, held in
// a dedicated slot rather than among the saved encounters. All slot writes
// are atomic: two concurrent writers never leave two drafts behind.
type Repository interface {
	// Create saves a new non-draft encounter.
	// Returns errors.AlreadyExists if the id is taken.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get returns a saved encounter.
	// Returns errors.NotFound if it does not exist.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a saved encounter, moving it between session indexes
	// when its session changes.
	// Returns errors.NotFound if it does not exist.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// SaveDerived writes only the derived XP and treasure fields.
	SaveDerived(ctx context.Context, input SaveDerivedInput) (*SaveDerivedOutput, error)

	// Delete removes a saved encounter.
	// Returns errors.NotFound if it does not exist.
	Delete(ctx context.Context, input DeleteInput) error

	// List returns an owner's saved encounters, oldest first.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListBySession returns the encounters linked to a session, oldest first.
	ListBySession(ctx context.Context, input ListBySessionInput) (*ListOutput, error)

	// DeleteBySession removes every encounter linked to a session.
	DeleteBySession(ctx context.Context, input DeleteBySessionInput) (*DeleteBySessionOutput, error)

	// GetDraft returns the owner's draft.
	// Returns errors.NotFound if the slot is empty.
	GetDraft(ctx context.Context, input GetDraftInput) (*GetDraftOutput, error)

	// GetOrCreateDraft returns the owner's draft, filling an empty slot with
	// input.Draft first.
	GetOrCreateDraft(ctx context.Context, input GetOrCreateDraftInput) (*GetOrCreateDraftOutput, error)

	// ReplaceDraft puts input.Draft in the slot, discarding any previous draft.
	ReplaceDraft(ctx context.Context, input ReplaceDraftInput) (*ReplaceDraftOutput, error)

	// UpdateDraft rewrites the draft only if the slot still holds a draft
	// with the same id.
	// Returns errors.NotFound if the slot is empty and
	// errors.FailedPrecondition if the draft was replaced meanwhile.
	UpdateDraft(ctx context.Context, input UpdateDraftInput) (*UpdateDraftOutput, error)

	// ClearDraft empties the slot. Clearing an empty slot is not an error.
	ClearDraft(ctx context.Context, input ClearDraftInput) error

	// PromoteDraft moves the draft out of the slot into the saved encounters
	// with status Prepared.
	// Returns errors.NotFound if the slot is empty and
	// errors.FailedPrecondition if ExpectedDraftID no longer matches.
	PromoteDraft(ctx context.Context, input PromoteDraftInput) (*PromoteDraftOutput, error)
}

// CreateInput defines the input for creating encounters
type CreateInput struct {
	Encounter *entities.Encounter
}

// CreateOutput defines the output for creating encounters
type CreateOutput struct {
	Encounter *entities.Encounter
}

// GetInput defines the input for getting an encounter
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an encounter
type GetOutput struct {
	Encounter *entities.Encounter
}

// UpdateInput defines the input for updating an encounter
type UpdateInput struct {
	Encounter *entities.Encounter
}

// UpdateOutput defines the output for updating an encounter
type UpdateOutput struct {
	Encounter *entities.Encounter
}

// SaveDerivedInput carries the recalculated fields of one encounter
type SaveDerivedInput struct {
	ID                   string
	TotalExperience      entities.Derived[int]
	TotalItemsValue      entities.Derived[float64]
	Difficulty           *engine.Difficulty
	UnresolvedReferences []string
	UpdatedAt            int64
}

// SaveDerivedOutput defines the output for saving derived fields
type SaveDerivedOutput struct {
	Encounter *entities.Encounter
}

// DeleteInput defines the input for deleting an encounter
type DeleteInput struct {
	ID string
}

// ListInput defines the input for listing an owner's encounters
type ListInput struct {
	OwnerID string
	Filter  entities.EncounterFilter
}

// ListOutput defines the output for listing encounters
type ListOutput struct {
	Encounters []*entities.Encounter
}

// ListBySessionInput defines the input for listing a session's encounters
type ListBySessionInput struct {
	SessionID string
}

// DeleteBySessionInput defines the input for deleting a session's encounters
type DeleteBySessionInput struct {
	SessionID string
}

// DeleteBySessionOutput lists the removed encounter ids
type DeleteBySessionOutput struct {
	DeletedIDs []string
}

// GetDraftInput defines the input for reading the draft slot
type GetDraftInput struct {
	OwnerID string
}

// GetDraftOutput defines the output for reading the draft slot
type GetDraftOutput struct {
	Draft *entities.Encounter
}

// GetOrCreateDraftInput defines the input for reading or filling the slot
type GetOrCreateDraftInput struct {
	OwnerID string
	// Draft is stored only when the slot is empty.
	Draft *entities.Encounter
}

// GetOrCreateDraftOutput defines the output for reading or filling the slot
type GetOrCreateDraftOutput struct {
	Draft   *entities.Encounter
	Created bool
}

// ReplaceDraftInput defines the input for replacing the draft
type ReplaceDraftInput struct {
	Draft *entities.Encounter
}

// ReplaceDraftOutput defines the output for replacing the draft
type ReplaceDraftOutput struct {
	Draft *entities.Encounter
	// Replaced is the discarded draft, nil if the slot was empty.
	Replaced *entities.Encounter
}

// UpdateDraftInput defines the input for rewriting the draft
type UpdateDraftInput struct {
	Draft *entities.Encounter
}

// UpdateDraftOutput defines the output for rewriting the draft
type UpdateDraftOutput struct {
	Draft *entities.Encounter
}

// ClearDraftInput defines the input for emptying the slot
type ClearDraftInput struct {
	OwnerID string
}

// PromoteDraftInput defines the input for promoting the draft
type PromoteDraftInput struct {
	OwnerID string
	// ExpectedDraftID guards against promoting a draft that replaced the one
	// the caller saw. Empty promotes whatever is in the slot.
	ExpectedDraftID string
	UpdatedAt       int64
}

// PromoteDraftOutput defines the output for promoting the draft
type PromoteDraftOutput struct {
	Encounter *entities.Encounter
}

const (
	errEncounterNil   = "encounter cannot be nil"
	errIDEmpty        = "encounter ID cannot be empty"
	errOwnerIDEmpty   = "owner ID cannot be empty"
	errSessionIDEmpty = "session ID cannot be empty"
	errDraftStatus    = "saved encounters cannot have draft status"
	errNotDraft       = "draft slot only holds draft encounters"
	errDraftReplaced  = "draft was replaced by a newer draft"
)

func validateSaved(e *entities.Encounter) error {
	switch {
	case e == nil:
		return errInvalid(errEncounterNil)
	case e.ID == "":
		return errInvalid(errIDEmpty)
	case e.OwnerID == "":
		return errInvalid(errOwnerIDEmpty)
	case e.IsDraft():
		return errInvalid(errDraftStatus)
	}
	return nil
}

func validateDraft(e *entities.Encounter) error {
	switch {
	case e == nil:
		return errInvalid(errEncounterNil)
	case e.ID == "":
		return errInvalid(errIDEmpty)
	case e.OwnerID == "":
		return errInvalid(errOwnerIDEmpty)
	case !e.IsDraft():
		return errInvalid(errNotDraft)
	}
	return nil
}
