package encounters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Values are cloned on the way in and out so callers never share state.
type InMemoryRepository struct {
	mu     sync.RWMutex
	store  map[string]*entities.Encounter
	drafts map[string]*entities.Encounter
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store:  make(map[string]*entities.Encounter),
		drafts: make(map[string]*entities.Encounter),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new encounter
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSaved(input.Encounter); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Encounter.ID]; exists {
		return nil, errors.AlreadyExistsf("encounter %s already exists", input.Encounter.ID)
	}
	r.store[input.Encounter.ID] = input.Encounter.Clone()

	return &CreateOutput{Encounter: input.Encounter}, nil
}

// Get retrieves an encounter by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("encounter %s not found", input.ID)
	}

	return &GetOutput{Encounter: e.Clone()}, nil
}

// Update replaces a stored encounter
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSaved(input.Encounter); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Encounter.ID]; !exists {
		return nil, errors.NotFoundf("encounter %s not found", input.Encounter.ID)
	}
	r.store[input.Encounter.ID] = input.Encounter.Clone()

	return &UpdateOutput{Encounter: input.Encounter}, nil
}

// SaveDerived writes the recalculated fields of a stored encounter
func (r *InMemoryRepository) SaveDerived(_ context.Context, input SaveDerivedInput) (*SaveDerivedOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("encounter %s not found", input.ID)
	}
	applyDerived(e, input)

	return &SaveDerivedOutput{Encounter: e.Clone()}, nil
}

// Delete removes an encounter
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) error {
	if input.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return errors.NotFoundf("encounter %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return nil
}

// List returns an owner's encounters matching the filter
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Encounter, 0)
	for _, e := range r.store {
		if e.OwnerID == input.OwnerID && matches(e, input.Filter) {
			out = append(out, e.Clone())
		}
	}
	sortEncounters(out)

	return &ListOutput{Encounters: out}, nil
}

// ListBySession returns a session's encounters
func (r *InMemoryRepository) ListBySession(_ context.Context, input ListBySessionInput) (*ListOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Encounter, 0)
	for _, e := range r.store {
		if e.SessionID == input.SessionID {
			out = append(out, e.Clone())
		}
	}
	sortEncounters(out)

	return &ListOutput{Encounters: out}, nil
}

// DeleteBySession removes a session's encounters
func (r *InMemoryRepository) DeleteBySession(_ context.Context, input DeleteBySessionInput) (*DeleteBySessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := make([]string, 0)
	for id, e := range r.store {
		if e.SessionID == input.SessionID {
			delete(r.store, id)
			deleted = append(deleted, id)
		}
	}

	return &DeleteBySessionOutput{DeletedIDs: deleted}, nil
}

// GetDraft returns the owner's draft
func (r *InMemoryRepository) GetDraft(_ context.Context, input GetDraftInput) (*GetDraftOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, exists := r.drafts[input.OwnerID]
	if !exists {
		return nil, errors.NotFoundf("no draft for owner %s", input.OwnerID)
	}

	return &GetDraftOutput{Draft: draft.Clone()}, nil
}

// GetOrCreateDraft returns the owner's draft, storing input.Draft if the slot is empty
func (r *InMemoryRepository) GetOrCreateDraft(_ context.Context, input GetOrCreateDraftInput) (*GetOrCreateDraftOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}
	if input.OwnerID != input.Draft.OwnerID {
		return nil, errors.InvalidArgument("draft belongs to a different owner")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, exists := r.drafts[input.OwnerID]; exists {
		return &GetOrCreateDraftOutput{Draft: current.Clone()}, nil
	}
	r.drafts[input.OwnerID] = input.Draft.Clone()

	return &GetOrCreateDraftOutput{Draft: input.Draft, Created: true}, nil
}

// ReplaceDraft stores input.Draft, discarding any previous draft
func (r *InMemoryRepository) ReplaceDraft(_ context.Context, input ReplaceDraftInput) (*ReplaceDraftOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := &ReplaceDraftOutput{Draft: input.Draft}
	if current, exists := r.drafts[input.Draft.OwnerID]; exists {
		out.Replaced = current
	}
	r.drafts[input.Draft.OwnerID] = input.Draft.Clone()

	return out, nil
}

// UpdateDraft rewrites the draft if it has not been replaced
func (r *InMemoryRepository) UpdateDraft(_ context.Context, input UpdateDraftInput) (*UpdateDraftOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.drafts[input.Draft.OwnerID]
	if !exists {
		return nil, errors.NotFoundf("no draft for owner %s", input.Draft.OwnerID)
	}
	if current.ID != input.Draft.ID {
		return nil, errors.FailedPrecondition(errDraftReplaced).WithMeta("current_draft_id", current.ID)
	}
	r.drafts[input.Draft.OwnerID] = input.Draft.Clone()

	return &UpdateDraftOutput{Draft: input.Draft}, nil
}

// ClearDraft empties the owner's draft slot
func (r *InMemoryRepository) ClearDraft(_ context.Context, input ClearDraftInput) error {
	if input.OwnerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, input.OwnerID)
	return nil
}

// PromoteDraft moves the draft into the saved encounters as Prepared
func (r *InMemoryRepository) PromoteDraft(_ context.Context, input PromoteDraftInput) (*PromoteDraftOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.drafts[input.OwnerID]
	if !exists {
		return nil, errors.NotFoundf("no draft for owner %s", input.OwnerID)
	}
	if input.ExpectedDraftID != "" && current.ID != input.ExpectedDraftID {
		return nil, errors.FailedPrecondition(errDraftReplaced).WithMeta("current_draft_id", current.ID)
	}
	if _, taken := r.store[current.ID]; taken {
		return nil, errors.AlreadyExistsf("encounter %s already exists", current.ID)
	}

	current.Status = entities.StatusPrepared
	if input.UpdatedAt != 0 {
		current.UpdatedAt = input.UpdatedAt
	}
	r.store[current.ID] = current
	delete(r.drafts, input.OwnerID)

	return &PromoteDraftOutput{Encounter: current.Clone()}, nil
}
