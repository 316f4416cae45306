// Package encounter implements the encounter orchestrator: encounter CRUD,
// the per-owner draft, and recalculation of derived XP and treasure.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/calculator"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/metrics"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/encounters"
)

// Default party used for fresh drafts.
const (
	DefaultPartyLevel = 1
	DefaultPartySize  = engine.ReferencePartySize
)

// Service defines the interface for encounter operations
type Service interface {
	// CreateEncounters validates and saves a batch. Nothing is saved if any
	// encounter is invalid.
	CreateEncounters(ctx context.Context, input *CreateEncountersInput) (*CreateEncountersOutput, error)
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)
	ListEncounters(ctx context.Context, input *ListEncountersInput) (*ListEncountersOutput, error)

	// UpdateEncounter applies a patch and recalculates. Status changes must
	// follow the lifecycle.
	UpdateEncounter(ctx context.Context, input *UpdateEncounterInput) (*UpdateEncounterOutput, error)

	// Recalculate refreshes derived values against the current library.
	Recalculate(ctx context.Context, input *RecalculateInput) (*RecalculateOutput, error)
	DeleteEncounter(ctx context.Context, input *DeleteEncounterInput) (*DeleteEncounterOutput, error)
	UnlinkSession(ctx context.Context, input *UnlinkSessionInput) (*UnlinkSessionOutput, error)

	// GetDraft returns the owner's draft, creating an empty one if needed.
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	ReplaceDraft(ctx context.Context, input *ReplaceDraftInput) (*ReplaceDraftOutput, error)
	UpdateDraft(ctx context.Context, input *UpdateDraftInput) (*UpdateDraftOutput, error)
	ClearDraft(ctx context.Context, input *ClearDraftInput) (*ClearDraftOutput, error)
	PromoteDraft(ctx context.Context, input *PromoteDraftInput) (*PromoteDraftOutput, error)

	// CreateAccomplishment records a narrative award as a successful encounter.
	CreateAccomplishment(ctx context.Context, input *CreateAccomplishmentInput) (*CreateAccomplishmentOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Repository  encounters.Repository
	Calculator  calculator.Service
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Calculator == nil {
		vb.RequiredField("Calculator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo  encounters.Repository
	calc  calculator.Service
	idGen idgen.Generator
	clock clock.Clock
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		repo:  cfg.Repository,
		calc:  cfg.Calculator,
		idGen: cfg.IDGenerator,
		clock: clk,
	}, nil
}

func (o *orchestrator) CreateEncounters(ctx context.Context, input *CreateEncountersInput) (*CreateEncountersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if len(input.Encounters) == 0 {
		return nil, errors.InvalidArgument("at least one encounter is required")
	}

	now := o.now()
	prepared := make([]*entities.Encounter, len(input.Encounters))
	for i, in := range input.Encounters {
		if in == nil {
			return nil, errors.InvalidArgumentf("encounter %d is required", i)
		}
		e := in.Clone()
		e.ID = o.idGen.Generate()
		e.OwnerID = input.OwnerID
		e.CreatedAt = now
		e.UpdatedAt = now
		if e.Kind == nil {
			e.Kind = entities.UnknownKind{}
		}
		// Drafts only live in the draft slot.
		if e.Status == entities.StatusDraft {
			e.Status = entities.StatusPrepared
		}
		if err := validateEncounter(e); err != nil {
			return nil, errors.Wrapf(err, "encounter %d", i).WithMeta("index", i)
		}
		prepared[i] = e
	}

	for _, e := range prepared {
		if err := o.recompute(ctx, e); err != nil {
			return nil, err
		}
	}

	created := make([]*entities.Encounter, 0, len(prepared))
	for _, e := range prepared {
		out, err := o.repo.Create(ctx, encounters.CreateInput{Encounter: e})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create encounter %s", e.ID)
		}
		created = append(created, out.Encounter)
	}

	slog.InfoContext(ctx, "Encounters created",
		"owner_id", input.OwnerID,
		"count", len(created),
	)

	return &CreateEncountersOutput{Encounters: created}, nil
}

func (o *orchestrator) GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	e, err := o.load(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetEncounterOutput{Encounter: e}, nil
}

func (o *orchestrator) ListEncounters(ctx context.Context, input *ListEncountersInput) (*ListEncountersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	out, err := o.repo.List(ctx, encounters.ListInput{OwnerID: input.OwnerID, Filter: input.Filter})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list encounters")
	}

	return &ListEncountersOutput{Encounters: out.Encounters}, nil
}

func (o *orchestrator) UpdateEncounter(ctx context.Context, input *UpdateEncounterInput) (*UpdateEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	e, err := o.load(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Patch.Status != nil && !e.Status.CanTransitionTo(*input.Patch.Status) {
		return nil, errors.FailedPreconditionf("cannot change status from %s to %s", e.Status, *input.Patch.Status).
			WithMeta("status", e.Status.String())
	}

	applyPatch(e, &input.Patch)
	if err := validateEncounter(e); err != nil {
		return nil, err
	}
	if err := o.recompute(ctx, e); err != nil {
		return nil, err
	}
	e.UpdatedAt = o.now()

	out, err := o.repo.Update(ctx, encounters.UpdateInput{Encounter: e})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update encounter")
	}

	return &UpdateEncounterOutput{Encounter: out.Encounter}, nil
}

func (o *orchestrator) Recalculate(ctx context.Context, input *RecalculateInput) (*RecalculateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	e, err := o.load(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}
	if err := o.recompute(ctx, e); err != nil {
		return nil, err
	}

	out, err := o.repo.SaveDerived(ctx, encounters.SaveDerivedInput{
		ID:                   e.ID,
		TotalExperience:      e.TotalExperience,
		TotalItemsValue:      e.TotalItemsValue,
		Difficulty:           e.Difficulty,
		UnresolvedReferences: e.UnresolvedReferences,
		UpdatedAt:            o.now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save derived values")
	}

	return &RecalculateOutput{Encounter: out.Encounter}, nil
}

func (o *orchestrator) DeleteEncounter(ctx context.Context, input *DeleteEncounterInput) (*DeleteEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.load(ctx, input.OwnerID, input.ID); err != nil {
		return nil, err
	}
	if err := o.repo.Delete(ctx, encounters.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete encounter")
	}

	slog.InfoContext(ctx, "Encounter deleted", "encounter_id", input.ID)
	return &DeleteEncounterOutput{}, nil
}

func (o *orchestrator) UnlinkSession(ctx context.Context, input *UnlinkSessionInput) (*UnlinkSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	e, err := o.load(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}
	if e.SessionID == "" {
		return &UnlinkSessionOutput{Encounter: e}, nil
	}

	e.SessionID = ""
	e.UpdatedAt = o.now()
	out, err := o.repo.Update(ctx, encounters.UpdateInput{Encounter: e})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unlink session")
	}

	return &UnlinkSessionOutput{Encounter: out.Encounter}, nil
}

func (o *orchestrator) GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	existing, err := o.repo.GetDraft(ctx, encounters.GetDraftInput{OwnerID: input.OwnerID})
	if err == nil {
		return &GetDraftOutput{Draft: existing.Draft}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to get draft")
	}

	fresh := o.newDraft(input.OwnerID)
	if err := o.recompute(ctx, fresh); err != nil {
		return nil, err
	}

	out, err := o.repo.GetOrCreateDraft(ctx, encounters.GetOrCreateDraftInput{
		OwnerID: input.OwnerID,
		Draft:   fresh,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	if out.Created {
		slog.InfoContext(ctx, "Draft created", "owner_id", input.OwnerID, "draft_id", out.Draft.ID)
	}
	return &GetDraftOutput{Draft: out.Draft, Created: out.Created}, nil
}

func (o *orchestrator) ReplaceDraft(ctx context.Context, input *ReplaceDraftInput) (*ReplaceDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	draft := o.newDraft(input.OwnerID)
	if input.Draft != nil {
		d := input.Draft.Clone()
		d.ID = draft.ID
		d.OwnerID = draft.OwnerID
		d.Status = entities.StatusDraft
		d.CreatedAt = draft.CreatedAt
		d.UpdatedAt = draft.UpdatedAt
		if d.Kind == nil {
			d.Kind = draft.Kind
		}
		if d.PartyLevel == 0 {
			d.PartyLevel = draft.PartyLevel
		}
		if d.PartySize == 0 {
			d.PartySize = draft.PartySize
		}
		draft = d
	}
	if err := validateEncounter(draft); err != nil {
		return nil, err
	}
	if err := o.recompute(ctx, draft); err != nil {
		return nil, err
	}

	out, err := o.repo.ReplaceDraft(ctx, encounters.ReplaceDraftInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace draft")
	}

	result := &ReplaceDraftOutput{Draft: out.Draft}
	if out.Replaced != nil {
		result.ReplacedID = out.Replaced.ID
		slog.InfoContext(ctx, "Draft replaced",
			"owner_id", input.OwnerID,
			"draft_id", out.Draft.ID,
			"replaced_id", out.Replaced.ID,
		)
	}

	return result, nil
}

func (o *orchestrator) UpdateDraft(ctx context.Context, input *UpdateDraftInput) (*UpdateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Patch.Status != nil && *input.Patch.Status != entities.StatusDraft {
		return nil, errors.InvalidArgument("a draft changes status only by promotion")
	}

	current, err := o.GetDraft(ctx, &GetDraftInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	draft := current.Draft
	applyPatch(draft, &input.Patch)
	if err := validateEncounter(draft); err != nil {
		return nil, err
	}
	if err := o.recompute(ctx, draft); err != nil {
		return nil, err
	}
	draft.UpdatedAt = o.now()

	out, err := o.repo.UpdateDraft(ctx, encounters.UpdateDraftInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update draft")
	}

	return &UpdateDraftOutput{Draft: out.Draft}, nil
}

func (o *orchestrator) ClearDraft(ctx context.Context, input *ClearDraftInput) (*ClearDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := o.repo.ClearDraft(ctx, encounters.ClearDraftInput{OwnerID: input.OwnerID}); err != nil {
		return nil, errors.Wrap(err, "failed to clear draft")
	}

	return &ClearDraftOutput{}, nil
}

func (o *orchestrator) PromoteDraft(ctx context.Context, input *PromoteDraftInput) (*PromoteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	current, err := o.repo.GetDraft(ctx, encounters.GetDraftInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draft")
	}
	if current.Draft.Name == "" {
		return nil, errors.FailedPrecondition("draft needs a name before it can be saved")
	}

	expected := input.DraftID
	if expected == "" {
		expected = current.Draft.ID
	}

	out, err := o.repo.PromoteDraft(ctx, encounters.PromoteDraftInput{
		OwnerID:         input.OwnerID,
		ExpectedDraftID: expected,
		UpdatedAt:       o.now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to promote draft")
	}

	slog.InfoContext(ctx, "Draft promoted",
		"owner_id", input.OwnerID,
		"encounter_id", out.Encounter.ID,
	)

	return &PromoteDraftOutput{Encounter: out.Encounter}, nil
}

func (o *orchestrator) CreateAccomplishment(ctx context.Context, input *CreateAccomplishmentInput) (*CreateAccomplishmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	xp := engine.AccomplishmentXP(input.Size)
	if input.Experience != nil {
		xp = *input.Experience
	}

	out, err := o.CreateEncounters(ctx, &CreateEncountersInput{
		OwnerID: input.OwnerID,
		Encounters: []*entities.Encounter{{
			SessionID:       input.SessionID,
			Name:            input.Name,
			Description:     input.Description,
			Status:          entities.StatusSuccess,
			Kind:            entities.AccomplishmentKind{},
			ExtraExperience: xp,
		}},
	})
	if err != nil {
		return nil, err
	}

	return &CreateAccomplishmentOutput{Encounter: out.Encounters[0]}, nil
}

// load returns an encounter owned by ownerID. Encounters of other owners
// are reported as not found.
func (o *orchestrator) load(ctx context.Context, ownerID, id string) (*entities.Encounter, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if id == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	out, err := o.repo.Get(ctx, encounters.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	if out.Encounter.OwnerID != ownerID {
		return nil, errors.NotFoundf("encounter %s not found", id)
	}

	return out.Encounter, nil
}

func (o *orchestrator) newDraft(ownerID string) *entities.Encounter {
	now := o.now()
	return &entities.Encounter{
		ID:         o.idGen.Generate(),
		OwnerID:    ownerID,
		Status:     entities.StatusDraft,
		Kind:       entities.CombatKind{},
		PartyLevel: DefaultPartyLevel,
		PartySize:  DefaultPartySize,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// recompute refreshes every derived field of e from its inputs. Pinned
// overrides are kept.
func (o *orchestrator) recompute(ctx context.Context, e *entities.Encounter) error {
	var unresolved []string
	xp := e.ExtraExperience
	e.Difficulty = nil

	if combat, ok := e.Combat(); ok {
		out, err := o.calc.CalculateXP(ctx, &calculator.CalculateXPInput{
			Enemies:    combat.Enemies,
			Hazards:    combat.Hazards,
			PartyLevel: e.PartyLevel,
			PartySize:  e.PartySize,
		})
		if err != nil {
			return errors.Wrap(err, "failed to calculate experience")
		}
		xp += out.Result.Total
		if out.Result.Computable {
			d := out.Result.Difficulty
			e.Difficulty = &d
		}
		unresolved = append(unresolved, out.Unresolved...)
	}

	itemsValue := 0.0
	if len(e.TreasureItems) > 0 {
		out, err := o.calc.CalculateTreasure(ctx, &calculator.CalculateTreasureInput{Items: e.TreasureItems})
		if err != nil {
			return errors.Wrap(err, "failed to value treasure")
		}
		itemsValue = out.ItemsValue
		unresolved = append(unresolved, out.Unresolved...)
	}

	e.TotalExperience = e.TotalExperience.WithComputed(xp)
	e.TotalItemsValue = e.TotalItemsValue.WithComputed(itemsValue)
	e.UnresolvedReferences = unresolved

	difficulty := "none"
	if e.Difficulty != nil {
		difficulty = e.Difficulty.String()
	}
	metrics.EncounterRecalculations.WithLabelValues(string(entities.KindOf(e.Kind)), difficulty).Inc()

	if len(unresolved) > 0 {
		slog.WarnContext(ctx, "Encounter has unresolved library references",
			"encounter_id", e.ID,
			"unresolved", unresolved,
		)
	}

	return nil
}

func (o *orchestrator) now() int64 {
	return o.clock.Now().Unix()
}
