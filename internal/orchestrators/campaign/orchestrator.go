// Package campaign implements the campaign orchestrator: campaigns, their
// sessions, and the XP and treasure report across a campaign.
package campaign

//go:generate mockgen -destination=mock/mock_service.go -package=campaignmock github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/campaign Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/calculator"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/campaigns"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/encounters"
)

const (
	initialSessionName   = "Campaign start"
	initialEncounterName = "Starting rewards"
)

// Service defines the interface for campaign operations
type Service interface {
	CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*CreateCampaignOutput, error)
	GetCampaign(ctx context.Context, input *GetCampaignInput) (*GetCampaignOutput, error)
	ListCampaigns(ctx context.Context, input *ListCampaignsInput) (*ListCampaignsOutput, error)

	// DeleteCampaign removes the campaign, its sessions and their encounters.
	DeleteCampaign(ctx context.Context, input *DeleteCampaignInput) (*DeleteCampaignOutput, error)

	// CreateSession appends a session after the campaign's last one.
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// DeleteSession removes a session and its encounters.
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// GetStats totals XP and treasure over every session and compares the
	// treasure with the reference curve.
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}

// Config holds the dependencies for the campaign orchestrator
type Config struct {
	Campaigns        campaigns.Repository
	Encounters       encounters.Repository
	EncounterService encounter.Service
	Calculator       calculator.Service
	IDGenerator      idgen.Generator
	Clock            clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Campaigns == nil {
		vb.RequiredField("Campaigns")
	}
	if c.Encounters == nil {
		vb.RequiredField("Encounters")
	}
	if c.EncounterService == nil {
		vb.RequiredField("EncounterService")
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
	campaigns  campaigns.Repository
	encounters encounters.Repository
	encounter  encounter.Service
	calc       calculator.Service
	idGen      idgen.Generator
	clock      clock.Clock
}

// NewOrchestrator creates a new campaign orchestrator with the provided dependencies
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
		campaigns:  cfg.Campaigns,
		encounters: cfg.Encounters,
		encounter:  cfg.EncounterService,
		calc:       cfg.Calculator,
		idGen:      cfg.IDGenerator,
		clock:      clk,
	}, nil
}

func (o *orchestrator) CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*CreateCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.OwnerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateNonNegative("party_size", input.PartySize, vb)
	errors.ValidateMax("party_size", input.PartySize, engine.MaxPartySize, vb)
	if seed := input.Initialization; seed != nil {
		errors.ValidateNonNegative("initialization.experience", seed.Experience, vb)
		errors.ValidateNonNegative("initialization.gold", seed.Gold, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	partySize := input.PartySize
	if partySize == 0 {
		partySize = engine.ReferencePartySize
	}

	now := o.clock.Now().Unix()
	c := &entities.Campaign{
		ID:          o.idGen.Generate(),
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		PartySize:   partySize,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := o.campaigns.Create(ctx, campaigns.CreateInput{Campaign: c}); err != nil {
		return nil, errors.Wrap(err, "failed to create campaign")
	}

	out := &CreateCampaignOutput{Campaign: c}
	if input.Initialization != nil {
		session, e, err := o.initialize(ctx, c, input.Initialization)
		if err != nil {
			return nil, err
		}
		out.InitialSession = session
		out.InitialEncounter = e
	}

	slog.InfoContext(ctx, "Campaign created",
		"campaign_id", c.ID,
		"owner_id", c.OwnerID,
		"initialized", input.Initialization != nil,
	)

	return out, nil
}

// initialize creates session 0 holding the starting XP, gold and items.
func (o *orchestrator) initialize(
	ctx context.Context,
	c *entities.Campaign,
	seed *entities.CampaignInitialization,
) (*entities.Session, *entities.Encounter, error) {
	session := &entities.Session{
		ID:         o.idGen.Generate(),
		CampaignID: c.ID,
		OwnerID:    c.OwnerID,
		Name:       initialSessionName,
		Order:      0,
		CreatedAt:  c.CreatedAt,
	}
	if _, err := o.campaigns.CreateSession(ctx, campaigns.CreateSessionInput{Session: session}); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create initial session")
	}

	created, err := o.encounter.CreateEncounters(ctx, &encounter.CreateEncountersInput{
		OwnerID: c.OwnerID,
		Encounters: []*entities.Encounter{{
			SessionID:        session.ID,
			Name:             initialEncounterName,
			Status:           entities.StatusPrepared,
			Kind:             entities.RewardInitializationKind{},
			PartyLevel:       1,
			PartySize:        1,
			ExtraExperience:  seed.Experience,
			TreasureCurrency: entities.CurrencyFromGold(seed.Gold),
			TreasureItems:    seed.Items,
		}},
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create initial rewards")
	}

	return session, created.Encounters[0], nil
}

func (o *orchestrator) GetCampaign(ctx context.Context, input *GetCampaignInput) (*GetCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.OwnerID, input.CampaignID)
	if err != nil {
		return nil, err
	}

	sessions, err := o.campaigns.ListSessions(ctx, campaigns.ListSessionsInput{CampaignID: c.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return &GetCampaignOutput{Campaign: c, Sessions: sessions.Sessions}, nil
}

func (o *orchestrator) ListCampaigns(ctx context.Context, input *ListCampaignsInput) (*ListCampaignsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	out, err := o.campaigns.List(ctx, campaigns.ListInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return &ListCampaignsOutput{Campaigns: out.Campaigns}, nil
}

func (o *orchestrator) DeleteCampaign(ctx context.Context, input *DeleteCampaignInput) (*DeleteCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.load(ctx, input.OwnerID, input.CampaignID); err != nil {
		return nil, err
	}

	deleted, err := o.campaigns.Delete(ctx, campaigns.DeleteInput{ID: input.CampaignID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete campaign")
	}

	out := &DeleteCampaignOutput{DeletedSessions: len(deleted.DeletedSessionIDs)}
	for _, sessionID := range deleted.DeletedSessionIDs {
		n, err := o.deleteSessionEncounters(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		out.DeletedEncounters += n
	}

	slog.InfoContext(ctx, "Campaign deleted",
		"campaign_id", input.CampaignID,
		"sessions", out.DeletedSessions,
		"encounters", out.DeletedEncounters,
	)

	return out, nil
}

func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	c, err := o.load(ctx, input.OwnerID, input.CampaignID)
	if err != nil {
		return nil, err
	}

	existing, err := o.campaigns.ListSessions(ctx, campaigns.ListSessionsInput{CampaignID: c.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	// Session 0 is reserved for initialization.
	order := 1
	for _, s := range existing.Sessions {
		if s.Order >= order {
			order = s.Order + 1
		}
	}

	session := &entities.Session{
		ID:          o.idGen.Generate(),
		CampaignID:  c.ID,
		OwnerID:     c.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		Order:       order,
		CreatedAt:   o.clock.Now().Unix(),
	}
	if _, err := o.campaigns.CreateSession(ctx, campaigns.CreateSessionInput{Session: session}); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return &CreateSessionOutput{Session: session}, nil
}

func (o *orchestrator) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	c, err := o.load(ctx, input.OwnerID, input.CampaignID)
	if err != nil {
		return nil, err
	}

	session, err := o.campaigns.GetSession(ctx, campaigns.GetSessionInput{ID: input.SessionID})
	if err != nil {
		return nil, err
	}
	if session.Session.CampaignID != c.ID {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}

	deleted, err := o.deleteSessionEncounters(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if err := o.campaigns.DeleteSession(ctx, campaigns.DeleteSessionInput{ID: input.SessionID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete session")
	}

	return &DeleteSessionOutput{DeletedEncounters: deleted}, nil
}

func (o *orchestrator) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.OwnerID, input.CampaignID)
	if err != nil {
		return nil, err
	}

	sessions, err := o.campaigns.ListSessions(ctx, campaigns.ListSessionsInput{CampaignID: c.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	stats := &entities.CampaignStats{
		CampaignID:  c.ID,
		PartySize:   c.PartySize,
		NumSessions: len(sessions.Sessions),
		Encounters:  []entities.EncounterStats{},
	}

	for _, session := range sessions.Sessions {
		list, err := o.encounters.ListBySession(ctx, encounters.ListBySessionInput{SessionID: session.ID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list encounters of session %s", session.ID)
		}
		for _, e := range list.Encounters {
			stats.Encounters = append(stats.Encounters, accumulate(stats, session.ID, e))
		}
	}

	stats.TotalCombinedTreasureValue = stats.TotalTreasureItemsValue + stats.TotalTreasureCurrencyValue

	expected, err := o.calc.ExpectedTreasure(ctx, &calculator.ExpectedTreasureInput{
		TotalExperience: stats.TotalExperience,
		PartySize:       c.PartySize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to interpolate expected treasure")
	}

	progress := expected.Progress
	stats.Level = progress.Level
	stats.ExperienceThisLevel = progress.ExperienceThisLevel
	stats.ExpectedTreasureStartOfLevel = progress.ExpectedStart
	stats.ExpectedTreasureEndOfLevel = progress.ExpectedEnd
	stats.ExpectedTreasure = progress.Expected

	// Encounters award XP toward the level the party is playing through.
	for i := range stats.Encounters {
		row := &stats.Encounters[i]
		row.CalculatedExpectedTreasure = expected.Curve.ExpectedTreasureForExperience(progress.Level+1, row.TotalExperience)
	}

	return &GetStatsOutput{Stats: stats}, nil
}

// accumulate adds e to the campaign totals and returns its report row.
func accumulate(stats *entities.CampaignStats, sessionID string, e *entities.Encounter) entities.EncounterStats {
	kind := entities.KindOf(e.Kind)
	switch kind {
	case entities.KindAccomplishment:
		stats.NumAccomplishments++
	case entities.KindCombat:
		stats.NumCombatEncounters++
	case entities.KindSubsystem:
		stats.NumSubsystemEncounters++
	}
	stats.NumUnresolvedReferences += len(e.UnresolvedReferences)

	xp := e.TotalExperience.Value()
	items := e.TotalItemsValue.Value()
	currency := e.TreasureCurrency.GoldValue()

	stats.TotalExperience += xp
	stats.TotalTreasureItemsValue += items
	stats.TotalTreasureCurrencyValue += currency

	return entities.EncounterStats{
		SessionID:             sessionID,
		EncounterID:           e.ID,
		Kind:                  kind,
		TotalExperience:       xp,
		TotalItemsValue:       items,
		Currency:              currency,
		AccumulatedExperience: stats.TotalExperience,
		AccumulatedItemsValue: stats.TotalTreasureItemsValue,
		AccumulatedCurrency:   stats.TotalTreasureCurrencyValue,
	}
}

func (o *orchestrator) deleteSessionEncounters(ctx context.Context, sessionID string) (int, error) {
	out, err := o.encounters.DeleteBySession(ctx, encounters.DeleteBySessionInput{SessionID: sessionID})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete encounters of session %s", sessionID)
	}
	return len(out.DeletedIDs), nil
}

// load returns a campaign owned by ownerID. Campaigns of other owners are
// reported as not found.
func (o *orchestrator) load(ctx context.Context, ownerID, id string) (*entities.Campaign, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if id == "" {
		return nil, errors.InvalidArgument("campaign ID is required")
	}

	out, err := o.campaigns.Get(ctx, campaigns.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	if out.Campaign.OwnerID != ownerID {
		return nil, errors.NotFoundf("campaign %s not found", id)
	}

	return out.Campaign, nil
}
