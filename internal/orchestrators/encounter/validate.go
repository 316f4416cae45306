package encounter

import (
	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

func validateEncounter(e *entities.Encounter) error {
	vb := errors.NewValidationBuilder()

	if !e.IsDraft() && e.Name == "" {
		vb.RequiredField("name")
	}
	if !e.Status.Valid() {
		vb.Fieldf("status", "unknown status %d", int(e.Status))
	}

	switch k := e.Kind.(type) {
	case entities.CombatKind:
		if e.PartyLevel < 1 {
			vb.Field("party_level", "must be at least 1 for combat")
		}
		if e.PartySize < 1 {
			vb.Field("party_size", "must be at least 1 for combat")
		}
		for i, enemy := range k.Enemies {
			if enemy.ID == "" {
				vb.Fieldf("enemies", "enemy %d has no id", i)
			}
		}
	case entities.SubsystemKind:
		if k.Subsystem != "" && !k.Subsystem.Valid() {
			vb.Fieldf("subsystem_type", "unknown subsystem %q", k.Subsystem)
		}
	case entities.AccomplishmentKind, entities.RewardInitializationKind, entities.UnknownKind:
	default:
		vb.Field("kind", "unsupported encounter kind")
	}

	errors.ValidateNonNegative("party_level", e.PartyLevel, vb)
	errors.ValidateNonNegative("party_size", e.PartySize, vb)
	errors.ValidateMax("party_level", e.PartyLevel, engine.MaxPartyLevel, vb)
	errors.ValidateMax("party_size", e.PartySize, engine.MaxPartySize, vb)

	c := e.TreasureCurrency
	if c.Gold < 0 || c.Silver < 0 || c.Copper < 0 {
		vb.Field("treasure_currency", "cannot be negative")
	}

	return vb.Build()
}

func applyPatch(e *entities.Encounter, p *Patch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.SessionID != nil {
		e.SessionID = *p.SessionID
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Kind != nil {
		e.Kind = p.Kind
	}
	if p.PartyLevel != nil {
		e.PartyLevel = *p.PartyLevel
	}
	if p.PartySize != nil {
		e.PartySize = *p.PartySize
	}
	if p.TreasureItems != nil {
		e.TreasureItems = append([]string(nil), (*p.TreasureItems)...)
	}
	if p.TreasureCurrency != nil {
		e.TreasureCurrency = *p.TreasureCurrency
	}
	if p.ExtraExperience != nil {
		e.ExtraExperience = *p.ExtraExperience
	}

	if p.ClearTotalExperienceOverride {
		e.TotalExperience = e.TotalExperience.ClearOverride()
	}
	if p.TotalExperienceOverride != nil {
		e.TotalExperience = e.TotalExperience.WithOverride(p.TotalExperienceOverride)
	}
	if p.ClearTotalItemsValueOverride {
		e.TotalItemsValue = e.TotalItemsValue.ClearOverride()
	}
	if p.TotalItemsValueOverride != nil {
		e.TotalItemsValue = e.TotalItemsValue.WithOverride(p.TotalItemsValueOverride)
	}
}
