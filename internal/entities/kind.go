package entities

import (
	"encoding/json"
	"fmt"
)

// KindType is the wire discriminant of an EncounterKind.
type KindType string

const (
	KindUnknown              KindType = "unknown"
	KindAccomplishment       KindType = "accomplishment"
	KindRewardInitialization KindType = "rewardInitialization"
	KindCombat               KindType = "combat"
	KindSubsystem            KindType = "subsystem"
)

// EncounterKind is the closed set of encounter variants. Only the types in
// this package implement it.
type EncounterKind interface {
	KindType() KindType
	encounterKind()
}

// UnknownKind is an encounter whose variant has not been chosen yet.
type UnknownKind struct{}

// AccomplishmentKind is a narrative reward without a roster.
type AccomplishmentKind struct{}

// RewardInitializationKind seeds a campaign with starting XP and treasure.
type RewardInitializationKind struct{}

// CombatKind is a fight against creatures and hazards.
type CombatKind struct {
	Enemies []EncounterEnemy `json:"enemies"`
	// Hazards holds hazard ids from the library.
	Hazards []string `json:"hazards"`
}

// SubsystemKind is a skill-based subsystem such as a chase or an infiltration.
type SubsystemKind struct {
	Subsystem SubsystemType `json:"subsystemType"`
	Checks    []SkillCheck  `json:"subsystemChecks"`
}

// EncounterEnemy references a library creature with a signed level shift
// for elite or weak variants.
type EncounterEnemy struct {
	ID              string `json:"id"`
	LevelAdjustment int    `json:"level_adjustment"`
}

// SkillCheck is one check of a subsystem encounter.
type SkillCheck struct {
	Name          string   `json:"name"`
	Skills        []string `json:"skills,omitempty"`
	VictoryPoints int      `json:"victory_points"`
}

// SubsystemType names a subsystem.
type SubsystemType string

const (
	SubsystemChase        SubsystemType = "chase"
	SubsystemInfiltration SubsystemType = "infiltration"
	SubsystemInfluence    SubsystemType = "influence"
	SubsystemResearch     SubsystemType = "research"
	SubsystemReputation   SubsystemType = "reputation"
	SubsystemDuel         SubsystemType = "duel"
)

// Valid reports whether t is a known subsystem.
func (t SubsystemType) Valid() bool {
	switch t {
	case SubsystemChase, SubsystemInfiltration, SubsystemInfluence,
		SubsystemResearch, SubsystemReputation, SubsystemDuel:
		return true
	}
	return false
}

func (UnknownKind) KindType() KindType              { return KindUnknown }
func (AccomplishmentKind) KindType() KindType       { return KindAccomplishment }
func (RewardInitializationKind) KindType() KindType { return KindRewardInitialization }
func (CombatKind) KindType() KindType               { return KindCombat }
func (SubsystemKind) KindType() KindType            { return KindSubsystem }

func (UnknownKind) encounterKind()              {}
func (AccomplishmentKind) encounterKind()       {}
func (RewardInitializationKind) encounterKind() {}
func (CombatKind) encounterKind()               {}
func (SubsystemKind) encounterKind()            {}

// KindEnvelope carries an EncounterKind through JSON as a tagged object:
// {"type": "combat", "enemies": [...], "hazards": [...]}.
type KindEnvelope struct {
	Value EncounterKind
}

type kindTag struct {
	Type KindType `json:"type"`
}

// MarshalJSON implements json.Marshaler.
func (k KindEnvelope) MarshalJSON() ([]byte, error) {
	switch v := k.Value.(type) {
	case nil:
		return json.Marshal(kindTag{Type: KindUnknown})
	case UnknownKind, AccomplishmentKind, RewardInitializationKind:
		return json.Marshal(kindTag{Type: v.KindType()})
	case CombatKind:
		return json.Marshal(struct {
			kindTag
			CombatKind
		}{kindTag{Type: KindCombat}, v})
	case SubsystemKind:
		return json.Marshal(struct {
			kindTag
			SubsystemKind
		}{kindTag{Type: KindSubsystem}, v})
	default:
		return nil, fmt.Errorf("unsupported encounter kind %T", v)
	}
}

// UnmarshalJSON implements json.Unmarshaler. A missing type decodes as UnknownKind.
func (k *KindEnvelope) UnmarshalJSON(data []byte) error {
	var tag kindTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	switch tag.Type {
	case "", KindUnknown:
		k.Value = UnknownKind{}
	case KindAccomplishment:
		k.Value = AccomplishmentKind{}
	case KindRewardInitialization:
		k.Value = RewardInitializationKind{}
	case KindCombat:
		var v CombatKind
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		k.Value = v
	case KindSubsystem:
		var v SubsystemKind
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		k.Value = v
	default:
		return fmt.Errorf("unknown encounter kind %q", tag.Type)
	}
	return nil
}

// KindOf returns the discriminant of k, treating nil as unknown.
func KindOf(k EncounterKind) KindType {
	if k == nil {
		return KindUnknown
	}
	return k.KindType()
}
