package entities

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
)

// EncounterStatus is the lifecycle state of an encounter. The codes are
// persisted and sent over the wire, so the values must not change.
type EncounterStatus int

const (
	StatusDraft EncounterStatus = iota
	StatusPrepared
	StatusArchived
	StatusSuccess
	StatusFailure
)

var statusNames = map[EncounterStatus]string{
	StatusDraft:    "draft",
	StatusPrepared: "prepared",
	StatusArchived: "archived",
	StatusSuccess:  "success",
	StatusFailure:  "failure",
}

func (s EncounterStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Valid reports whether s is a known status.
func (s EncounterStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// CanTransitionTo reports whether an encounter in s may move to next.
// Draft only leaves through promotion to Prepared, and Prepared resolves
// into one of the final states.
func (s EncounterStatus) CanTransitionTo(next EncounterStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusDraft:
		return next == StatusPrepared
	case StatusPrepared:
		return next == StatusSuccess || next == StatusFailure || next == StatusArchived
	default:
		return false
	}
}

// Encounter is a game-master authored unit of challenge.
type Encounter struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	SessionID   string          `json:"session_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Status      EncounterStatus `json:"status"`
	Kind        EncounterKind   `json:"-"`

	PartyLevel int `json:"party_level"`
	PartySize  int `json:"party_size"`

	TreasureItems    []string `json:"treasure_items,omitempty"`
	TreasureCurrency Currency `json:"treasure_currency"`
	ExtraExperience  int      `json:"extra_experience"`

	TotalExperience Derived[int]     `json:"total_experience"`
	TotalItemsValue Derived[float64] `json:"total_items_value"`
	// Difficulty is set for combat encounters whose XP could be computed.
	Difficulty *engine.Difficulty `json:"difficulty,omitempty"`
	// UnresolvedReferences lists library ids that had no record at the last
	// recalculation. They counted as zero XP or zero price.
	UnresolvedReferences []string `json:"unresolved_references,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

type encounterAlias Encounter

// MarshalJSON implements json.Marshaler.
func (e Encounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		encounterAlias
		Kind KindEnvelope `json:"kind"`
	}{encounterAlias(e), KindEnvelope{Value: e.Kind}})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Encounter) UnmarshalJSON(data []byte) error {
	aux := struct {
		*encounterAlias
		Kind KindEnvelope `json:"kind"`
	}{encounterAlias: (*encounterAlias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.Kind = aux.Kind.Value
	if e.Kind == nil {
		e.Kind = UnknownKind{}
	}
	return nil
}

// IsDraft reports whether the encounter lives in its owner's draft slot.
func (e *Encounter) IsDraft() bool {
	return e.Status == StatusDraft
}

// Combat returns the combat roster if the encounter is a fight.
func (e *Encounter) Combat() (CombatKind, bool) {
	c, ok := e.Kind.(CombatKind)
	return c, ok
}

// TotalTreasureValue returns items plus currency in gold.
func (e *Encounter) TotalTreasureValue() float64 {
	return e.TotalItemsValue.Value() + e.TreasureCurrency.GoldValue()
}

// Clone returns a deep copy.
func (e *Encounter) Clone() *Encounter {
	if e == nil {
		return nil
	}
	c := *e
	c.TreasureItems = append([]string(nil), e.TreasureItems...)
	c.UnresolvedReferences = append([]string(nil), e.UnresolvedReferences...)
	if e.Difficulty != nil {
		d := *e.Difficulty
		c.Difficulty = &d
	}
	c.TotalExperience = e.TotalExperience.ClearOverride().WithOverride(e.TotalExperience.Override)
	c.TotalItemsValue = e.TotalItemsValue.ClearOverride().WithOverride(e.TotalItemsValue.Override)
	switch k := e.Kind.(type) {
	case CombatKind:
		c.Kind = CombatKind{
			Enemies: append([]EncounterEnemy(nil), k.Enemies...),
			Hazards: append([]string(nil), k.Hazards...),
		}
	case SubsystemKind:
		c.Kind = SubsystemKind{
			Subsystem: k.Subsystem,
			Checks:    append([]SkillCheck(nil), k.Checks...),
		}
	}
	return &c
}

// EncounterFilter narrows encounter listings. Zero values match everything.
type EncounterFilter struct {
	// Name matches a case-insensitive substring.
	Name      string
	Status    *EncounterStatus
	SessionID string
	Kind      KindType
}
