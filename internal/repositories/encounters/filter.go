package encounters

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

func errInvalid(msg string) error {
	return errors.InvalidArgument(msg)
}

// matches reports whether e passes every set field of f.
func matches(e *entities.Encounter, f entities.EncounterFilter) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Status != nil && e.Status != *f.Status {
		return false
	}
	if f.SessionID != "" && e.SessionID != f.SessionID {
		return false
	}
	if f.Kind != "" && entities.KindOf(e.Kind) != f.Kind {
		return false
	}
	return true
}

// sortEncounters orders by creation time, then id for a stable listing.
func sortEncounters(list []*entities.Encounter) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt < list[j].CreatedAt
		}
		return list[i].ID < list[j].ID
	})
}

// applyDerived copies recalculated fields onto e.
func applyDerived(e *entities.Encounter, input SaveDerivedInput) {
	e.TotalExperience = input.TotalExperience
	e.TotalItemsValue = input.TotalItemsValue
	e.Difficulty = input.Difficulty
	e.UnresolvedReferences = append([]string(nil), input.UnresolvedReferences...)
	if input.UpdatedAt != 0 {
		e.UpdatedAt = input.UpdatedAt
	}
}
