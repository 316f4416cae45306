package engine

// EnemyInput is one creature of a combat roster.
type EnemyInput struct {
	Level      int
	Adjustment int
}

// HazardInput is one hazard of a combat roster.
type HazardInput struct {
	Level   int
	Complex bool
}

// EncounterXP is the detailed result of aggregating a roster.
type EncounterXP struct {
	// Raw is the unadjusted sum of creature and hazard awards.
	Raw int
	// Total is Raw normalized for party size.
	Total      int
	Difficulty Difficulty
	// Computable is false for empty rosters and missing party level or size.
	Computable bool
}

// CalculateEncounter aggregates a combat roster into an XP award and a
// difficulty for the given party.
func CalculateEncounter(enemies []EnemyInput, hazards []HazardInput, partyLevel, partySize int) EncounterXP {
	if (len(enemies) == 0 && len(hazards) == 0) || partyLevel <= 0 || partySize <= 0 {
		return EncounterXP{Difficulty: DifficultyTrivial}
	}

	raw := 0
	for _, e := range enemies {
		raw += EnemyXP(e.Level + e.Adjustment - partyLevel)
	}
	for _, h := range hazards {
		raw += HazardXP(h.Level-partyLevel, h.Complex)
	}

	difficulty := ClassifyDifficulty(raw, partySize)
	// The Trivial delta applies too, so a weak roster against a large party
	// can award negative XP.
	return EncounterXP{
		Raw:        raw,
		Total:      raw - (partySize-ReferencePartySize)*PartySizeDelta(difficulty),
		Difficulty: difficulty,
		Computable: true,
	}
}

// ComputeEncounterXP returns the party-size adjusted XP for a roster. Zero
// means the encounter could not be computed when the roster is empty or the
// party level or size is missing.
func ComputeEncounterXP(enemies []EnemyInput, hazards []HazardInput, partyLevel, partySize int) int {
	return CalculateEncounter(enemies, hazards, partyLevel, partySize).Total
}
