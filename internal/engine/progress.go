package engine

import "math"

// TreasureLevel is one row of the expected treasure reference table: the
// treasure a party of four earns while playing through Level, and the extra
// currency per player above four.
type TreasureLevel struct {
	Level                       int
	TotalValue                  float64
	CurrencyPerAdditionalPlayer float64
}

// ReferenceCurve is the per-level expected treasure table.
type ReferenceCurve []TreasureLevel

// LevelValue returns the expected treasure earned during level for a party
// of partySize, or 0 if the level is not in the curve.
func (c ReferenceCurve) LevelValue(level, partySize int) float64 {
	for _, row := range c {
		if row.Level == level {
			return row.TotalValue + float64(partySize-ReferencePartySize)*row.CurrencyPerAdditionalPlayer
		}
	}
	return 0
}

// ExpectedAt returns the cumulative expected treasure after completing levels
// 1 through level. Levels past the end of the curve add nothing.
func (c ReferenceCurve) ExpectedAt(level, partySize int) float64 {
	total := 0.0
	for _, row := range c {
		if row.Level >= 1 && row.Level <= level {
			total += row.TotalValue + float64(partySize-ReferencePartySize)*row.CurrencyPerAdditionalPlayer
		}
	}
	return total
}

// LevelProgress describes where a campaign's XP sits inside a level and
// the treasure a typical party would have at that point.
type LevelProgress struct {
	Level               int
	ExperienceThisLevel int
	Fraction            float64
	ExpectedStart       float64
	ExpectedEnd         float64
	// Expected is rounded to the nearest unit; the endpoints are not.
	Expected float64
}

// ComputeLevelProgress interpolates the expected treasure for totalXP.
// Negative totals are treated as zero.
func ComputeLevelProgress(totalXP, partySize int, curve ReferenceCurve) LevelProgress {
	if totalXP < 0 {
		totalXP = 0
	}
	level := totalXP / ExperiencePerLevel
	inLevel := totalXP % ExperiencePerLevel
	fraction := float64(inLevel) / ExperiencePerLevel

	start := curve.ExpectedAt(level, partySize)
	end := curve.ExpectedAt(level+1, partySize)
	return LevelProgress{
		Level:               level,
		ExperienceThisLevel: inLevel,
		Fraction:            fraction,
		ExpectedStart:       start,
		ExpectedEnd:         end,
		Expected:            math.Round(start + fraction*(end-start)),
	}
}

// InterpolateExpectedTreasure returns the treasure a typical party of
// partySize should hold after earning totalXP.
func InterpolateExpectedTreasure(totalXP, partySize int, curve ReferenceCurve) float64 {
	return ComputeLevelProgress(totalXP, partySize, curve).Expected
}

// ExpectedTreasureForExperience returns the share of level's reference
// treasure that xp represents, for a party of four.
func (c ReferenceCurve) ExpectedTreasureForExperience(level, xp int) float64 {
	return c.LevelValue(level, ReferencePartySize) * float64(xp) / ExperiencePerLevel
}
