package engine

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty classifies an encounter's XP against the party-size adjusted budgets.
// The codes are persisted, so the order must not change.
type Difficulty int

const (
	DifficultyTrivial Difficulty = iota
	DifficultyLow
	DifficultyModerate
	DifficultySevere
	DifficultyExtreme
)

// Difficulties lists every tier in increasing budget order.
var Difficulties = []Difficulty{
	DifficultyTrivial,
	DifficultyLow,
	DifficultyModerate,
	DifficultySevere,
	DifficultyExtreme,
}

// ReferencePartySize is the party size the base budgets are defined for.
const ReferencePartySize = 4

// Largest party accepted by the services. Budgets grow linearly with party
// size, so anything past these stays far from int overflow.
const (
	MaxPartySize  = 1000
	MaxPartyLevel = 100
)

// Unbounded is the End of the last severity range.
const Unbounded = math.MaxInt

type budget struct {
	base           int
	perExtraPlayer int
}

var budgets = map[Difficulty]budget{
	DifficultyTrivial:  {base: 40, perExtraPlayer: 10},
	DifficultyLow:      {base: 60, perExtraPlayer: 20},
	DifficultyModerate: {base: 80, perExtraPlayer: 20},
	DifficultySevere:   {base: 120, perExtraPlayer: 30},
	DifficultyExtreme:  {base: 160, perExtraPlayer: 40},
}

var difficultyNames = map[Difficulty]string{
	DifficultyTrivial:  "trivial",
	DifficultyLow:      "low",
	DifficultyModerate: "moderate",
	DifficultySevere:   "severe",
	DifficultyExtreme:  "extreme",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// Valid reports whether d is one of the five tiers.
func (d Difficulty) Valid() bool {
	_, ok := budgets[d]
	return ok
}

// ParseDifficulty accepts a tier name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range difficultyNames {
		if strings.EqualFold(name, s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// BaseBudget returns the XP budget of d for a party of four.
func BaseBudget(d Difficulty) int {
	return budgets[d].base
}

// PartySizeDelta returns how much the budget of d moves per player above or below four.
func PartySizeDelta(d Difficulty) int {
	return budgets[d].perExtraPlayer
}

// AdjustedBudget returns the XP budget of d for a party of partySize.
func AdjustedBudget(d Difficulty, partySize int) int {
	return BaseBudget(d) + (partySize-ReferencePartySize)*PartySizeDelta(d)
}

// SeverityRange is the half-open XP interval [Start, End) classified as Difficulty.
type SeverityRange struct {
	Difficulty Difficulty
	Start      int
	End        int
}

// Contains reports whether xp falls inside the range.
func (r SeverityRange) Contains(xp int) bool {
	return xp >= r.Start && (r.End == Unbounded || xp < r.End)
}

// IsUnbounded reports whether the range extends to infinity.
func (r SeverityRange) IsUnbounded() bool {
	return r.End == Unbounded
}

// SeverityBoundaries partitions [0, ∞) into one range per difficulty for a
// party of partySize. Each boundary is the midpoint of two consecutive
// adjusted budgets, rounded down. Boundaries are clamped so they never go
// below zero or below the previous boundary; for tiny or non-positive party
// sizes some ranges can be empty but the partition stays contiguous.
func SeverityBoundaries(partySize int) []SeverityRange {
	ranges := make([]SeverityRange, len(Difficulties))
	start := 0
	for i, d := range Difficulties {
		end := Unbounded
		if i+1 < len(Difficulties) {
			mid := floorDiv(AdjustedBudget(d, partySize)+AdjustedBudget(Difficulties[i+1], partySize), 2)
			end = max(mid, start)
		}
		ranges[i] = SeverityRange{Difficulty: d, Start: start, End: end}
		start = end
	}
	return ranges
}

// ClassifyDifficulty returns the tier whose range contains rawXP for a party
// of partySize. Negative XP is Trivial.
func ClassifyDifficulty(rawXP, partySize int) Difficulty {
	if rawXP < 0 {
		return DifficultyTrivial
	}
	for _, r := range SeverityBoundaries(partySize) {
		if r.Contains(rawXP) {
			return r.Difficulty
		}
	}
	return DifficultyExtreme
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
