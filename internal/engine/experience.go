package engine

// xpByLevelDiff holds the award for level differences -4 through +4.
var xpByLevelDiff = [...]int{10, 15, 20, 30, 40, 60, 80, 120, 160}

const (
	minLevelDiff = -4
	maxLevelDiff = 4

	// SimpleHazardDivisor scales a simple hazard against a creature of the same level.
	SimpleHazardDivisor = 5

	// ExperiencePerLevel is the XP a character needs to gain one level.
	ExperiencePerLevel = 1000
)

// EnemyXP returns the experience a single creature is worth when its level
// differs from the party level by levelDiff. Values outside [-4, 4] saturate.
func EnemyXP(levelDiff int) int {
	switch {
	case levelDiff < minLevelDiff:
		levelDiff = minLevelDiff
	case levelDiff > maxLevelDiff:
		levelDiff = maxLevelDiff
	}
	return xpByLevelDiff[levelDiff-minLevelDiff]
}

// HazardXP returns the experience for a hazard. Simple hazards are worth a
// fifth of a creature of the same level, complex hazards the full amount.
func HazardXP(levelDiff int, complex bool) int {
	xp := EnemyXP(levelDiff)
	if complex {
		return xp
	}
	return xp / SimpleHazardDivisor
}

// AccomplishmentSize grades a narrative accomplishment.
type AccomplishmentSize int

const (
	AccomplishmentMinor AccomplishmentSize = iota
	AccomplishmentModerate
	AccomplishmentMajor
)

// AccomplishmentXP returns the experience for an accomplishment of the given size.
func AccomplishmentXP(size AccomplishmentSize) int {
	switch size {
	case AccomplishmentMinor:
		return 10
	case AccomplishmentModerate:
		return 30
	case AccomplishmentMajor:
		return 80
	default:
		return 0
	}
}

// ParseAccomplishmentSize maps "minor", "moderate" and "major" to a size.
func ParseAccomplishmentSize(s string) (AccomplishmentSize, bool) {
	switch s {
	case "minor":
		return AccomplishmentMinor, true
	case "moderate":
		return AccomplishmentModerate, true
	case "major":
		return AccomplishmentMajor, true
	default:
		return 0, false
	}
}
