package matching

import "strings"

// experienceRanks is the ordered seniority scale. Unrecognized levels
// rank as entry.
var experienceRanks = map[string]int{
	"entry":     1,
	"junior":    1,
	"mid":       2,
	"senior":    3,
	"lead":      4,
	"executive": 5,
	"director":  5,
}

func experienceRank(level string) int {
	if r, ok := experienceRanks[strings.ToLower(strings.TrimSpace(level))]; ok {
		return r
	}
	return 1
}

// experienceScore grades the distance between two seniority levels.
// Symmetric in its arguments.
func experienceScore(a, b string) float64 {
	diff := experienceRank(a) - experienceRank(b)
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.7
	case 2:
		return 0.4
	default:
		return 0.1
	}
}
