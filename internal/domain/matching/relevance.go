package matching

import (
	"strings"

	"jobboard/internal/domain/job"
)

// ScoreByRelevance ranks a job against a free-text query for callers
// with no profile. The three components are disjoint booleans summing
// to at most 1.0, so no clamping is needed. Skills containing the query
// populate SkillsMatched; SkillsMissing stays empty in this mode.
func ScoreByRelevance(query string, j job.Job) MatchResult {
	res := MatchResult{
		MatchReasons:  []string{},
		SkillsMatched: []string{},
		SkillsMissing: []string{},
	}

	q := strings.ToLower(strings.TrimSpace(query))
	score := 0.0

	if strings.Contains(strings.ToLower(j.Title), q) {
		score += 0.4
		res.MatchReasons = append(res.MatchReasons, "Title matches search")
	}
	if strings.Contains(strings.ToLower(j.Description), q) {
		score += 0.3
		res.MatchReasons = append(res.MatchReasons, "Description matches search")
	}

	for _, s := range j.RequiredSkills {
		if strings.Contains(strings.ToLower(s), q) {
			res.SkillsMatched = append(res.SkillsMatched, s)
		}
	}
	if len(res.SkillsMatched) > 0 {
		score += 0.3
		res.MatchReasons = append(res.MatchReasons, "Skills match search")
	}

	res.MatchScore = score
	return res
}
