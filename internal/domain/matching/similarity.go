package matching

import (
	"strings"

	"jobboard/internal/domain/job"
)

// Similarity weights. Job-to-job comparison for "similar jobs" listings;
// unrelated to the profile scorer's weights.
const (
	similarityWeightSkills     = 0.5
	similarityWeightExperience = 0.25
	similarityBonusJobType     = 0.15
	similarityBonusLocation    = 0.10
)

// Similarity computes how alike two postings are: skill overlap over the
// union of both skill sets, experience-level distance, plus flat bonuses
// for equal job type and matching location.
func Similarity(a, b job.Job) float64 {
	score := 0.0

	union := make(map[string]struct{}, len(a.RequiredSkills)+len(b.RequiredSkills))
	aSet := make(map[string]struct{}, len(a.RequiredSkills))
	for _, s := range a.RequiredSkills {
		k := normalizeSkill(s)
		if k == "" {
			continue
		}
		aSet[k] = struct{}{}
		union[k] = struct{}{}
	}
	shared := 0
	for _, s := range b.RequiredSkills {
		k := normalizeSkill(s)
		if k == "" {
			continue
		}
		if _, ok := union[k]; !ok {
			union[k] = struct{}{}
		}
		if _, ok := aSet[k]; ok {
			// count each shared skill once
			delete(aSet, k)
			shared++
		}
	}
	if len(union) > 0 {
		score += float64(shared) / float64(len(union)) * similarityWeightSkills
	}

	score += experienceScore(a.ExperienceLevel, b.ExperienceLevel) * similarityWeightExperience

	if a.JobType != "" && strings.EqualFold(strings.TrimSpace(a.JobType), strings.TrimSpace(b.JobType)) {
		score += similarityBonusJobType
	}
	if LocationsMatch(a.Location, b.Location) {
		score += similarityBonusLocation
	}

	return score
}
