package matching

import (
	"fmt"
	"math"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"
)

// Sub-score weights. They sum to 1.0; a skipped sub-score does not
// renormalize the rest, so profiles missing optional attributes top out
// below 1.0.
const (
	weightSkills     = 0.40
	weightExperience = 0.25
	weightSalary     = 0.20
	weightLocation   = 0.15
)

// Salary tolerance bands: 20% below the posted minimum, 30% above the
// posted maximum. Asking above band is tolerated more generously than a
// job paying below expectation.
const (
	salaryBelowTolerance = 0.2
	salaryAboveTolerance = 0.3
)

// MatchResult is the outcome of scoring one job for one candidate.
// Reasons are appended in sub-score evaluation order: skills,
// experience, salary, location.
type MatchResult struct {
	MatchScore    float64
	MatchReasons  []string
	SkillsMatched []string
	SkillsMissing []string
}

// ScoreJob computes the weighted relevance of a job for a candidate
// profile. Pure function; safe for concurrent use.
func ScoreJob(p profile.CandidateProfile, j job.Job) MatchResult {
	res := MatchResult{
		MatchReasons:  []string{},
		SkillsMatched: []string{},
		SkillsMissing: []string{},
	}
	score := 0.0

	if len(j.RequiredSkills) > 0 {
		for _, req := range j.RequiredSkills {
			matched := false
			for _, s := range p.Skills {
				if SkillsMatch(req, s) {
					matched = true
					break
				}
			}
			if matched {
				res.SkillsMatched = append(res.SkillsMatched, req)
			} else {
				res.SkillsMissing = append(res.SkillsMissing, req)
			}
		}

		ratio := float64(len(res.SkillsMatched)) / float64(len(j.RequiredSkills))
		score += ratio * weightSkills
		if ratio > 0.7 {
			res.MatchReasons = append(res.MatchReasons,
				fmt.Sprintf("Strong skills match (%d/%d skills)", len(res.SkillsMatched), len(j.RequiredSkills)))
		} else if ratio > 0.4 {
			res.MatchReasons = append(res.MatchReasons,
				fmt.Sprintf("Good skills match (%d/%d skills)", len(res.SkillsMatched), len(j.RequiredSkills)))
		}
	}

	exp := experienceScore(p.ExperienceBucket, j.ExperienceLevel)
	score += exp * weightExperience
	if exp > 0.8 {
		res.MatchReasons = append(res.MatchReasons, "Perfect experience level match")
	} else if exp > 0.5 {
		res.MatchReasons = append(res.MatchReasons, "Good experience level fit")
	}

	if p.ExpectedSalary != nil && j.SalaryMin != nil && j.SalaryMax != nil {
		sal := salaryScore(*p.ExpectedSalary, *j.SalaryMin, *j.SalaryMax)
		score += sal * weightSalary
		if sal > 0.8 {
			res.MatchReasons = append(res.MatchReasons, "Salary aligns with expectations")
		}
	}

	if len(p.PreferredLocations) > 0 {
		loc := 0.0
		for _, pref := range p.PreferredLocations {
			if LocationsMatch(pref, j.Location) {
				loc = 1.0
				break
			}
		}
		score += loc * weightLocation
		if loc > 0 {
			res.MatchReasons = append(res.MatchReasons, "Location matches preference")
		}
	}

	res.MatchScore = math.Min(1.0, score)
	return res
}

// salaryScore grades an expected salary against a posted band. Band
// boundaries are inclusive.
func salaryScore(expected, min, max float64) float64 {
	if expected >= min && expected <= max {
		return 1.0
	}
	if expected < min {
		return math.Max(0, 1-(min-expected)/(min*salaryBelowTolerance))
	}
	if max <= 0 {
		return 0
	}
	return math.Max(0, 1-(expected-max)/(max*salaryAboveTolerance))
}
