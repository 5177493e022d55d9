package matching

import (
	"testing"

	"jobboard/internal/domain/job"
)

func TestScoreByRelevance_AllComponents(t *testing.T) {
	j := job.Job{
		Title:          "Senior React Developer",
		Description:    "We are hiring a react engineer for our web team.",
		RequiredSkills: []string{"React", "Redux", "CSS"},
	}

	res := ScoreByRelevance("react", j)

	if !almostEqual(res.MatchScore, 1.0) {
		t.Fatalf("MatchScore = %v, want 1.0", res.MatchScore)
	}
	want := []string{"Title matches search", "Description matches search", "Skills match search"}
	if len(res.MatchReasons) != len(want) {
		t.Fatalf("MatchReasons = %v, want %v", res.MatchReasons, want)
	}
	for i := range want {
		if res.MatchReasons[i] != want[i] {
			t.Errorf("MatchReasons[%d] = %q, want %q", i, res.MatchReasons[i], want[i])
		}
	}
	if len(res.SkillsMatched) != 1 || res.SkillsMatched[0] != "React" {
		t.Errorf("SkillsMatched = %v, want [React]", res.SkillsMatched)
	}
	if len(res.SkillsMissing) != 0 {
		t.Errorf("SkillsMissing must stay empty in relevance mode, got %v", res.SkillsMissing)
	}
}

func TestScoreByRelevance_TitleOnly(t *testing.T) {
	j := job.Job{
		Title:          "Data Engineer",
		Description:    "Build pipelines.",
		RequiredSkills: []string{"Spark"},
	}

	res := ScoreByRelevance("data", j)
	if !almostEqual(res.MatchScore, 0.4) {
		t.Fatalf("MatchScore = %v, want 0.4", res.MatchScore)
	}
}

func TestScoreByRelevance_NoMatch(t *testing.T) {
	j := job.Job{Title: "Accountant", Description: "Ledgers."}

	res := ScoreByRelevance("golang", j)
	if res.MatchScore != 0 {
		t.Fatalf("MatchScore = %v, want 0", res.MatchScore)
	}
	if len(res.MatchReasons) != 0 {
		t.Fatalf("expected no reasons, got %v", res.MatchReasons)
	}
}

func TestScoreByRelevance_CaseInsensitive(t *testing.T) {
	j := job.Job{Title: "Backend Engineer (GoLang)"}

	res := ScoreByRelevance("GOLANG", j)
	if !almostEqual(res.MatchScore, 0.4) {
		t.Fatalf("MatchScore = %v, want 0.4", res.MatchScore)
	}
}
