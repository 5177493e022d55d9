package matching

import (
	"testing"

	"jobboard/internal/domain/job"
)

func TestSimilarity_IdenticalJobs(t *testing.T) {
	j := job.Job{
		RequiredSkills:  []string{"Go", "PostgreSQL"},
		ExperienceLevel: "senior",
		JobType:         "full-time",
		Location:        "Jakarta",
	}

	if got := Similarity(j, j); !almostEqual(got, 1.0) {
		t.Fatalf("Similarity = %v, want 1.0", got)
	}
}

func TestSimilarity_PartialSkillOverlap(t *testing.T) {
	a := job.Job{
		RequiredSkills:  []string{"Go", "PostgreSQL", "Redis"},
		ExperienceLevel: "mid",
	}
	b := job.Job{
		RequiredSkills:  []string{"Go", "Kafka"},
		ExperienceLevel: "mid",
	}

	// union {go, postgresql, redis, kafka}, shared {go}: 1/4
	want := 0.25*similarityWeightSkills + 1.0*similarityWeightExperience
	if got := Similarity(a, b); !almostEqual(got, want) {
		t.Fatalf("Similarity = %v, want %v", got, want)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := job.Job{
		RequiredSkills:  []string{"React", "CSS"},
		ExperienceLevel: "junior",
		JobType:         "full-time",
		Location:        "Bandung",
	}
	b := job.Job{
		RequiredSkills:  []string{"React", "TypeScript", "HTML"},
		ExperienceLevel: "senior",
		JobType:         "contract",
		Location:        "Bandung, Indonesia",
	}

	if Similarity(a, b) != Similarity(b, a) {
		t.Fatalf("Similarity not symmetric: %v vs %v", Similarity(a, b), Similarity(b, a))
	}
}

func TestSimilarity_NoSkillsEitherSide(t *testing.T) {
	a := job.Job{ExperienceLevel: "mid", JobType: "full-time", Location: "Remote"}
	b := job.Job{ExperienceLevel: "lead", JobType: "full-time", Location: "Remote"}

	// skills component absent entirely when neither job declares skills
	want := 0.4*similarityWeightExperience + similarityBonusJobType + similarityBonusLocation
	if got := Similarity(a, b); !almostEqual(got, want) {
		t.Fatalf("Similarity = %v, want %v", got, want)
	}
}

func TestSimilarity_EmptyJobTypeEarnsNoBonus(t *testing.T) {
	a := job.Job{ExperienceLevel: "mid"}
	b := job.Job{ExperienceLevel: "mid"}

	want := 1.0 * similarityWeightExperience
	if got := Similarity(a, b); !almostEqual(got, want) {
		t.Fatalf("Similarity = %v, want %v", got, want)
	}
}
