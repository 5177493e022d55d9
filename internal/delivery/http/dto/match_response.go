package dto

import "jobboard/internal/usecase"

type MatchResultResponse struct {
	Job           JobResponse `json:"job"`
	MatchScore    float64     `json:"match_score"`
	MatchReasons  []string    `json:"match_reasons"`
	SkillsMatched []string    `json:"skills_matched"`
	SkillsMissing []string    `json:"skills_missing"`
}

type SimilarJobResponse struct {
	Job        JobResponse `json:"job"`
	Similarity float64     `json:"similarity"`
}

func NewMatchResultResponse(r usecase.RankedJob) MatchResultResponse {
	return MatchResultResponse{
		Job:           NewJobResponse(r.Job, r.Company.Name),
		MatchScore:    r.MatchScore,
		MatchReasons:  emptyIfNil(r.MatchReasons),
		SkillsMatched: emptyIfNil(r.SkillsMatched),
		SkillsMissing: emptyIfNil(r.SkillsMissing),
	}
}

func NewMatchResultResponses(items []usecase.RankedJob) []MatchResultResponse {
	out := make([]MatchResultResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewMatchResultResponse(it))
	}
	return out
}

func NewSimilarJobResponses(items []usecase.SimilarJob) []SimilarJobResponse {
	out := make([]SimilarJobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SimilarJobResponse{
			Job:        NewJobResponse(it.Job, ""),
			Similarity: it.Similarity,
		})
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
