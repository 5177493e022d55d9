package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

type recommendationCacheKeyInput struct {
	UserID uuid.UUID `json:"user_id"`
	Limit  int       `json:"limit"`
}

type searchCacheKeyInput struct {
	Query    string `json:"query"`
	UserID   string `json:"user_id"`
	Location string `json:"location"`
	JobType  string `json:"job_type"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func RecommendationCacheKey(userID uuid.UUID, limit int) string {
	b, _ := json.Marshal(recommendationCacheKeyInput{UserID: userID, Limit: limit})
	sum := sha256.Sum256(b)
	return "jobs:recommend:" + hex.EncodeToString(sum[:])
}

func SearchCacheKey(params SearchParams) string {
	in := searchCacheKeyInput{
		Query:    normalizeSearchValue(params.Query),
		Location: normalizeSearchValue(params.Location),
		JobType:  normalizeSearchValue(params.JobType),
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	if params.UserID != nil {
		in.UserID = params.UserID.String()
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}

func SearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "jobs:search:") {
		return "jobs:lock:" + strings.TrimPrefix(searchKey, "jobs:search:")
	}
	return "jobs:lock:" + searchKey
}
