package dto

import (
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	JobID           uuid.UUID `json:"job_id"`
	Title           string    `json:"title"`
	CompanyName     string    `json:"company_name,omitempty"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	RequiredSkills  []string  `json:"required_skills"`
	SalaryMin       *float64  `json:"salary_min,omitempty"`
	SalaryMax       *float64  `json:"salary_max,omitempty"`
	PostedAt        string    `json:"posted_at,omitempty"`
}

func NewJobResponse(j job.Job, companyName string) JobResponse {
	posted := ""
	if j.PostedAt != nil && !j.PostedAt.IsZero() {
		posted = j.PostedAt.UTC().Format(time.RFC3339)
	}
	skills := j.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return JobResponse{
		JobID:           j.ID,
		Title:           j.Title,
		CompanyName:     companyName,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		RequiredSkills:  skills,
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		PostedAt:        posted,
	}
}
