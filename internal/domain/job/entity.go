package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting from the catalog. The matching core treats it as
// immutable input for the duration of one scoring call; the record is
// owned and mutated by the job-management subsystem only.
type Job struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	Title           string
	Description     string
	RequiredSkills  []string
	ExperienceLevel string
	SalaryMin       *float64
	SalaryMax       *float64
	Location        string
	JobType         string
	IsActive        bool
	PostedAt        *time.Time
	CreatedAt       time.Time
}

type Company struct {
	ID       uuid.UUID
	Name     string
	Location string
	Website  *string
}
