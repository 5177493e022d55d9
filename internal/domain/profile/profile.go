package profile

import "jobboard/internal/domain/user"

// DefaultExperience is assumed when a candidate never set an experience
// level. Matching compares buckets case-insensitively, so the raw string
// is kept as stored.
const DefaultExperience = "entry"

// CandidateProfile is the canonical matching view of a user. It is built
// fresh for every ranking request and discarded afterwards; nothing in
// the core mutates or persists it.
type CandidateProfile struct {
	Skills             []string
	ExperienceBucket   string
	ExpectedSalary     *float64
	PreferredLocations []string
	AcceptedJobTypes   []string
}

// Extract normalizes a persisted user record into a CandidateProfile.
// Absent fields degrade to defaults; this never fails.
func Extract(u user.User) CandidateProfile {
	p := CandidateProfile{
		Skills:           append([]string(nil), u.Skills...),
		ExperienceBucket: u.Experience,
		ExpectedSalary:   u.ExpectedSalary,
		// Job-type preferences are not collected from candidates yet, so
		// every profile accepts full-time only.
		AcceptedJobTypes: []string{"full-time"},
	}
	if p.ExperienceBucket == "" {
		p.ExperienceBucket = DefaultExperience
	}
	if u.Location != nil && *u.Location != "" {
		p.PreferredLocations = []string{*u.Location}
	} else {
		p.PreferredLocations = []string{}
	}
	return p
}
