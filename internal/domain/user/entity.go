package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted candidate record as the external account
// subsystem stores it. Optional attributes stay nil when the candidate
// never filled them in.
type User struct {
	ID             uuid.UUID
	Email          string
	FullName       string
	Skills         []string
	Experience     string
	ExpectedSalary *float64
	Location       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
