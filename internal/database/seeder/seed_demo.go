package seeder

import (
	"context"

	"jobboard/internal/database"
)

// Demo data for local development. Inserts are keyed by natural
// uniqueness (company name, job title per company, user email) so
// re-running the seeders is harmless.

type CompaniesSeeder struct{}

func (CompaniesSeeder) Name() string { return "companies" }

func (CompaniesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "companies", "id", "name", "location"); err != nil {
		return err
	}

	items := []struct {
		Name     string
		Location string
	}{
		{Name: "Nimbus Labs", Location: "Bangalore, India"},
		{Name: "Harbor Systems", Location: "Jakarta, Indonesia"},
		{Name: "Northwind Digital", Location: "Remote"},
	}

	for _, it := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO companies (name, location)
			 SELECT $1, $2
			 WHERE NOT EXISTS (SELECT 1 FROM companies WHERE name = $1)`,
			it.Name, it.Location,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id", "company_id", "title", "required_skills", "experience_level",
		"salary_min", "salary_max", "location", "job_type", "is_active"); err != nil {
		return err
	}

	items := []struct {
		Company  string
		Title    string
		Desc     string
		Skills   []string
		Level    string
		Min, Max *float64
		Location string
		JobType  string
	}{
		{
			Company: "Nimbus Labs", Title: "Frontend Engineer",
			Desc:   "Build our candidate-facing dashboards with React and TypeScript.",
			Skills: []string{"React", "TypeScript", "CSS"}, Level: "mid",
			Min: f(900000), Max: f(1300000), Location: "Bangalore, India", JobType: "full-time",
		},
		{
			Company: "Nimbus Labs", Title: "Senior Backend Engineer",
			Desc:   "Own our matching and ranking services written in Go.",
			Skills: []string{"Go", "PostgreSQL", "Redis"}, Level: "senior",
			Min: f(1800000), Max: f(2600000), Location: "Bangalore, India", JobType: "full-time",
		},
		{
			Company: "Harbor Systems", Title: "Fullstack Developer",
			Desc:   "JavaScript across the stack, Node.js services and React frontends.",
			Skills: []string{"JavaScript", "Node.js", "React"}, Level: "junior",
			Min: f(500000), Max: f(800000), Location: "Jakarta, Indonesia", JobType: "full-time",
		},
		{
			Company: "Northwind Digital", Title: "Data Engineer",
			Desc:   "Python pipelines feeding our analytics warehouse.",
			Skills: []string{"Python", "SQL", "Airflow"}, Level: "mid",
			Location: "Remote", JobType: "contract",
		},
	}

	for _, it := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO jobs (company_id, title, description, required_skills, experience_level,
			                   salary_min, salary_max, location, job_type, is_active, posted_at)
			 SELECT c.id, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, now()
			 FROM companies c
			 WHERE c.name = $1
			   AND NOT EXISTS (SELECT 1 FROM jobs j WHERE j.company_id = c.id AND j.title = $2)`,
			it.Company, it.Title, it.Desc, it.Skills, it.Level,
			it.Min, it.Max, it.Location, it.JobType,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users",
		"id", "email", "full_name", "skills", "experience_level", "expected_salary", "location"); err != nil {
		return err
	}

	_, err := db.Exec(ctx,
		`INSERT INTO users (email, full_name, skills, experience_level, expected_salary, location)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email) DO NOTHING`,
		"demo@jobboard.local", "Demo Candidate",
		[]string{"React", "Node.js"}, "mid", 1000000.0, "Bangalore",
	)
	return err
}

func f(v float64) *float64 { return &v }
