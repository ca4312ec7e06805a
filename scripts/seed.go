package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"recruitment-portal-backend/config"
	"recruitment-portal-backend/pkg/database"

	"github.com/google/uuid"
)

// Seeds a local database with demo users, jobs, applications and
// interviewers for manual testing against the portal frontend.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	pool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	now := time.Now()

	recruiterID := uuid.NewString()
	candidateID := uuid.NewString()

	users := []struct {
		id, sub, email, name, role string
	}{
		{recruiterID, "local-recruiter-sub", "recruiter@example.com", "Rachel Recruiter", "recruiter"},
		{candidateID, "local-candidate-sub", "candidate@example.com", "Casey Candidate", "candidate"},
	}
	for _, u := range users {
		_, err := pool.Exec(ctx, `
			INSERT INTO users (id, cognito_sub, email, full_name, role, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			ON CONFLICT (email) DO NOTHING`,
			u.id, u.sub, u.email, u.name, u.role, now,
		)
		if err != nil {
			fmt.Println("Error seeding user:", err)
			os.Exit(1)
		}
	}

	jobID := uuid.New()
	_, err = pool.Exec(ctx, `
		INSERT INTO jobs (id, recruiter_user_id, title, description, skills, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		jobID, recruiterID, "Backend Engineer",
		"Build and operate the recruitment platform services.",
		[]string{"Go", "PostgreSQL", "AWS"}, "Remote", now,
	)
	if err != nil {
		fmt.Println("Error seeding job:", err)
		os.Exit(1)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO applications (id, job_id, candidate_user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'shortlisted', $4, $4)`,
		uuid.New(), jobID, candidateID, now,
	)
	if err != nil {
		fmt.Println("Error seeding application:", err)
		os.Exit(1)
	}

	interviewers := []struct{ name, email string }{
		{"Priya Sharma", "priya.sharma@example.com"},
		{"Tom Becker", "tom.becker@example.com"},
	}
	for _, iv := range interviewers {
		_, err := pool.Exec(ctx, `
			INSERT INTO interviewers (id, name, email, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO NOTHING`,
			uuid.New(), iv.name, iv.email, now,
		)
		if err != nil {
			fmt.Println("Error seeding interviewer:", err)
			os.Exit(1)
		}
	}

	fmt.Println("Seed complete.")
	fmt.Println("Recruiter:", recruiterID)
	fmt.Println("Candidate:", candidateID)
}
