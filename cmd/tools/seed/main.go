// Seed creates the schema plus a starter admin, two recruiters, and a few
// sample candidates. Safe to run repeatedly: existing users are kept.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"recruitdesk/internal/auth"
	"recruitdesk/internal/resume"
	"recruitdesk/internal/storage"
)

func main() {
	var skipSchema bool
	flag.BoolVar(&skipSchema, "skip-schema", false, "Do not run CREATE TABLE statements")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := storage.NewDB(dbURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if !skipSchema {
		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatalf("schema: %v", err)
		}
		log.Println("Schema ensured")
	}

	ensureUser(ctx, db, &storage.User{
		Email:      "admin@recruitdesk.local",
		Name:       "Admin User",
		Role:       storage.RoleSuperUser,
		Department: "Human Resources",
		Phone:      "+1 (555) 000-0001",
	}, "admin123")

	recruiter1 := ensureUser(ctx, db, &storage.User{
		Email:      "john@recruitdesk.local",
		Name:       "John Smith",
		Role:       storage.RoleRecruiter,
		Department: "Engineering",
		Phone:      "+1 (555) 000-0002",
	}, "recruiter123")

	ensureUser(ctx, db, &storage.User{
		Email:      "sarah@recruitdesk.local",
		Name:       "Sarah Johnson",
		Role:       storage.RoleRecruiter,
		Department: "Sales",
		Phone:      "+1 (555) 000-0003",
	}, "recruiter123")

	samples := []*storage.Candidate{
		{
			Name:     "Alice Williams",
			Email:    "alice.williams@example.com",
			Phone:    "+1 415-555-0100",
			Position: "Frontend Developer",
			Skills:   []string{"JavaScript", "React", "CSS"},
			Status:   storage.StatusApplied,
			Source:   "LinkedIn",
		},
		{
			Name:     "Bob Chen",
			Email:    "bob.chen@example.com",
			Phone:    "+1 415-555-0101",
			Position: "Backend Engineer",
			Skills:   []string{"Go", "PostgreSQL", "Docker"},
			Status:   storage.StatusScreening,
			Source:   "Referral",
		},
		{
			Name:     "Carol Davis",
			Email:    "carol.davis@example.com",
			Position: "DevOps Engineer",
			Skills:   []string{"Kubernetes", "AWS", "CI/CD"},
			Status:   storage.StatusInterview,
			Source:   "Job Board",
		},
	}

	for _, c := range samples {
		c.RecruiterID = recruiter1.ID
		c.Fingerprint = resume.Fingerprint(c.Email, c.Phone, c.Name)
		if err := db.CreateCandidate(ctx, c); err != nil {
			log.Printf("candidate %s: %v (probably already seeded)", c.Email, err)
			continue
		}
		log.Printf("Created candidate: %s", c.Email)
	}

	log.Println("Seed complete")
}

func ensureUser(ctx context.Context, db *storage.DB, u *storage.User, password string) *storage.User {
	existing, err := db.GetUserByEmail(ctx, u.Email)
	if err == nil {
		log.Printf("User exists: %s", u.Email)
		return existing
	}
	if !errors.Is(err, storage.ErrNotFound) {
		log.Fatalf("lookup %s: %v", u.Email, err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	u.PasswordHash = hash

	if err := db.CreateUser(ctx, u); err != nil {
		log.Fatalf("create %s: %v", u.Email, err)
	}
	log.Printf("Created user: %s (%s)", u.Email, u.Role)
	return u
}
