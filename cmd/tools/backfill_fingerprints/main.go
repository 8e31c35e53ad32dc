// Backfill fingerprints for candidates created before fingerprinting was
// introduced, so they participate in duplicate lookups.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"recruitdesk/internal/resume"
	"recruitdesk/internal/storage"
)

func main() {
	var dryRun bool
	var limit int
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not persist updates; just print changes")
	flag.IntVar(&limit, "limit", 200, "Max number of candidates to process in one run")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	log.Printf("Connecting to DB...")
	db, err := storage.NewDB(dbURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	candidates, err := db.CandidatesMissingFingerprint(ctx, limit)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	log.Printf("Found %d candidates without a fingerprint (limit %d)", len(candidates), limit)

	updated := 0
	skipped := 0
	for _, c := range candidates {
		fingerprint := resume.Fingerprint(c.Email, c.Phone, c.Name)
		if fingerprint == "" {
			log.Printf("skip %s (%s): no usable identifying fields", c.ID, c.Name)
			skipped++
			continue
		}

		if dryRun {
			log.Printf("[dry-run] would set fingerprint for %s (%s): %s", c.ID, c.Name, fingerprint)
			updated++
			continue
		}

		if err := db.SetCandidateFingerprint(ctx, c.ID, fingerprint); err != nil {
			log.Printf("failed to update %s: %v", c.ID, err)
			continue
		}
		updated++
	}

	log.Printf("Done: %d updated, %d skipped (dry-run=%v)", updated, skipped, dryRun)
}
