// Command main runs the database seeder for YouthPick.
package main

import (
	"flag"
	"log"
	"os"

	"youthpick/internal/config"
	"youthpick/internal/database"
	"youthpick/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of demo users to create")
	numPolicies := flag.Int("policies", 200, "Number of demo policies to create")
	actionsPerUser := flag.Int("actions", 15, "Number of swipe actions per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	snapshotPath := flag.String("snapshot", "", "Import policies/users/actions from a JSON snapshot file instead of generating demo data")
	catalogPath := flag.String("catalog", "", "Upsert policies from a newline-delimited JSON catalog feed (matched by original_id)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *catalogPath != "" {
		f, err := os.Open(*catalogPath)
		if err != nil {
			log.Fatalf("❌ Cannot open catalog feed: %v", err)
		}
		defer f.Close()

		stats, err := seed.ImportPolicyLines(db, f)
		if err != nil {
			log.Fatalf("❌ Catalog feed import failed: %v", err)
		}
		log.Printf("✨ Catalog feed imported: %d created, %d updated", stats.Created, stats.Updated)
		return
	}

	if *snapshotPath != "" {
		f, err := os.Open(*snapshotPath)
		if err != nil {
			log.Fatalf("❌ Cannot open snapshot file: %v", err)
		}
		defer f.Close()

		stats, err := seed.ImportSnapshot(db, f)
		if err != nil {
			log.Fatalf("❌ Snapshot import failed: %v", err)
		}
		log.Printf("✨ Snapshot imported: %d users, %d policies, %d actions (%d skipped)",
			stats.Users, stats.Policies, stats.Actions, stats.SkippedActions)
		return
	}

	log.Printf("Target: %d users, %d policies, clean=%v\n", *numUsers, *numPolicies, *shouldClean)

	if err := seed.Seed(db, seed.Options{
		NumUsers:       *numUsers,
		NumPolicies:    *numPolicies,
		ActionsPerUser: *actionsPerUser,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All demo users have the password: password1")
}
