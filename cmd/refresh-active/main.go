// Command refresh-active recomputes the is_active flag for every policy.
// Run it daily so listings stop surfacing programs whose deadline passed.
package main

import (
	"context"
	"log"
	"time"

	"youthpick/internal/config"
	"youthpick/internal/database"
	"youthpick/internal/repository"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo := repository.NewPolicyRepository(db)
	changed, err := repo.RefreshActiveFlags(ctx, time.Now())
	if err != nil {
		log.Fatalf("Failed to refresh active flags: %v", err)
	}

	log.Printf("Active flags refreshed, %d policies updated", changed)
}
