// Command migrate applies the database schema without starting the server.
package main

import (
	"fmt"
	"log"

	"youthpick/internal/config"
	"youthpick/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	// Connect already auto-migrates outside production. Run it explicitly
	// so this command works against production databases too.
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("schema migrations applied")
	return nil
}
