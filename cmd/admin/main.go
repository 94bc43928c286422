// Package main provides admin management utilities for YouthPick.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"youthpick/internal/config"
	"youthpick/internal/database"
	"youthpick/internal/models"

	"gorm.io/gorm"
)

// AdminSetup provides a utility to promote a user to admin or manage admin accounts
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin/main.go promote <email>       - Promote user to admin")
		fmt.Println("  go run ./cmd/admin/main.go demote <email>        - Demote user from admin")
		fmt.Println("  go run ./cmd/admin/main.go list-admins           - List all admins")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "promote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin/main.go promote <email>")
			os.Exit(1)
		}
		promoteToAdmin(db, os.Args[2])

	case "demote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin/main.go demote <email>")
			os.Exit(1)
		}
		demoteFromAdmin(db, os.Args[2])

	case "list-admins":
		listAdmins(db)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func findByEmail(db *gorm.DB, email string) *models.User {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("User with email %s not found\n", email)
		} else {
			log.Fatalf("Database error: %v", err)
		}
		os.Exit(1)
	}
	return &user
}

func promoteToAdmin(db *gorm.DB, email string) {
	user := findByEmail(db, email)

	if user.IsAdmin() {
		fmt.Printf("User %s (ID: %d) is already an admin\n", user.Email, user.ID)
		return
	}

	user.SubscriptionLevel = models.SubscriptionAdmin
	if err := db.Save(user).Error; err != nil {
		log.Fatalf("Failed to promote user: %v", err)
	}

	fmt.Printf("✅ Successfully promoted %s (ID: %d) to admin\n", user.Email, user.ID)
}

func demoteFromAdmin(db *gorm.DB, email string) {
	user := findByEmail(db, email)

	if !user.IsAdmin() {
		fmt.Printf("User %s (ID: %d) is not an admin\n", user.Email, user.ID)
		return
	}

	user.SubscriptionLevel = models.SubscriptionFree
	if err := db.Save(user).Error; err != nil {
		log.Fatalf("Failed to demote user: %v", err)
	}

	fmt.Printf("✅ Successfully demoted %s (ID: %d) from admin\n", user.Email, user.ID)
}

func listAdmins(db *gorm.DB) {
	var admins []models.User
	if err := db.Where("subscription_level = ?", models.SubscriptionAdmin).Find(&admins).Error; err != nil {
		log.Fatalf("Failed to fetch admins: %v", err)
	}

	if len(admins) == 0 {
		fmt.Println("No admins found in the system")
		return
	}

	fmt.Println("\n📋 Current Admins:")
	fmt.Println("─────────────────────────────────────")
	for _, admin := range admins {
		fmt.Printf("ID: %d | Name: %s | Email: %s\n", admin.ID, admin.Name, admin.Email)
	}
	fmt.Println("─────────────────────────────────────")
}
