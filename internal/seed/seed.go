package seed

import (
	"fmt"
	"log"

	"youthpick/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the demo seeder
type Options struct {
	NumUsers    int
	NumPolicies int
	// ActionsPerUser is the number of swipe events recorded per demo user.
	ActionsPerUser int
	ShouldClean    bool
}

// Seed populates the database with demo data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d policies...", opts.NumUsers, opts.NumPolicies)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.DemoUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d demo users created", len(users))

	policies := make([]models.Policy, 0, opts.NumPolicies)
	for i := 0; i < opts.NumPolicies; i++ {
		policy, err := factory.DemoPolicy()
		if err != nil {
			return fmt.Errorf("failed to create policies: %w", err)
		}
		policies = append(policies, *policy)
	}
	log.Printf("%d demo policies created", len(policies))

	perUser := opts.ActionsPerUser
	if perUser <= 0 {
		perUser = 15
	}
	for _, user := range users {
		if err := factory.DemoActions(user, policies, perUser); err != nil {
			return fmt.Errorf("failed to create actions: %w", err)
		}
	}
	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`TRUNCATE TABLE user_actions, policies, users RESTART IDENTITY CASCADE;`).Error
	}
	for _, model := range []any{&models.UserAction{}, &models.Policy{}, &models.User{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
