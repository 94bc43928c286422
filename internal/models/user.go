package models

import (
	"time"
)

// Auth provider tags.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderNaver  = "naver"
)

// Subscription levels.
const (
	SubscriptionFree    = "free"
	SubscriptionPremium = "premium"
	SubscriptionAdmin   = "admin"
)

// User represents an account. Password is empty for social-auth accounts.
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"unique;index;not null" json:"email"`
	Name              string    `gorm:"not null" json:"name"`
	Password          string    `json:"-"`
	Region            string    `json:"region"`
	Provider          string    `gorm:"default:local" json:"provider"`
	SubscriptionLevel string    `gorm:"default:free" json:"subscription_level"`
	ProfileIcon       string    `gorm:"default:avatar_1" json:"profile_icon"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// IsAdmin reports whether the account carries the admin subscription level.
func (u *User) IsAdmin() bool {
	return u.SubscriptionLevel == SubscriptionAdmin
}
