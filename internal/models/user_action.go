package models

import (
	"time"
)

// Action types recorded in the ledger.
const (
	ActionLike = "like"
	ActionPass = "pass"
)

// UserAction is a like/pass event linking a user (by email) to a policy.
//
// At most one live "like" row may exist per (user_email, policy_id) pair;
// this is enforced by an application-level pre-check rather than a unique
// constraint, so duplicate "pass" rows are possible and are kept as-is.
type UserAction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserEmail string    `gorm:"not null;index" json:"user_email"`
	PolicyID  uint      `gorm:"not null;index" json:"policy_id"`
	Type      string    `gorm:"not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
