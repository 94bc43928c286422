// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Policy represents a youth support program available for discovery.
type Policy struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"type:text;not null" json:"title"`
	Summary    string     `gorm:"type:text" json:"summary"`
	Period     string     `gorm:"type:text" json:"period"`
	Link       string     `gorm:"type:text" json:"link"`
	Genre      string     `gorm:"type:text;index" json:"genre"`
	Region     string     `gorm:"type:text;index" json:"region"`
	OriginalID string     `gorm:"index" json:"original_id"`
	CreatedAt  time.Time  `json:"created_at"`
	EndDate    *time.Time `gorm:"type:date" json:"end_date"`
	ViewCount  int        `gorm:"default:0" json:"view_count"`
	// IsActive is false once EndDate has passed. Maintained by the
	// refresh-active batch and recomputed on writes.
	IsActive bool `gorm:"default:true" json:"is_active"`
}

// Active reports whether the policy is still open for applications as of today.
// A policy without an end date is treated as always open.
func (p *Policy) Active(today time.Time) bool {
	if p.EndDate == nil {
		return true
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ey, em, ed := p.EndDate.Date()
	end := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return !end.Before(day)
}
