// Package seed loads catalog snapshots and generates demo data for
// development and testing.
package seed

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"youthpick/internal/models"
	"youthpick/internal/observability"

	"gorm.io/gorm"
)

// Snapshot is the on-disk catalog dump format: the full state of the three
// domain tables as exported by the ops tooling.
type Snapshot struct {
	Users    []SnapshotUser   `json:"users"`
	Policies []SnapshotPolicy `json:"policies"`
	Actions  []SnapshotAction `json:"actions"`
}

// SnapshotUser mirrors models.User with the snapshot's field names.
type SnapshotUser struct {
	ID                uint   `json:"id"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	Password          string `json:"password"`
	Region            string `json:"region"`
	Provider          string `json:"provider"`
	SubscriptionLevel string `json:"subscription_level"`
	ProfileIcon       string `json:"profile_icon"`
}

// SnapshotPolicy mirrors models.Policy. EndDate uses the date-only format.
type SnapshotPolicy struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Period     string `json:"period"`
	Link       string `json:"link"`
	Genre      string `json:"genre"`
	Region     string `json:"region"`
	OriginalID string `json:"original_id"`
	EndDate    string `json:"end_date"`
	ViewCount  int    `json:"view_count"`
}

// SnapshotAction is one ledger row.
type SnapshotAction struct {
	UserEmail string `json:"user_email"`
	PolicyID  uint   `json:"policy_id"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

// ImportStats reports what a snapshot import did.
type ImportStats struct {
	Users          int
	Policies       int
	Actions        int
	SkippedActions int
}

// ImportSnapshot replaces the current catalog with the snapshot contents in a
// single transaction. Ledger rows referencing users or policies absent from
// the snapshot are skipped rather than failing the import.
func ImportSnapshot(db *gorm.DB, r io.Reader) (*ImportStats, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		observability.PolicyImportsTotal.WithLabelValues("decode_error").Inc()
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	stats := &ImportStats{}
	now := time.Now()

	err := db.Transaction(func(tx *gorm.DB) error {
		// Truncate-and-reload: children first.
		for _, model := range []any{&models.UserAction{}, &models.Policy{}, &models.User{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clear table: %w", err)
			}
		}

		knownEmails := make(map[string]struct{}, len(snap.Users))
		for _, su := range snap.Users {
			user := models.User{
				ID:                su.ID,
				Email:             su.Email,
				Name:              su.Name,
				Password:          su.Password,
				Region:            su.Region,
				Provider:          defaultString(su.Provider, models.ProviderLocal),
				SubscriptionLevel: defaultString(su.SubscriptionLevel, models.SubscriptionFree),
				ProfileIcon:       defaultString(su.ProfileIcon, "avatar_1"),
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("import user %s: %w", su.Email, err)
			}
			knownEmails[su.Email] = struct{}{}
			stats.Users++
		}

		knownPolicies := make(map[uint]struct{}, len(snap.Policies))
		for _, sp := range snap.Policies {
			policy := models.Policy{
				ID:         sp.ID,
				Title:      sp.Title,
				Summary:    sp.Summary,
				Period:     sp.Period,
				Link:       sp.Link,
				Genre:      sp.Genre,
				Region:     sp.Region,
				OriginalID: sp.OriginalID,
				ViewCount:  sp.ViewCount,
			}
			if sp.EndDate != "" {
				end, err := time.Parse("2006-01-02", sp.EndDate)
				if err != nil {
					return fmt.Errorf("import policy %q: bad end_date %q", sp.Title, sp.EndDate)
				}
				policy.EndDate = &end
			}
			policy.IsActive = policy.Active(now)

			if err := tx.Create(&policy).Error; err != nil {
				return fmt.Errorf("import policy %q: %w", sp.Title, err)
			}
			knownPolicies[policy.ID] = struct{}{}
			stats.Policies++
		}

		for _, sa := range snap.Actions {
			if _, ok := knownEmails[sa.UserEmail]; !ok {
				stats.SkippedActions++
				continue
			}
			if _, ok := knownPolicies[sa.PolicyID]; !ok {
				stats.SkippedActions++
				continue
			}
			action := models.UserAction{
				UserEmail: sa.UserEmail,
				PolicyID:  sa.PolicyID,
				Type:      sa.Type,
			}
			if sa.CreatedAt != "" {
				if ts, err := time.Parse(time.RFC3339, sa.CreatedAt); err == nil {
					action.CreatedAt = ts
				}
			}
			if err := tx.Create(&action).Error; err != nil {
				return fmt.Errorf("import action: %w", err)
			}
			stats.Actions++
		}

		return resyncSequences(tx)
	})
	if err != nil {
		observability.PolicyImportsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	observability.PolicyImportsTotal.WithLabelValues("success").Inc()
	log.Printf("snapshot imported: %d users, %d policies, %d actions (%d skipped)",
		stats.Users, stats.Policies, stats.Actions, stats.SkippedActions)
	return stats, nil
}

// PolicyLine is one row of the newline-delimited catalog feed. Older exports
// carry the region under "location".
type PolicyLine struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Period     string `json:"period"`
	Link       string `json:"link"`
	Genre      string `json:"genre"`
	Region     string `json:"region"`
	Location   string `json:"location"`
	OriginalID string `json:"original_id"`
	EndDate    string `json:"end_date"`
}

// LineImportStats reports what a catalog feed import did.
type LineImportStats struct {
	Created int
	Updated int
}

// ImportPolicyLines upserts policies from a newline-delimited JSON feed,
// matching existing rows by original_id. The whole feed applies in a single
// transaction; any malformed line rolls everything back.
func ImportPolicyLines(db *gorm.DB, r io.Reader) (*LineImportStats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	stats := &LineImportStats{}
	now := time.Now()

	err := db.Transaction(func(tx *gorm.DB) error {
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			raw := bytes.TrimSpace(scanner.Bytes())
			if len(raw) == 0 {
				continue
			}

			var pl PolicyLine
			if err := json.Unmarshal(raw, &pl); err != nil {
				observability.PolicyImportsTotal.WithLabelValues("decode_error").Inc()
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if pl.OriginalID == "" {
				return fmt.Errorf("line %d: missing original_id", lineNo)
			}

			region := defaultString(pl.Region, pl.Location)

			var end *time.Time
			if pl.EndDate != "" {
				parsed, err := time.Parse("2006-01-02", pl.EndDate)
				if err != nil {
					return fmt.Errorf("line %d: bad end_date %q", lineNo, pl.EndDate)
				}
				end = &parsed
			}

			var existing models.Policy
			err := tx.Where("original_id = ?", pl.OriginalID).First(&existing).Error
			switch {
			case err == nil:
				existing.Title = pl.Title
				existing.Summary = pl.Summary
				existing.Period = pl.Period
				existing.Link = pl.Link
				existing.Genre = pl.Genre
				existing.Region = region
				existing.EndDate = end
				existing.IsActive = existing.Active(now)
				if err := tx.Save(&existing).Error; err != nil {
					return fmt.Errorf("line %d: update policy: %w", lineNo, err)
				}
				stats.Updated++
			case errors.Is(err, gorm.ErrRecordNotFound):
				policy := models.Policy{
					Title:      pl.Title,
					Summary:    pl.Summary,
					Period:     pl.Period,
					Link:       pl.Link,
					Genre:      pl.Genre,
					Region:     region,
					OriginalID: pl.OriginalID,
					EndDate:    end,
				}
				policy.IsActive = policy.Active(now)
				if err := tx.Create(&policy).Error; err != nil {
					return fmt.Errorf("line %d: create policy: %w", lineNo, err)
				}
				stats.Created++
			default:
				return fmt.Errorf("line %d: lookup policy: %w", lineNo, err)
			}
		}
		return scanner.Err()
	})
	if err != nil {
		observability.PolicyImportsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	observability.PolicyImportsTotal.WithLabelValues("success").Inc()
	log.Printf("catalog feed imported: %d created, %d updated", stats.Created, stats.Updated)
	return stats, nil
}

// resyncSequences realigns the primary key sequences after inserting rows
// with explicit IDs. Only Postgres needs this; sqlite manages rowids itself.
func resyncSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"users", "policies", "user_actions"} {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 1)) FROM %s",
			table, table)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("resync %s sequence: %w", table, err)
		}
	}
	return nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
