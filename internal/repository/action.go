package repository

import (
	"context"

	"youthpick/internal/models"
	"youthpick/internal/observability"

	"gorm.io/gorm"
)

// GenreCount is a per-genre tally of liked policies.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

// PolicyActionCount pairs a policy with its like total.
type PolicyActionCount struct {
	PolicyID uint   `json:"policy_id"`
	Title    string `json:"title"`
	Count    int64  `json:"count"`
}

// ActionRepository defines persistence operations for the like/pass ledger.
type ActionRepository interface {
	// RecordLike inserts a like unless one already exists for the pair.
	// Returns true when a new row was created.
	RecordLike(ctx context.Context, userEmail string, policyID uint) (bool, error)
	// RecordPass always inserts; duplicate pass rows are allowed.
	RecordPass(ctx context.Context, userEmail string, policyID uint) error
	// Unlike deletes every like row for the pair. Idempotent.
	Unlike(ctx context.Context, userEmail string, policyID uint) error
	HasLiked(ctx context.Context, userEmail string, policyID uint) (bool, error)
	LikedPolicyIDs(ctx context.Context, userEmail string) ([]uint, error)
	ListLikes(ctx context.Context, userEmail string, limit, offset int) ([]models.UserAction, error)
	CountLikes(ctx context.Context, userEmail string) (int64, error)
	// BulkDeleteLikes removes the user's likes for the given policies and
	// returns how many rows went away.
	BulkDeleteLikes(ctx context.Context, userEmail string, policyIDs []uint) (int64, error)
	// CountsByBaseGenre tallies the user's actions of the given type per
	// policy genre.
	CountsByBaseGenre(ctx context.Context, userEmail, actionType string) ([]GenreCount, error)
	// TopGenre returns the genre the user has liked most, or "" with no likes.
	TopGenre(ctx context.Context, userEmail string) (string, error)
	Recent(ctx context.Context, limit int) ([]models.UserAction, error)
	CountAll(ctx context.Context) (int64, error)
	// HotPolicies lists the most-liked policies with their like counts.
	HotPolicies(ctx context.Context, limit int) ([]PolicyActionCount, error)
}

type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository returns a new ActionRepository implementation.
func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) RecordLike(ctx context.Context, userEmail string, policyID uint) (bool, error) {
	exists, err := r.HasLiked(ctx, userEmail, policyID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	action := models.UserAction{UserEmail: userEmail, PolicyID: policyID, Type: models.ActionLike}
	if err := r.db.WithContext(ctx).Create(&action).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	observability.UserActionsTotal.WithLabelValues(models.ActionLike).Inc()
	return true, nil
}

func (r *actionRepository) RecordPass(ctx context.Context, userEmail string, policyID uint) error {
	action := models.UserAction{UserEmail: userEmail, PolicyID: policyID, Type: models.ActionPass}
	if err := r.db.WithContext(ctx).Create(&action).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.UserActionsTotal.WithLabelValues(models.ActionPass).Inc()
	return nil
}

func (r *actionRepository) Unlike(ctx context.Context, userEmail string, policyID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND policy_id = ? AND type = ?", userEmail, policyID, models.ActionLike).
		Delete(&models.UserAction{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *actionRepository) HasLiked(ctx context.Context, userEmail string, policyID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserAction{}).
		Where("user_email = ? AND policy_id = ? AND type = ?", userEmail, policyID, models.ActionLike).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *actionRepository) LikedPolicyIDs(ctx context.Context, userEmail string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.UserAction{}).
		Where("user_email = ? AND type = ?", userEmail, models.ActionLike).
		Pluck("policy_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *actionRepository) ListLikes(ctx context.Context, userEmail string, limit, offset int) ([]models.UserAction, error) {
	var actions []models.UserAction
	q := r.db.WithContext(ctx).
		Where("user_email = ? AND type = ?", userEmail, models.ActionLike).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&actions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return actions, nil
}

func (r *actionRepository) CountLikes(ctx context.Context, userEmail string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserAction{}).
		Where("user_email = ? AND type = ?", userEmail, models.ActionLike).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *actionRepository) BulkDeleteLikes(ctx context.Context, userEmail string, policyIDs []uint) (int64, error) {
	if len(policyIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("user_email = ? AND type = ? AND policy_id IN ?", userEmail, models.ActionLike, policyIDs).
		Delete(&models.UserAction{})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *actionRepository) CountsByBaseGenre(ctx context.Context, userEmail, actionType string) ([]GenreCount, error) {
	var counts []GenreCount
	err := r.db.WithContext(ctx).
		Model(&models.UserAction{}).
		Select("policies.genre AS genre, COUNT(*) AS count").
		Joins("JOIN policies ON policies.id = user_actions.policy_id").
		Where("user_actions.user_email = ? AND user_actions.type = ?", userEmail, actionType).
		Group("policies.genre").
		Order("count DESC, genre ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return counts, nil
}

func (r *actionRepository) TopGenre(ctx context.Context, userEmail string) (string, error) {
	counts, err := r.CountsByBaseGenre(ctx, userEmail, models.ActionLike)
	if err != nil {
		return "", err
	}
	if len(counts) == 0 {
		return "", nil
	}
	return counts[0].Genre, nil
}

func (r *actionRepository) Recent(ctx context.Context, limit int) ([]models.UserAction, error) {
	var actions []models.UserAction
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&actions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return actions, nil
}

func (r *actionRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserAction{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *actionRepository) HotPolicies(ctx context.Context, limit int) ([]PolicyActionCount, error) {
	var rows []PolicyActionCount
	err := r.db.WithContext(ctx).
		Model(&models.UserAction{}).
		Select("user_actions.policy_id AS policy_id, policies.title AS title, COUNT(*) AS count").
		Joins("JOIN policies ON policies.id = user_actions.policy_id").
		Where("user_actions.type = ?", models.ActionLike).
		Group("user_actions.policy_id, policies.title").
		Order("count DESC, policy_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}
