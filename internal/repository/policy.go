// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"youthpick/internal/cache"
	"youthpick/internal/models"
	"youthpick/internal/observability"
	"youthpick/internal/taxonomy"

	"gorm.io/gorm"
)

// PolicyFilter narrows policy listings. Zero values mean "no filter".
type PolicyFilter struct {
	// Keyword is matched case-insensitively against title and summary.
	Keyword string
	// Genre is the full DB genre label (already mapped from the front token).
	Genre string
	// Region is the normalized region label. "전국" restricts to nationwide
	// rows only; any other label matches that region or 전국.
	Region string
	// ActiveOnly restricts to policies still open for applications.
	ActiveOnly bool
	// IDs restricts to the given policy IDs when non-empty.
	IDs []uint
}

// AdminPolicyQuery is the back-office listing query: free-text search,
// multi-select facet filters and column sorting.
type AdminPolicyQuery struct {
	Q       string
	Genres  []string
	Regions []string
	Sort    string
	Order   string
	Limit   int
	Offset  int
}

// RegionPolicyCount pairs a region label with its policy total.
type RegionPolicyCount struct {
	Region string `json:"region"`
	Count  int64  `json:"count"`
}

// PolicyRepository defines persistence operations for policies.
type PolicyRepository interface {
	List(ctx context.Context, filter PolicyFilter, sort string, limit, offset int) ([]models.Policy, error)
	Count(ctx context.Context, filter PolicyFilter) (int64, error)
	GetByID(ctx context.Context, id uint) (*models.Policy, error)
	Create(ctx context.Context, policy *models.Policy) error
	Update(ctx context.Context, policy *models.Policy) error
	Delete(ctx context.Context, id uint) error
	IncrementViewCount(ctx context.Context, id uint) error
	DistinctGenres(ctx context.Context) ([]string, error)
	DistinctRegions(ctx context.Context) ([]string, error)
	CountByRegion(ctx context.Context, region string) (int64, error)
	RecentCountByRegion(ctx context.Context, region string, since time.Time) (int64, error)
	TopViewedByRegion(ctx context.Context, region string) (*models.Policy, error)
	TopViewedByGenreExcluding(ctx context.Context, genre string, excludeIDs []uint) (*models.Policy, error)
	TopViewed(ctx context.Context) (*models.Policy, error)
	// EarliestDeadline returns the policy among ids whose end_date falls in
	// [from, to] and closes soonest, or nil when none match.
	EarliestDeadline(ctx context.Context, ids []uint, from, to time.Time) (*models.Policy, error)
	RandomByGenreAndRegions(ctx context.Context, genre string, regions []string, excludeIDs []uint, limit int) ([]models.Policy, error)
	RefreshActiveFlags(ctx context.Context, today time.Time) (int64, error)
	AdminList(ctx context.Context, query AdminPolicyQuery) ([]models.Policy, int64, error)
	RegionCounts(ctx context.Context) ([]RegionPolicyCount, error)
	CountEmptySummary(ctx context.Context) (int64, error)
}

type policyRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
}

// NewPolicyRepository returns a new PolicyRepository implementation.
func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db, metrics: observability.NewDatabaseMetrics(db)}
}

// applyFilter translates a PolicyFilter into WHERE clauses.
func (r *policyRepository) applyFilter(db *gorm.DB, filter PolicyFilter) *gorm.DB {
	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(summary) LIKE ?", like, like)
	}
	if filter.Genre != "" {
		db = db.Where("genre = ?", filter.Genre)
	}
	switch filter.Region {
	case "":
		// no region filter
	case taxonomy.Nationwide:
		db = db.Where("region = ?", taxonomy.Nationwide)
	default:
		// Nationwide policies apply everywhere, so a specific region
		// always includes them.
		db = db.Where("region = ? OR region = ?", filter.Region, taxonomy.Nationwide)
	}
	if filter.ActiveOnly {
		db = db.Where("is_active = ?", true)
	}
	if len(filter.IDs) > 0 {
		db = db.Where("id IN ?", filter.IDs)
	}
	return db
}

// applySort appends the ORDER BY clause for the requested sort type.
// Open policies always list before expired ones.
func (r *policyRepository) applySort(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case "latest":
		return db.Order("is_active DESC, created_at DESC")
	case "popular":
		return db.Order("is_active DESC, view_count DESC, id ASC")
	case "deadline":
		return db.Order("is_active DESC, end_date ASC NULLS LAST, id ASC")
	default:
		return db.Order("is_active DESC, id ASC")
	}
}

func (r *policyRepository) List(ctx context.Context, filter PolicyFilter, sort string, limit, offset int) ([]models.Policy, error) {
	defer r.metrics.TrackQuery("list", "policies")()

	var policies []models.Policy
	q := r.applyFilter(r.db.WithContext(ctx).Model(&models.Policy{}), filter)
	q = r.applySort(q, sort)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&policies).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return policies, nil
}

func (r *policyRepository) Count(ctx context.Context, filter PolicyFilter) (int64, error) {
	var count int64
	q := r.applyFilter(r.db.WithContext(ctx).Model(&models.Policy{}), filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *policyRepository) GetByID(ctx context.Context, id uint) (*models.Policy, error) {
	var policy models.Policy
	key := cache.PolicyKey(id)

	err := cache.Aside(ctx, key, &policy, cache.PolicyTTL, func() error {
		if err := r.db.WithContext(ctx).First(&policy, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Policy", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *policyRepository) Create(ctx context.Context, policy *models.Policy) error {
	if err := r.db.WithContext(ctx).Create(policy).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Delete(ctx, cache.GenresKey, cache.RegionsKey)
	return nil
}

func (r *policyRepository) Update(ctx context.Context, policy *models.Policy) error {
	if err := r.db.WithContext(ctx).Save(policy).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Delete(ctx, cache.PolicyKey(policy.ID), cache.GenresKey, cache.RegionsKey)
	return nil
}

func (r *policyRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Policy{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Delete(ctx, cache.PolicyKey(id), cache.GenresKey, cache.RegionsKey)
	return nil
}

func (r *policyRepository) IncrementViewCount(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Policy{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.Delete(ctx, cache.PolicyKey(id))
	return nil
}

// DistinctGenres returns the genre facet list. Served cache-aside: the admin
// table requests it on every page load.
func (r *policyRepository) DistinctGenres(ctx context.Context) ([]string, error) {
	var genres []string
	err := cache.Aside(ctx, cache.GenresKey, &genres, cache.FacetTTL, func() error {
		err := r.db.WithContext(ctx).
			Model(&models.Policy{}).
			Distinct("genre").
			Where("genre <> ''").
			Order("genre ASC").
			Pluck("genre", &genres).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *policyRepository) DistinctRegions(ctx context.Context) ([]string, error) {
	var regions []string
	err := cache.Aside(ctx, cache.RegionsKey, &regions, cache.FacetTTL, func() error {
		err := r.db.WithContext(ctx).
			Model(&models.Policy{}).
			Distinct("region").
			Where("region <> ''").
			Order("region ASC").
			Pluck("region", &regions).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return regions, nil
}

// CountByRegion counts policies available to a resident of the region.
// Nationwide rows always count; for 전국 itself, every policy counts.
func (r *policyRepository) CountByRegion(ctx context.Context, region string) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Policy{})
	if region != "" && region != taxonomy.Nationwide {
		q = q.Where("region LIKE ? OR region = ?", "%"+region+"%", taxonomy.Nationwide)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// RecentCountByRegion counts new arrivals strictly in the user's region.
// Substring match only; nationwide rows do not pad a regional count.
func (r *policyRepository) RecentCountByRegion(ctx context.Context, region string, since time.Time) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Policy{}).Where("created_at >= ?", since)
	if region != "" {
		q = q.Where("region LIKE ?", "%"+region+"%")
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// topViewedOne runs a view_count-ordered single-row query with a deterministic
// id tie-break, mapping no-rows to (nil, nil).
func (r *policyRepository) topViewedOne(q *gorm.DB) (*models.Policy, error) {
	var policy models.Policy
	err := q.Order("view_count DESC, id ASC").First(&policy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &policy, nil
}

// TopViewedByRegion returns the most-viewed policy whose region contains the
// label. A nationwide policy never wins a regional ranking.
func (r *policyRepository) TopViewedByRegion(ctx context.Context, region string) (*models.Policy, error) {
	q := r.db.WithContext(ctx).Model(&models.Policy{})
	if region != "" {
		q = q.Where("region LIKE ?", "%"+region+"%")
	}
	return r.topViewedOne(q)
}

func (r *policyRepository) TopViewedByGenreExcluding(ctx context.Context, genre string, excludeIDs []uint) (*models.Policy, error) {
	q := r.db.WithContext(ctx).Model(&models.Policy{}).Where("genre = ?", genre)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	return r.topViewedOne(q)
}

func (r *policyRepository) TopViewed(ctx context.Context) (*models.Policy, error) {
	return r.topViewedOne(r.db.WithContext(ctx).Model(&models.Policy{}))
}

func (r *policyRepository) EarliestDeadline(ctx context.Context, ids []uint, from, to time.Time) (*models.Policy, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var policy models.Policy
	err := r.db.WithContext(ctx).
		Where("id IN ? AND end_date >= ? AND end_date <= ?", ids, from, to).
		Order("end_date ASC, id ASC").
		First(&policy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &policy, nil
}

// RandomByGenreAndRegions picks up to limit random policies of the genre
// within the regions, skipping already-seen IDs.
func (r *policyRepository) RandomByGenreAndRegions(ctx context.Context, genre string, regions []string, excludeIDs []uint, limit int) ([]models.Policy, error) {
	var policies []models.Policy
	q := r.db.WithContext(ctx).
		Model(&models.Policy{}).
		Where("genre LIKE ?", "%"+genre+"%").
		Where("region IN ?", regions)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	if err := q.Order("RANDOM()").Limit(limit).Find(&policies).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return policies, nil
}

// AdminList runs the back-office listing query and returns the matching page
// together with the unpaginated total. Sort columns are whitelisted; anything
// unrecognized falls back to id.
func (r *policyRepository) AdminList(ctx context.Context, query AdminPolicyQuery) ([]models.Policy, int64, error) {
	defer r.metrics.TrackQuery("admin_list", "policies")()

	q := r.db.WithContext(ctx).Model(&models.Policy{})
	if kw := strings.TrimSpace(query.Q); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(summary) LIKE ?", like, like)
	}
	if len(query.Genres) > 0 {
		q = q.Where("genre IN ?", query.Genres)
	}
	if len(query.Regions) > 0 {
		q = q.Where("region IN ?", query.Regions)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	col := "id"
	switch query.Sort {
	case "title":
		col = "title"
	case "period":
		col = "end_date"
	}
	dir := "DESC"
	if strings.EqualFold(query.Order, "asc") {
		dir = "ASC"
	}
	q = q.Order(col + " " + dir)
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	if query.Offset > 0 {
		q = q.Offset(query.Offset)
	}

	var policies []models.Policy
	if err := q.Find(&policies).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return policies, total, nil
}

func (r *policyRepository) RegionCounts(ctx context.Context) ([]RegionPolicyCount, error) {
	var counts []RegionPolicyCount
	err := r.db.WithContext(ctx).
		Model(&models.Policy{}).
		Select("region, COUNT(*) as count").
		Group("region").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return counts, nil
}

func (r *policyRepository) CountEmptySummary(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Policy{}).
		Where("summary IS NULL OR summary = ''").
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// RefreshActiveFlags recomputes is_active for every policy relative to today:
// expired when end_date is in the past, open otherwise (no end date means
// always open). Returns the number of rows whose flag changed.
func (r *policyRepository) RefreshActiveFlags(ctx context.Context, today time.Time) (int64, error) {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var changed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expired := tx.Model(&models.Policy{}).
			Where("end_date IS NOT NULL AND end_date < ? AND is_active = ?", day, true).
			UpdateColumn("is_active", false)
		if expired.Error != nil {
			return expired.Error
		}
		changed += expired.RowsAffected

		revived := tx.Model(&models.Policy{}).
			Where("(end_date IS NULL OR end_date >= ?) AND is_active = ?", day, false).
			UpdateColumn("is_active", true)
		if revived.Error != nil {
			return revived.Error
		}
		changed += revived.RowsAffected
		return nil
	})
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return changed, nil
}
