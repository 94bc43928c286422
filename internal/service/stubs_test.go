package service

import (
	"context"
	"time"

	"youthpick/internal/models"
	"youthpick/internal/repository"
)

// policyRepoStub is a stub for repository.PolicyRepository.
type policyRepoStub struct {
	listFn                      func(context.Context, repository.PolicyFilter, string, int, int) ([]models.Policy, error)
	countFn                     func(context.Context, repository.PolicyFilter) (int64, error)
	getByIDFn                   func(context.Context, uint) (*models.Policy, error)
	createFn                    func(context.Context, *models.Policy) error
	updateFn                    func(context.Context, *models.Policy) error
	deleteFn                    func(context.Context, uint) error
	incrementViewCountFn        func(context.Context, uint) error
	distinctGenresFn            func(context.Context) ([]string, error)
	distinctRegionsFn           func(context.Context) ([]string, error)
	countByRegionFn             func(context.Context, string) (int64, error)
	recentCountByRegionFn       func(context.Context, string, time.Time) (int64, error)
	topViewedByRegionFn         func(context.Context, string) (*models.Policy, error)
	topViewedByGenreExcludingFn func(context.Context, string, []uint) (*models.Policy, error)
	topViewedFn                 func(context.Context) (*models.Policy, error)
	earliestDeadlineFn          func(context.Context, []uint, time.Time, time.Time) (*models.Policy, error)
	randomByGenreAndRegionsFn   func(context.Context, string, []string, []uint, int) ([]models.Policy, error)
	refreshActiveFlagsFn        func(context.Context, time.Time) (int64, error)
	adminListFn                 func(context.Context, repository.AdminPolicyQuery) ([]models.Policy, int64, error)
	regionCountsFn              func(context.Context) ([]repository.RegionPolicyCount, error)
	countEmptySummaryFn         func(context.Context) (int64, error)
}

func (s *policyRepoStub) List(ctx context.Context, f repository.PolicyFilter, sort string, limit, offset int) ([]models.Policy, error) {
	return s.listFn(ctx, f, sort, limit, offset)
}
func (s *policyRepoStub) Count(ctx context.Context, f repository.PolicyFilter) (int64, error) {
	return s.countFn(ctx, f)
}
func (s *policyRepoStub) GetByID(ctx context.Context, id uint) (*models.Policy, error) {
	return s.getByIDFn(ctx, id)
}
func (s *policyRepoStub) Create(ctx context.Context, p *models.Policy) error {
	return s.createFn(ctx, p)
}
func (s *policyRepoStub) Update(ctx context.Context, p *models.Policy) error {
	return s.updateFn(ctx, p)
}
func (s *policyRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *policyRepoStub) IncrementViewCount(ctx context.Context, id uint) error {
	return s.incrementViewCountFn(ctx, id)
}
func (s *policyRepoStub) DistinctGenres(ctx context.Context) ([]string, error) {
	return s.distinctGenresFn(ctx)
}
func (s *policyRepoStub) DistinctRegions(ctx context.Context) ([]string, error) {
	return s.distinctRegionsFn(ctx)
}
func (s *policyRepoStub) CountByRegion(ctx context.Context, region string) (int64, error) {
	return s.countByRegionFn(ctx, region)
}
func (s *policyRepoStub) RecentCountByRegion(ctx context.Context, region string, since time.Time) (int64, error) {
	return s.recentCountByRegionFn(ctx, region, since)
}
func (s *policyRepoStub) TopViewedByRegion(ctx context.Context, region string) (*models.Policy, error) {
	return s.topViewedByRegionFn(ctx, region)
}
func (s *policyRepoStub) TopViewedByGenreExcluding(ctx context.Context, genre string, excludeIDs []uint) (*models.Policy, error) {
	return s.topViewedByGenreExcludingFn(ctx, genre, excludeIDs)
}
func (s *policyRepoStub) TopViewed(ctx context.Context) (*models.Policy, error) {
	return s.topViewedFn(ctx)
}
func (s *policyRepoStub) EarliestDeadline(ctx context.Context, ids []uint, from, to time.Time) (*models.Policy, error) {
	return s.earliestDeadlineFn(ctx, ids, from, to)
}
func (s *policyRepoStub) RandomByGenreAndRegions(ctx context.Context, genre string, regions []string, excludeIDs []uint, limit int) ([]models.Policy, error) {
	return s.randomByGenreAndRegionsFn(ctx, genre, regions, excludeIDs, limit)
}
func (s *policyRepoStub) RefreshActiveFlags(ctx context.Context, today time.Time) (int64, error) {
	return s.refreshActiveFlagsFn(ctx, today)
}
func (s *policyRepoStub) AdminList(ctx context.Context, query repository.AdminPolicyQuery) ([]models.Policy, int64, error) {
	return s.adminListFn(ctx, query)
}
func (s *policyRepoStub) RegionCounts(ctx context.Context) ([]repository.RegionPolicyCount, error) {
	return s.regionCountsFn(ctx)
}
func (s *policyRepoStub) CountEmptySummary(ctx context.Context) (int64, error) {
	return s.countEmptySummaryFn(ctx)
}

func noopPolicyRepo() *policyRepoStub {
	return &policyRepoStub{
		listFn: func(context.Context, repository.PolicyFilter, string, int, int) ([]models.Policy, error) {
			return nil, nil
		},
		countFn:              func(context.Context, repository.PolicyFilter) (int64, error) { return 0, nil },
		getByIDFn:            func(context.Context, uint) (*models.Policy, error) { return &models.Policy{}, nil },
		createFn:             func(context.Context, *models.Policy) error { return nil },
		updateFn:             func(context.Context, *models.Policy) error { return nil },
		deleteFn:             func(context.Context, uint) error { return nil },
		incrementViewCountFn: func(context.Context, uint) error { return nil },
		distinctGenresFn:     func(context.Context) ([]string, error) { return nil, nil },
		distinctRegionsFn:    func(context.Context) ([]string, error) { return nil, nil },
		countByRegionFn:      func(context.Context, string) (int64, error) { return 0, nil },
		recentCountByRegionFn: func(context.Context, string, time.Time) (int64, error) {
			return 0, nil
		},
		topViewedByRegionFn: func(context.Context, string) (*models.Policy, error) { return nil, nil },
		topViewedByGenreExcludingFn: func(context.Context, string, []uint) (*models.Policy, error) {
			return nil, nil
		},
		topViewedFn: func(context.Context) (*models.Policy, error) { return nil, nil },
		earliestDeadlineFn: func(context.Context, []uint, time.Time, time.Time) (*models.Policy, error) {
			return nil, nil
		},
		randomByGenreAndRegionsFn: func(context.Context, string, []string, []uint, int) ([]models.Policy, error) {
			return nil, nil
		},
		refreshActiveFlagsFn: func(context.Context, time.Time) (int64, error) { return 0, nil },
		adminListFn: func(context.Context, repository.AdminPolicyQuery) ([]models.Policy, int64, error) {
			return nil, 0, nil
		},
		regionCountsFn:      func(context.Context) ([]repository.RegionPolicyCount, error) { return nil, nil },
		countEmptySummaryFn: func(context.Context) (int64, error) { return 0, nil },
	}
}

// actionRepoStub is a stub for repository.ActionRepository.
type actionRepoStub struct {
	recordLikeFn        func(context.Context, string, uint) (bool, error)
	recordPassFn        func(context.Context, string, uint) error
	unlikeFn            func(context.Context, string, uint) error
	hasLikedFn          func(context.Context, string, uint) (bool, error)
	likedPolicyIDsFn    func(context.Context, string) ([]uint, error)
	listLikesFn         func(context.Context, string, int, int) ([]models.UserAction, error)
	countLikesFn        func(context.Context, string) (int64, error)
	bulkDeleteLikesFn   func(context.Context, string, []uint) (int64, error)
	countsByBaseGenreFn func(context.Context, string, string) ([]repository.GenreCount, error)
	topGenreFn          func(context.Context, string) (string, error)
	recentFn            func(context.Context, int) ([]models.UserAction, error)
	countAllFn          func(context.Context) (int64, error)
	hotPoliciesFn       func(context.Context, int) ([]repository.PolicyActionCount, error)
}

func (s *actionRepoStub) RecordLike(ctx context.Context, email string, id uint) (bool, error) {
	return s.recordLikeFn(ctx, email, id)
}
func (s *actionRepoStub) RecordPass(ctx context.Context, email string, id uint) error {
	return s.recordPassFn(ctx, email, id)
}
func (s *actionRepoStub) Unlike(ctx context.Context, email string, id uint) error {
	return s.unlikeFn(ctx, email, id)
}
func (s *actionRepoStub) HasLiked(ctx context.Context, email string, id uint) (bool, error) {
	return s.hasLikedFn(ctx, email, id)
}
func (s *actionRepoStub) LikedPolicyIDs(ctx context.Context, email string) ([]uint, error) {
	return s.likedPolicyIDsFn(ctx, email)
}
func (s *actionRepoStub) ListLikes(ctx context.Context, email string, limit, offset int) ([]models.UserAction, error) {
	return s.listLikesFn(ctx, email, limit, offset)
}
func (s *actionRepoStub) CountLikes(ctx context.Context, email string) (int64, error) {
	return s.countLikesFn(ctx, email)
}
func (s *actionRepoStub) BulkDeleteLikes(ctx context.Context, email string, ids []uint) (int64, error) {
	return s.bulkDeleteLikesFn(ctx, email, ids)
}
func (s *actionRepoStub) CountsByBaseGenre(ctx context.Context, email, actionType string) ([]repository.GenreCount, error) {
	return s.countsByBaseGenreFn(ctx, email, actionType)
}
func (s *actionRepoStub) TopGenre(ctx context.Context, email string) (string, error) {
	return s.topGenreFn(ctx, email)
}
func (s *actionRepoStub) Recent(ctx context.Context, limit int) ([]models.UserAction, error) {
	return s.recentFn(ctx, limit)
}
func (s *actionRepoStub) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}
func (s *actionRepoStub) HotPolicies(ctx context.Context, limit int) ([]repository.PolicyActionCount, error) {
	return s.hotPoliciesFn(ctx, limit)
}

func noopActionRepo() *actionRepoStub {
	return &actionRepoStub{
		recordLikeFn:     func(context.Context, string, uint) (bool, error) { return true, nil },
		recordPassFn:     func(context.Context, string, uint) error { return nil },
		unlikeFn:         func(context.Context, string, uint) error { return nil },
		hasLikedFn:       func(context.Context, string, uint) (bool, error) { return false, nil },
		likedPolicyIDsFn: func(context.Context, string) ([]uint, error) { return nil, nil },
		listLikesFn: func(context.Context, string, int, int) ([]models.UserAction, error) {
			return nil, nil
		},
		countLikesFn:      func(context.Context, string) (int64, error) { return 0, nil },
		bulkDeleteLikesFn: func(context.Context, string, []uint) (int64, error) { return 0, nil },
		countsByBaseGenreFn: func(context.Context, string, string) ([]repository.GenreCount, error) {
			return nil, nil
		},
		topGenreFn: func(context.Context, string) (string, error) { return "", nil },
		recentFn:   func(context.Context, int) ([]models.UserAction, error) { return nil, nil },
		countAllFn: func(context.Context) (int64, error) { return 0, nil },
		hotPoliciesFn: func(context.Context, int) ([]repository.PolicyActionCount, error) {
			return nil, nil
		},
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	listFn                func(context.Context, int, int) ([]models.User, error)
	countAllFn            func(context.Context) (int64, error)
	countByRegionFn       func(context.Context) ([]repository.RegionUserCount, error)
	countBySubscriptionFn func(context.Context, string) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, u *models.User) error {
	return s.createFn(ctx, u)
}
func (s *userRepoStub) Update(ctx context.Context, u *models.User) error {
	return s.updateFn(ctx, u)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}
func (s *userRepoStub) CountByRegion(ctx context.Context) ([]repository.RegionUserCount, error) {
	return s.countByRegionFn(ctx)
}
func (s *userRepoStub) CountBySubscription(ctx context.Context, level string) (int64, error) {
	return s.countBySubscriptionFn(ctx, level)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:             func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:          func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:              func(context.Context, *models.User) error { return nil },
		updateFn:              func(context.Context, *models.User) error { return nil },
		listFn:                func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		countAllFn:            func(context.Context) (int64, error) { return 0, nil },
		countByRegionFn:       func(context.Context) ([]repository.RegionUserCount, error) { return nil, nil },
		countBySubscriptionFn: func(context.Context, string) (int64, error) { return 0, nil },
	}
}
