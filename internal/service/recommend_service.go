package service

import (
	"context"
	"fmt"
	"time"

	"youthpick/internal/repository"
	"youthpick/internal/taxonomy"
)

// Alert is a single recommendation banner. Everything is computed on demand
// from the catalog and the user's ledger; nothing is stored.
type Alert struct {
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

type RecommendService struct {
	userRepo   repository.UserRepository
	policyRepo repository.PolicyRepository
	actionRepo repository.ActionRepository
	// now is injectable for deadline tests.
	now func() time.Time
}

func NewRecommendService(
	userRepo repository.UserRepository,
	policyRepo repository.PolicyRepository,
	actionRepo repository.ActionRepository,
) *RecommendService {
	return &RecommendService{
		userRepo:   userRepo,
		policyRepo: policyRepo,
		actionRepo: actionRepo,
		now:        time.Now,
	}
}

// Status computes the recommendation alerts for the given user email. An
// empty email yields the anonymous "hot right now" alert; an unknown email
// yields an empty list.
func (s *RecommendService) Status(ctx context.Context, userEmail string) ([]Alert, error) {
	alerts := []Alert{}

	if userEmail == "" {
		best, err := s.policyRepo.TopViewed(ctx)
		if err != nil {
			return nil, err
		}
		if best != nil {
			alerts = append(alerts, Alert{
				Type:    "best",
				Icon:    "🔥",
				Title:   "지금 가장 핫한 정책",
				Message: fmt.Sprintf("'%s' 지금 확인해보세요!", best.Title),
				Link:    fmt.Sprintf("/all.html?policy_id=%d", best.ID),
			})
		}
		return alerts, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return alerts, nil
	}

	region := defaultStr(user.Region, taxonomy.Nationwide)
	now := s.now()

	// New arrivals in the user's region over the last 7 days.
	newCount, err := s.policyRepo.RecentCountByRegion(ctx, region, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	if newCount > 0 {
		alerts = append(alerts, Alert{
			Type:    "new",
			Icon:    "✨",
			Title:   fmt.Sprintf("%s 신규 정책", region),
			Message: fmt.Sprintf("최근 7일간 %d건이 새로 올라왔어요.", newCount),
			Link:    fmt.Sprintf("/all.html?region=%s&sort=new", region),
		})
	}

	likedIDs, err := s.actionRepo.LikedPolicyIDs(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	// A liked policy closing within three days.
	if len(likedIDs) > 0 {
		y, m, d := now.Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		imminent, err := s.policyRepo.EarliestDeadline(ctx, likedIDs, today, today.AddDate(0, 0, 3))
		if err != nil {
			return nil, err
		}
		if imminent != nil && imminent.EndDate != nil {
			daysLeft := int(imminent.EndDate.Sub(today).Hours() / 24)
			dday := fmt.Sprintf("D-%d", daysLeft)
			if daysLeft == 0 {
				dday = "오늘 마감"
			}
			alerts = append(alerts, Alert{
				Type:    "deadline",
				Icon:    "🚨",
				Title:   "찜한 정책 마감 임박",
				Message: fmt.Sprintf("'%s' (%s)", imminent.Title, dday),
				Link:    fmt.Sprintf("/mypage.html?policy_id=%d&open_modal=true", imminent.ID),
			})
		}

		// The most-viewed unseen policy in the user's favorite genre.
		topGenre, err := s.actionRepo.TopGenre(ctx, userEmail)
		if err != nil {
			return nil, err
		}
		if topGenre != "" {
			rec, err := s.policyRepo.TopViewedByGenreExcluding(ctx, topGenre, likedIDs)
			if err != nil {
				return nil, err
			}
			if rec != nil {
				alerts = append(alerts, Alert{
					Type:    "interest",
					Icon:    "❤️",
					Title:   fmt.Sprintf("'%s' 분야 추천", topGenre),
					Message: fmt.Sprintf("%s님 취향저격! '%s'", user.Name, rec.Title),
					Link:    fmt.Sprintf("/all.html?policy_id=%d&open_modal=true", rec.ID),
				})
			}
		}
	}

	// The region's most-viewed policy.
	localBest, err := s.policyRepo.TopViewedByRegion(ctx, region)
	if err != nil {
		return nil, err
	}
	if localBest != nil {
		alerts = append(alerts, Alert{
			Type:    "best_local",
			Icon:    "🔥",
			Title:   fmt.Sprintf("%s 인기 1위", region),
			Message: fmt.Sprintf("'%s'", localBest.Title),
			Link:    fmt.Sprintf("/all.html?policy_id=%d&open_modal=true", localBest.ID),
		})
	}

	return alerts, nil
}
