package service

import (
	"context"

	"youthpick/internal/models"
	"youthpick/internal/persona"
	"youthpick/internal/repository"
	"youthpick/internal/taxonomy"
)

// ProfileDTO is the my-page header payload: identity plus activity standing.
type ProfileDTO struct {
	Error         string `json:"error,omitempty"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Region        string `json:"region"`
	RegionBadge   string `json:"region_badge,omitempty"`
	ActivityIndex int    `json:"activity_index"`
	LevelBadge    string `json:"level_badge,omitempty"`
	LikeCount     int64  `json:"like_count"`
	ApplyCount    int    `json:"apply_count"`
	ProfileIcon   string `json:"profile_icon"`
}

// StatsDTO is the category interest chart: parallel label/score slices.
type StatsDTO struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

type ProfileService struct {
	userRepo   repository.UserRepository
	policyRepo repository.PolicyRepository
	actionRepo repository.ActionRepository
}

func NewProfileService(
	userRepo repository.UserRepository,
	policyRepo repository.PolicyRepository,
	actionRepo repository.ActionRepository,
) *ProfileService {
	return &ProfileService{
		userRepo:   userRepo,
		policyRepo: policyRepo,
		actionRepo: actionRepo,
	}
}

// Profile returns the user's identity and activity standing. An unknown email
// yields a marked default object rather than an error, since the session may
// simply be stale.
func (s *ProfileService) Profile(ctx context.Context, userEmail string) (*ProfileDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &ProfileDTO{
			Error:       "User not found",
			Name:        "알 수 없음",
			Region:      "지역 미설정",
			ProfileIcon: "avatar_1",
		}, nil
	}

	region := defaultStr(user.Region, taxonomy.Nationwide)
	searchRegion := taxonomy.NormalizeRegion(region)

	totalPolicies, err := s.policyRepo.CountByRegion(ctx, searchRegion)
	if err != nil {
		return nil, err
	}
	if totalPolicies == 0 {
		totalPolicies = 1
	}

	likeCount, err := s.actionRepo.CountLikes(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	percentage := int(likeCount * 100 / totalPolicies)

	return &ProfileDTO{
		Name:          user.Name,
		Email:         user.Email,
		Region:        region,
		RegionBadge:   "#" + region,
		ActivityIndex: percentage,
		LevelBadge:    levelBadge(percentage),
		LikeCount:     likeCount,
		ApplyCount:    0,
		ProfileIcon:   defaultStr(user.ProfileIcon, "avatar_1"),
	}, nil
}

// levelBadge maps an activity index to its playful title.
func levelBadge(percentage int) string {
	switch {
	case percentage >= 100:
		return "#정책_오지라퍼 🗣️📢"
	case percentage >= 61:
		return "#인간_정책백과 📖"
	case percentage >= 31:
		return "#지원금_사냥꾼 🏹"
	case percentage >= 11:
		return "#혜택_줍줍러 🍬"
	default:
		return "#정책_기웃러 👀"
	}
}

// UpdateIcon sets the user's profile icon. Unlike Profile, a missing user is
// a hard failure here because this is a write path.
func (s *ProfileService) UpdateIcon(ctx context.Context, userEmail, iconName string) (string, error) {
	if iconName == "" {
		return "", models.NewValidationError("icon_name is required")
	}
	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewNotFoundError("User", userEmail)
	}

	user.ProfileIcon = iconName
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}
	return user.ProfileIcon, nil
}

// Stats scores the user's interest per base category: 10 points per like,
// 2 per pass. The six base categories always appear; 기타 is appended only
// when unclassified genres contributed points.
func (s *ProfileService) Stats(ctx context.Context, userEmail string) (*StatsDTO, error) {
	scores := make(map[string]int, len(taxonomy.BaseCategories)+1)
	for _, cat := range taxonomy.BaseCategories {
		scores[cat] = 0
	}

	for actionType, weight := range map[string]int{
		models.ActionLike: 10,
		models.ActionPass: 2,
	} {
		counts, err := s.actionRepo.CountsByBaseGenre(ctx, userEmail, actionType)
		if err != nil {
			return nil, err
		}
		for _, gc := range counts {
			if gc.Genre == "" {
				continue
			}
			key := taxonomy.BaseCategory(gc.Genre)
			scores[key] += int(gc.Count) * weight
		}
	}

	labels := make([]string, 0, len(scores))
	data := make([]int, 0, len(scores))
	for _, cat := range taxonomy.BaseCategories {
		labels = append(labels, cat)
		data = append(data, scores[cat])
	}
	if other, ok := scores[taxonomy.CategoryOther]; ok && other > 0 {
		labels = append(labels, taxonomy.CategoryOther)
		data = append(data, other)
	}

	return &StatsDTO{Labels: labels, Data: data}, nil
}

// Persona derives the user's policy persona from their two most-liked base
// categories. Returns nil with no likes recorded.
func (s *ProfileService) Persona(ctx context.Context, userEmail string) (*persona.Persona, error) {
	counts, err := s.actionRepo.CountsByBaseGenre(ctx, userEmail, models.ActionLike)
	if err != nil {
		return nil, err
	}

	byBase := make(map[string]int, len(taxonomy.BaseCategories))
	for _, gc := range counts {
		if gc.Genre == "" {
			continue
		}
		base := taxonomy.BaseCategory(gc.Genre)
		if base == taxonomy.CategoryOther {
			continue
		}
		byBase[base] += int(gc.Count)
	}

	return persona.FromCounts(byBase), nil
}
