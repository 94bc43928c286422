package service

import (
	"context"
	"time"

	"youthpick/internal/models"
	"youthpick/internal/repository"
	"youthpick/internal/taxonomy"
)

// RecordActionInput is a single swipe or modal action.
type RecordActionInput struct {
	UserEmail string
	PolicyID  uint
	Type      string
}

// LikesInput narrows and pages the user's liked-policy list.
type LikesInput struct {
	UserEmail string
	Page      int
	Limit     int
	Keyword   string
	Category  string
	Region    string
	Sort      string
}

// LikedPolicyDTO is a liked policy as shown on the my-page grid.
type LikedPolicyDTO struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Genre    string `json:"genre"`
	Period   string `json:"period"`
	Image    string `json:"image"`
	Link     string `json:"link"`
	Region   string `json:"region"`
	IsActive bool   `json:"is_active"`
}

// LikesPage is one page of the liked-policy list.
type LikesPage struct {
	Policies    []LikedPolicyDTO `json:"policies"`
	TotalCount  int64            `json:"total_count"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
}

type ActionService struct {
	actionRepo repository.ActionRepository
	policyRepo repository.PolicyRepository
}

func NewActionService(actionRepo repository.ActionRepository, policyRepo repository.PolicyRepository) *ActionService {
	return &ActionService{actionRepo: actionRepo, policyRepo: policyRepo}
}

// Record applies a like, pass or unlike. Likes are idempotent; unlike removes
// every matching like row; passes always append.
func (s *ActionService) Record(ctx context.Context, in RecordActionInput) (string, error) {
	if in.UserEmail == "" {
		return "", models.NewValidationError("user_email is required")
	}
	if in.PolicyID == 0 {
		return "", models.NewValidationError("policy_id is required")
	}

	switch in.Type {
	case "unlike":
		if err := s.actionRepo.Unlike(ctx, in.UserEmail, in.PolicyID); err != nil {
			return "", err
		}
		return "Like removed", nil
	case models.ActionLike:
		created, err := s.actionRepo.RecordLike(ctx, in.UserEmail, in.PolicyID)
		if err != nil {
			return "", err
		}
		if !created {
			return "Already liked", nil
		}
		return "Action saved", nil
	case models.ActionPass:
		if err := s.actionRepo.RecordPass(ctx, in.UserEmail, in.PolicyID); err != nil {
			return "", err
		}
		return "Action saved", nil
	default:
		return "", models.NewValidationError("type must be one of like, pass, unlike")
	}
}

// Check reports whether the user has liked the policy.
func (s *ActionService) Check(ctx context.Context, userEmail string, policyID uint) (bool, error) {
	return s.actionRepo.HasLiked(ctx, userEmail, policyID)
}

// Likes returns the user's liked policies, filtered, sorted and paginated.
// The page number is clamped into [1, total_pages]. Without an explicit sort
// the list keeps like-recency order; duplicate likes of the same policy are
// collapsed to the most recent one.
func (s *ActionService) Likes(ctx context.Context, in LikesInput) (*LikesPage, error) {
	if in.UserEmail == "" {
		return nil, models.NewValidationError("user_email is required")
	}
	limit := in.Limit
	if limit <= 0 {
		limit = 12
	}

	actions, err := s.actionRepo.ListLikes(ctx, in.UserEmail, 0, 0)
	if err != nil {
		return nil, err
	}

	// Dedupe by policy preserving recency order.
	likedIDs := make([]uint, 0, len(actions))
	seen := make(map[uint]struct{}, len(actions))
	for _, a := range actions {
		if _, ok := seen[a.PolicyID]; ok {
			continue
		}
		seen[a.PolicyID] = struct{}{}
		likedIDs = append(likedIDs, a.PolicyID)
	}

	if len(likedIDs) == 0 {
		return &LikesPage{
			Policies:    []LikedPolicyDTO{},
			TotalCount:  0,
			TotalPages:  0,
			CurrentPage: in.Page,
		}, nil
	}

	filter := catalogFilter(CardsInput{
		Region:   in.Region,
		Category: in.Category,
		Keyword:  in.Keyword,
	})
	filter.IDs = likedIDs

	policies, err := s.policyRepo.List(ctx, filter, in.Sort, 0, 0)
	if err != nil {
		return nil, err
	}

	if in.Sort == "" {
		// Restore like-recency order, which the repository sort discarded.
		byID := make(map[uint]*models.Policy, len(policies))
		for i := range policies {
			byID[policies[i].ID] = &policies[i]
		}
		ordered := make([]models.Policy, 0, len(policies))
		for _, id := range likedIDs {
			if p, ok := byID[id]; ok {
				ordered = append(ordered, *p)
			}
		}
		policies = ordered
	}

	totalCount := int64(len(policies))
	if totalCount == 0 {
		return &LikesPage{
			Policies:    []LikedPolicyDTO{},
			TotalCount:  0,
			TotalPages:  0,
			CurrentPage: in.Page,
		}, nil
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	page := in.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if end > len(policies) {
		end = len(policies)
	}

	now := time.Now()
	dtos := make([]LikedPolicyDTO, 0, end-start)
	for i := start; i < end; i++ {
		p := &policies[i]
		dtos = append(dtos, LikedPolicyDTO{
			ID:       p.ID,
			Title:    p.Title,
			Summary:  defaultStr(p.Summary, "상세 내용을 확인하세요."),
			Genre:    defaultStr(p.Genre, taxonomy.CategoryOther),
			Period:   displayDate(p),
			Image:    taxonomy.ImageURL(p.Genre, p.ID),
			Link:     defaultStr(p.Link, "#"),
			Region:   defaultStr(p.Region, taxonomy.Nationwide),
			IsActive: p.Active(now),
		})
	}

	return &LikesPage{
		Policies:    dtos,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// BulkDelete removes the user's likes for the given policies and returns how
// many ledger rows were deleted.
func (s *ActionService) BulkDelete(ctx context.Context, userEmail string, policyIDs []uint) (int64, error) {
	if userEmail == "" {
		return 0, models.NewValidationError("user_email is required")
	}
	return s.actionRepo.BulkDeleteLikes(ctx, userEmail, policyIDs)
}
