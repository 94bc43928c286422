// Package service contains the application's business logic, orchestrating
// repositories into the operations the handlers expose.
package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"youthpick/internal/models"
	"youthpick/internal/repository"
	"youthpick/internal/taxonomy"
)

// CardDTO is the display record for a policy card.
type CardDTO struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	Image     string `json:"image"`
	Link      string `json:"link"`
	Region    string `json:"region"`
	ColorCode string `json:"colorCode"`
	IsActive  bool   `json:"is_active"`
}

// PolicyDetailDTO is the modal payload for a single policy. It carries both
// the raw field names and the display aliases the card UI expects.
type PolicyDetailDTO struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Desc     string `json:"desc"`
	Genre    string `json:"genre"`
	Category string `json:"category"`
	Period   string `json:"period"`
	Date     string `json:"date"`
	Link     string `json:"link"`
	Image    string `json:"image"`
}

// CardsInput carries the catalog listing filters as sent by the client.
type CardsInput struct {
	Region   string
	Category string
	Keyword  string
	Sort     string
}

type CatalogService struct {
	policyRepo repository.PolicyRepository
}

func NewCatalogService(policyRepo repository.PolicyRepository) *CatalogService {
	return &CatalogService{policyRepo: policyRepo}
}

// catalogFilter translates client filter tokens into a repository filter.
// Region "national"/"전체"/empty means no region filter; category "all"/empty
// means no genre filter.
func catalogFilter(in CardsInput) repository.PolicyFilter {
	filter := repository.PolicyFilter{Keyword: in.Keyword}

	if in.Category != "" && in.Category != "all" {
		filter.Genre = taxonomy.FrontToGenre(in.Category)
	}
	if in.Region != "" && in.Region != "national" && in.Region != "전체" {
		filter.Region = taxonomy.NormalizeRegion(in.Region)
	}
	return filter
}

// Cards returns every policy matching the filters, rendered as display cards.
func (s *CatalogService) Cards(ctx context.Context, in CardsInput) ([]CardDTO, error) {
	policies, err := s.policyRepo.List(ctx, catalogFilter(in), in.Sort, 0, 0)
	if err != nil {
		return nil, err
	}

	cards := make([]CardDTO, 0, len(policies))
	for i := range policies {
		cards = append(cards, cardFromPolicy(&policies[i]))
	}
	return cards, nil
}

// PolicyDetail returns the modal payload for a policy and bumps its view
// counter. The repository layer serves the read through the cache. A missing
// policy degrades to nil rather than an error.
func (s *CatalogService) PolicyDetail(ctx context.Context, id uint) (*PolicyDetailDTO, error) {
	policy, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return nil, nil
		}
		return nil, err
	}

	// Best-effort: a failed bump must not break the read path.
	_ = s.policyRepo.IncrementViewCount(ctx, id)

	return &PolicyDetailDTO{
		ID:       policy.ID,
		Title:    policy.Title,
		Summary:  policy.Summary,
		Desc:     policy.Summary,
		Genre:    policy.Genre,
		Category: policy.Genre,
		Period:   policy.Period,
		Date:     policy.Period,
		Link:     policy.Link,
		Image:    taxonomy.ImageURL(policy.Genre, policy.ID),
	}, nil
}

// SwipeDeck builds the discovery deck: up to three random policies per base
// category, limited to the viewer's region plus nationwide, shuffled.
func (s *CatalogService) SwipeDeck(ctx context.Context, region string, excludeIDs []uint) ([]CardDTO, error) {
	regions := []string{taxonomy.Nationwide}
	if region != "" {
		if label := taxonomy.NormalizeRegion(region); label != taxonomy.Nationwide {
			regions = []string{label, taxonomy.Nationwide}
		}
	}

	var picks []models.Policy
	for _, cat := range taxonomy.BaseCategories {
		policies, err := s.policyRepo.RandomByGenreAndRegions(ctx, cat, regions, excludeIDs, 3)
		if err != nil {
			return nil, err
		}
		picks = append(picks, policies...)
	}

	rand.Shuffle(len(picks), func(i, j int) {
		picks[i], picks[j] = picks[j], picks[i]
	})

	cards := make([]CardDTO, 0, len(picks))
	for i := range picks {
		cards = append(cards, cardFromPolicy(&picks[i]))
	}
	return cards, nil
}

// cardFromPolicy renders a policy row into its display card, applying the
// catalog's placeholder defaults for empty fields.
func cardFromPolicy(p *models.Policy) CardDTO {
	return CardDTO{
		ID:        p.ID,
		Title:     p.Title,
		Desc:      defaultStr(sanitizeSummary(p.Summary), "상세 내용을 확인하세요."),
		Category:  defaultStr(p.Genre, taxonomy.CategoryOther),
		Date:      displayDate(p),
		Image:     taxonomy.ImageURL(p.Genre, p.ID),
		Link:      defaultStr(p.Link, "#"),
		Region:    defaultStr(p.Region, taxonomy.Nationwide),
		ColorCode: taxonomy.GenreColor(p.Genre),
		IsActive:  p.IsActive,
	}
}

// displayDate renders the application window: a formatted deadline when an
// end date exists, the free-form period otherwise, or "상시 모집" (always
// recruiting) when neither is set.
func displayDate(p *models.Policy) string {
	if p.EndDate != nil {
		return p.EndDate.Format("2006.01.02") + " 마감"
	}
	if p.Period != "" {
		return p.Period
	}
	return "상시 모집"
}

func sanitizeSummary(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", "")
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
