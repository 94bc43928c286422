package server

import (
	"youthpick/internal/models"
	"youthpick/internal/persona"
	"youthpick/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SaveAction handles POST /api/mypage/action: a like, pass or unlike event.
func (s *Server) SaveAction(c *fiber.Ctx) error {
	var req struct {
		PolicyID uint   `json:"policy_id"`
		Type     string `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.actionService.Record(c.Context(), service.RecordActionInput{
		UserEmail: userEmail(c),
		PolicyID:  req.PolicyID,
		Type:      req.Type,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

// CheckAction handles GET /api/mypage/action/check?policy_id=N and reports
// whether the user has liked the policy.
func (s *Server) CheckAction(c *fiber.Ctx) error {
	policyID := c.QueryInt("policy_id", 0)
	if policyID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("policy_id is required"))
	}

	liked, err := s.actionService.Check(c.Context(), userEmail(c), uint(policyID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"liked": liked})
}

// GetLikes handles GET /api/mypage/likes: the liked-policy grid with
// filtering, sorting and pagination.
func (s *Server) GetLikes(c *fiber.Ctx) error {
	p := parsePagination(c, 12)

	page, err := s.actionService.Likes(c.Context(), service.LikesInput{
		UserEmail: userEmail(c),
		Page:      p.Page,
		Limit:     p.Limit,
		Keyword:   c.Query("keyword"),
		Category:  c.Query("category"),
		Region:    c.Query("region"),
		Sort:      c.Query("sort"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// DeleteLikes handles POST /api/mypage/likes/delete: bulk unlike.
func (s *Server) DeleteLikes(c *fiber.Ctx) error {
	var req struct {
		PolicyIDs []uint `json:"policy_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	deleted, err := s.actionService.BulkDelete(c.Context(), userEmail(c), req.PolicyIDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":       "Likes deleted",
		"deleted_count": deleted,
	})
}

// GetProfile handles GET /api/mypage/profile: identity, activity standing
// and the derived policy persona.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	email := userEmail(c)

	profile, err := s.profileService.Profile(c.Context(), email)
	if err != nil {
		return respondServiceError(c, err)
	}

	p, err := s.profileService.Persona(c.Context(), email)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(struct {
		*service.ProfileDTO
		Persona *persona.Persona `json:"persona"`
	}{profile, p})
}

// UpdateProfileIcon handles POST /api/mypage/profile/icon.
func (s *Server) UpdateProfileIcon(c *fiber.Ctx) error {
	var req struct {
		IconName string `json:"icon_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	icon, err := s.profileService.UpdateIcon(c.Context(), userEmail(c), req.IconName)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      "Profile icon updated",
		"profile_icon": icon,
	})
}

// GetStats handles GET /api/mypage/stats: the per-category interest chart.
func (s *Server) GetStats(c *fiber.Ctx) error {
	stats, err := s.profileService.Stats(c.Context(), userEmail(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}
