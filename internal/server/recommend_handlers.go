package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetRecommendStatus handles GET /api/recommend/status. A bearer token is
// optional: anonymous visitors still get the "hot right now" alert.
func (s *Server) GetRecommendStatus(c *fiber.Ctx) error {
	email, _ := s.optionalUserEmail(c)

	alerts, err := s.recommendService.Status(c.Context(), email)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"alerts": alerts})
}
