package server

import (
	"youthpick/internal/models"
	"youthpick/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCards handles GET /api/cards. It returns every policy matching the
// region/category/keyword filters, rendered as display cards.
func (s *Server) GetCards(c *fiber.Ctx) error {
	in := service.CardsInput{
		Region:   c.Query("region"),
		Category: c.Query("category"),
		Keyword:  c.Query("keyword"),
		Sort:     c.Query("sort"),
	}

	cards, err := s.catalogService.Cards(c.Context(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(cards)
}

// GetPolicyDetail handles GET /api/cards/:id and returns the modal payload.
func (s *Server) GetPolicyDetail(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.catalogService.PolicyDetail(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if detail == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Policy", id))
	}
	return c.JSON(detail)
}

// GetMoreCards handles GET /api/main/more-cards: a fresh swipe deck for the
// region, skipping already-seen policy IDs.
func (s *Server) GetMoreCards(c *fiber.Ctx) error {
	region := c.Query("region")
	excludeIDs := parseIDList(c.Query("exclude_ids"))

	cards, err := s.catalogService.SwipeDeck(c.Context(), region, excludeIDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(cards)
}
