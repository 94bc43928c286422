package server

import (
	"time"

	"youthpick/internal/middleware"
	"youthpick/internal/models"
	"youthpick/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// AdminLogin handles POST /api/admin/login. Successful logins set the
// back-office session cookie.
func (s *Server) AdminLogin(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username != s.config.AdminUsername || req.Password != s.config.AdminPassword {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid admin credentials"))
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminSessionCookie,
		Value:    middleware.AdminSessionValid,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(12 * time.Hour),
	})

	return c.JSON(fiber.Map{"message": "Admin login successful"})
}

// AdminLogout handles POST /api/admin/logout and clears the session cookie.
func (s *Server) AdminLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AdminSessionCookie,
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// AdminDashboard handles GET /api/admin/dashboard: the back-office overview
// aggregates.
func (s *Server) AdminDashboard(c *fiber.Ctx) error {
	ctx := c.Context()

	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}
	totalPolicies, err := s.policyRepo.Count(ctx, repository.PolicyFilter{})
	if err != nil {
		return respondServiceError(c, err)
	}
	totalActions, err := s.actionRepo.CountAll(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}

	recentActions, err := s.actionRepo.Recent(ctx, 20)
	if err != nil {
		return respondServiceError(c, err)
	}
	hotPolicies, err := s.actionRepo.HotPolicies(ctx, 5)
	if err != nil {
		return respondServiceError(c, err)
	}

	userRegions, err := s.userRepo.CountByRegion(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}
	policyRegions, err := s.policyRepo.RegionCounts(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}

	freeCount, err := s.userRepo.CountBySubscription(ctx, models.SubscriptionFree)
	if err != nil {
		return respondServiceError(c, err)
	}
	premiumCount, err := s.userRepo.CountBySubscription(ctx, models.SubscriptionPremium)
	if err != nil {
		return respondServiceError(c, err)
	}

	emptySummaryCount, err := s.policyRepo.CountEmptySummary(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"total_users":    totalUsers,
		"total_policies": totalPolicies,
		"total_actions":  totalActions,
		"recent_actions": recentActions,
		"hot_policies":   hotPolicies,
		"user_regions":   userRegions,
		"policy_regions": policyRegions,
		"sub_counts": fiber.Map{
			"free":    freeCount,
			"premium": premiumCount,
		},
		"empty_summary_count": emptySummaryCount,
	})
}

// AdminListUsers handles GET /api/admin/users.
func (s *Server) AdminListUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	users, err := s.userRepo.List(c.Context(), p.Limit, (p.Page-1)*p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	total, err := s.userRepo.CountAll(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users":        users,
		"total_count":  total,
		"current_page": p.Page,
	})
}

// AdminUpdateUser handles PUT /api/admin/users/:id. Only the fields present
// in the body are changed.
func (s *Server) AdminUpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name              *string `json:"name"`
		Region            *string `json:"region"`
		SubscriptionLevel *string `json:"subscription_level"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Region != nil {
		user.Region = *req.Region
	}
	if req.SubscriptionLevel != nil {
		user.SubscriptionLevel = *req.SubscriptionLevel
	}

	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User updated",
		"user":    user,
	})
}

// AdminListPolicies handles GET /api/admin/policies: the back-office table
// with search, multi-select facet filters, column sorting and paging.
func (s *Server) AdminListPolicies(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	query := repository.AdminPolicyQuery{
		Q:       c.Query("q"),
		Genres:  parseCSV(c.Query("genres")),
		Regions: parseCSV(c.Query("regions")),
		Sort:    c.Query("sort", "id"),
		Order:   c.Query("order", "desc"),
		Limit:   p.Limit,
		Offset:  (p.Page - 1) * p.Limit,
	}

	policies, total, err := s.policyRepo.AdminList(c.Context(), query)
	if err != nil {
		return respondServiceError(c, err)
	}

	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if totalPages < 1 {
		totalPages = 1
	}

	genres, err := s.policyRepo.DistinctGenres(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	regions, err := s.policyRepo.DistinctRegions(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"policies":     policies,
		"total_count":  total,
		"total_pages":  totalPages,
		"current_page": p.Page,
		"filters": fiber.Map{
			"genres":  genres,
			"regions": regions,
		},
	})
}

// AdminUpdatePolicy handles PUT /api/admin/policies/:id. The end date accepts
// "2006-01-02"; an explicit empty string clears it. IsActive is recomputed
// from the new end date.
func (s *Server) AdminUpdatePolicy(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   *string `json:"title"`
		Summary *string `json:"summary"`
		Period  *string `json:"period"`
		Link    *string `json:"link"`
		Genre   *string `json:"genre"`
		Region  *string `json:"region"`
		EndDate *string `json:"end_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	policy, err := s.policyRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	if req.Title != nil {
		policy.Title = *req.Title
	}
	if req.Summary != nil {
		policy.Summary = *req.Summary
	}
	if req.Period != nil {
		policy.Period = *req.Period
	}
	if req.Link != nil {
		policy.Link = *req.Link
	}
	if req.Genre != nil {
		policy.Genre = *req.Genre
	}
	if req.Region != nil {
		policy.Region = *req.Region
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			policy.EndDate = nil
		} else {
			end, perr := time.Parse("2006-01-02", *req.EndDate)
			if perr != nil {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError("end_date must be formatted as YYYY-MM-DD"))
			}
			policy.EndDate = &end
		}
	}
	policy.IsActive = policy.Active(time.Now())

	if err := s.policyRepo.Update(c.Context(), policy); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Policy updated",
		"policy":  policy,
	})
}

// AdminDeletePolicy handles DELETE /api/admin/policies/:id.
func (s *Server) AdminDeletePolicy(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.policyRepo.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Policy deleted"})
}
