package server

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"youthpick/internal/middleware"
	"youthpick/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAdminRoutes(s *Server) *fiber.App {
	app := fiber.New()
	admin := app.Group("/api/admin")
	admin.Post("/login", s.AdminLogin)
	admin.Post("/logout", s.AdminLogout)

	protected := admin.Group("", middleware.AdminRequired)
	protected.Get("/dashboard", s.AdminDashboard)
	protected.Get("/users", s.AdminListUsers)
	protected.Put("/users/:id", s.AdminUpdateUser)
	protected.Get("/policies", s.AdminListPolicies)
	protected.Put("/policies/:id", s.AdminUpdatePolicy)
	protected.Delete("/policies/:id", s.AdminDeletePolicy)
	return app
}

func adminCookie(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{
		Name:  middleware.AdminSessionCookie,
		Value: middleware.AdminSessionValid,
	})
	return req
}

func TestAdminLogin(t *testing.T) {
	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)
	app := registerAdminRoutes(s)

	t.Run("Wrong credentials", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/admin/login",
			map[string]string{"username": "admin", "password": "nope"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("Success sets session cookie", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/admin/login",
			map[string]string{"username": s.config.AdminUsername, "password": s.config.AdminPassword}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var sessionCookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == middleware.AdminSessionCookie {
				sessionCookie = c
			}
		}
		require.NotNil(t, sessionCookie)
		assert.Equal(t, middleware.AdminSessionValid, sessionCookie.Value)
		assert.True(t, sessionCookie.HttpOnly)
		_ = resp.Body.Close()
	})

	t.Run("Gate rejects missing cookie", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/admin/dashboard", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		_ = resp.Body.Close()
	})
}

func TestAdminDashboard(t *testing.T) {
	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)
	app := registerAdminRoutes(s)

	require.NoError(t, db.Create(&[]models.User{
		{Email: "a@example.com", Name: "A", Region: "서울", SubscriptionLevel: models.SubscriptionFree},
		{Email: "b@example.com", Name: "B", Region: "부산", SubscriptionLevel: models.SubscriptionPremium},
	}).Error)
	require.NoError(t, db.Create(&[]models.Policy{
		{Title: "정책 1", Genre: "취업/직무", Region: "서울", Summary: "요약", IsActive: true},
		{Title: "정책 2", Genre: "주거/자립", Region: "부산", IsActive: true},
	}).Error)
	require.NoError(t, db.Create(&models.UserAction{
		UserEmail: "a@example.com", PolicyID: 1, Type: models.ActionLike,
	}).Error)

	resp, err := app.Test(adminCookie(jsonRequest(t, http.MethodGet, "/api/admin/dashboard", nil)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		TotalUsers    int64 `json:"total_users"`
		TotalPolicies int64 `json:"total_policies"`
		TotalActions  int64 `json:"total_actions"`
		HotPolicies   []struct {
			PolicyID uint  `json:"policy_id"`
			Count    int64 `json:"count"`
		} `json:"hot_policies"`
		SubCounts struct {
			Free    int64 `json:"free"`
			Premium int64 `json:"premium"`
		} `json:"sub_counts"`
		EmptySummaryCount int64 `json:"empty_summary_count"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, int64(2), body.TotalUsers)
	assert.Equal(t, int64(2), body.TotalPolicies)
	assert.Equal(t, int64(1), body.TotalActions)
	require.Len(t, body.HotPolicies, 1)
	assert.Equal(t, uint(1), body.HotPolicies[0].PolicyID)
	assert.Equal(t, int64(1), body.SubCounts.Free)
	assert.Equal(t, int64(1), body.SubCounts.Premium)
	assert.Equal(t, int64(1), body.EmptySummaryCount)
}

func TestAdminListPolicies(t *testing.T) {
	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)
	app := registerAdminRoutes(s)

	require.NoError(t, db.Create(&[]models.Policy{
		{Title: "가 정책", Genre: "취업/직무", Region: "서울", IsActive: true},
		{Title: "나 정책", Genre: "주거/자립", Region: "부산", IsActive: true},
		{Title: "다 정책", Genre: "취업/직무", Region: "전국", IsActive: true},
	}).Error)

	get := func(target string) (int, map[string]any) {
		resp, err := app.Test(adminCookie(jsonRequest(t, http.MethodGet, target, nil)))
		require.NoError(t, err)
		var body map[string]any
		decodeBody(t, resp, &body)
		return resp.StatusCode, body
	}

	t.Run("Defaults to id desc", func(t *testing.T) {
		status, body := get("/api/admin/policies")
		assert.Equal(t, http.StatusOK, status)
		policies := body["policies"].([]any)
		require.Len(t, policies, 3)
		first := policies[0].(map[string]any)
		assert.Equal(t, "다 정책", first["title"])
		assert.Equal(t, float64(3), body["total_count"])
		assert.Equal(t, float64(1), body["total_pages"])
	})

	t.Run("Genre filter and title sort", func(t *testing.T) {
		target := "/api/admin/policies?genres=" + url.QueryEscape("취업/직무") + "&sort=title&order=asc"
		status, body := get(target)
		assert.Equal(t, http.StatusOK, status)
		policies := body["policies"].([]any)
		require.Len(t, policies, 2)
		first := policies[0].(map[string]any)
		assert.Equal(t, "가 정책", first["title"])
	})

	t.Run("Filter options cover the catalog", func(t *testing.T) {
		_, body := get("/api/admin/policies")
		filters := body["filters"].(map[string]any)
		genres := filters["genres"].([]any)
		assert.Len(t, genres, 2)
		regions := filters["regions"].([]any)
		assert.Len(t, regions, 3)
	})
}

func TestAdminUpdatePolicy(t *testing.T) {
	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)
	app := registerAdminRoutes(s)

	end := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	policy := models.Policy{Title: "수정 전", Genre: "취업/직무", Region: "서울", EndDate: &end, IsActive: true}
	require.NoError(t, db.Create(&policy).Error)

	t.Run("Past end date deactivates the policy", func(t *testing.T) {
		req := adminCookie(jsonRequest(t, http.MethodPut, "/api/admin/policies/1",
			map[string]string{"title": "수정 후", "end_date": "2020-01-01"}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		var reloaded models.Policy
		require.NoError(t, db.First(&reloaded, policy.ID).Error)
		assert.Equal(t, "수정 후", reloaded.Title)
		assert.False(t, reloaded.IsActive)
	})

	t.Run("Clearing the end date revives it", func(t *testing.T) {
		req := adminCookie(jsonRequest(t, http.MethodPut, "/api/admin/policies/1",
			map[string]string{"end_date": ""}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		var reloaded models.Policy
		require.NoError(t, db.First(&reloaded, policy.ID).Error)
		assert.Nil(t, reloaded.EndDate)
		assert.True(t, reloaded.IsActive)
	})

	t.Run("Malformed end date", func(t *testing.T) {
		req := adminCookie(jsonRequest(t, http.MethodPut, "/api/admin/policies/1",
			map[string]string{"end_date": "01/01/2026"}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	})
}

func TestAdminUpdateUserAndDeletePolicy(t *testing.T) {
	db := setupHandlerTestDB(t)
	s := newTestServer(t, db)
	app := registerAdminRoutes(s)

	require.NoError(t, db.Create(&models.User{
		Email: "u@example.com", Name: "이전", Region: "서울", SubscriptionLevel: models.SubscriptionFree,
	}).Error)
	require.NoError(t, db.Create(&models.Policy{Title: "삭제 대상", Genre: "기타", Region: "전국"}).Error)

	t.Run("Update user subscription", func(t *testing.T) {
		req := adminCookie(jsonRequest(t, http.MethodPut, "/api/admin/users/1",
			map[string]string{"subscription_level": models.SubscriptionPremium}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		var user models.User
		require.NoError(t, db.First(&user, 1).Error)
		assert.Equal(t, models.SubscriptionPremium, user.SubscriptionLevel)
		assert.Equal(t, "이전", user.Name)
	})

	t.Run("Unknown user", func(t *testing.T) {
		req := adminCookie(jsonRequest(t, http.MethodPut, "/api/admin/users/42",
			map[string]string{"name": "유령"}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("Delete policy", func(t *testing.T) {
		resp, err := app.Test(adminCookie(jsonRequest(t, http.MethodDelete, "/api/admin/policies/1", nil)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		var count int64
		require.NoError(t, db.Model(&models.Policy{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}
