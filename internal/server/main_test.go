package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"youthpick/internal/config"
	"youthpick/internal/middleware"
	"youthpick/internal/models"
	"youthpick/internal/repository"
	"youthpick/internal/service"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Policy{},
		&models.UserAction{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// newTestServer wires a Server against an in-memory DB without Redis or the
// Prometheus middleware. Routes are registered per test, scoped to the
// handler under test.
func newTestServer(t *testing.T, db *gorm.DB) *Server {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	cfg := &config.Config{
		Port:          "0",
		JWTSecret:     "test-secret-key-for-handlers",
		AdminUsername: "admin",
		AdminPassword: "secret-admin-pw1",
		Env:           "test",
	}
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	actionRepo := repository.NewActionRepository(db)

	s := &Server{
		config:     cfg,
		db:         db,
		userRepo:   userRepo,
		policyRepo: policyRepo,
		actionRepo: actionRepo,
	}
	s.catalogService = service.NewCatalogService(policyRepo)
	s.actionService = service.NewActionService(actionRepo, policyRepo)
	s.profileService = service.NewProfileService(userRepo, policyRepo, actionRepo)
	s.recommendService = service.NewRecommendService(userRepo, policyRepo, actionRepo)

	return s
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
}
