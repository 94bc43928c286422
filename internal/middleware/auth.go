// Package middleware provides authentication, logging, and rate-limiting
// middleware for the application.
package middleware

import (
	"errors"
	"strings"

	"youthpick/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AdminSessionCookie is the cookie used to gate the back-office routes.
const AdminSessionCookie = "admin_session"

// AdminSessionValid is the static flag value set on successful admin login.
const AdminSessionValid = "valid"

// ParseBearerEmail validates a "Bearer <token>" Authorization header and
// returns the user email carried in the token's subject claim (RFC 7519).
// The error message is suitable for the response body.
func ParseBearerEmail(authHeader, secret string) (string, error) {
	if authHeader == "" {
		return "", errors.New("Authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("Invalid token claims")
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", errors.New("Invalid token subject")
	}
	return email, nil
}

// AuthRequired enforces a valid bearer token for protected routes and stores
// the authenticated user email in c.Locals("userEmail").
func AuthRequired(c *fiber.Ctx) error {
	email, err := ParseBearerEmail(c.Get("Authorization"), cfg.JWTSecret)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Locals("userEmail", email)

	return c.Next()
}

// AdminRequired gates back-office routes on the admin session cookie set by
// the admin login handler.
func AdminRequired(c *fiber.Ctx) error {
	if c.Cookies(AdminSessionCookie) != AdminSessionValid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Admin session required",
		})
	}
	return c.Next()
}
