package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	return &Config{
		Port:          "8000",
		JWTSecret:     "secure-secret-at-least-32-chars-long",
		DBPassword:    "secure-password",
		DBSSLMode:     "require",
		AdminPassword: "a-real-admin-password",
		Env:           "test",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid test config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Short JWT secret outside production", func(c *Config) { c.JWTSecret = "short" }, false},
		{"Default JWT secret in production", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Short JWT secret in production", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"Default DB password in production", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "postgres"
		}, true},
		{"Default admin password in production", func(c *Config) {
			c.Env = "prod"
			c.AdminPassword = "password123"
		}, true},
		{"Strong secrets in production", func(c *Config) { c.Env = "production" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validTestConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
