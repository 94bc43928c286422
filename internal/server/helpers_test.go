package server

import (
	"errors"
	"testing"

	"youthpick/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []uint
	}{
		{name: "Empty", raw: "", want: nil},
		{name: "Single", raw: "7", want: []uint{7}},
		{name: "Multiple with spaces", raw: "1, 2,3", want: []uint{1, 2, 3}},
		{name: "Skips garbage", raw: "1,abc,,3", want: []uint{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIDList(tt.raw))
		})
	}
}

func TestParseCSV(t *testing.T) {
	assert.Nil(t, parseCSV(""))
	assert.Equal(t, []string{"취업/직무", "주거/자립"}, parseCSV("취업/직무, 주거/자립"))
	assert.Equal(t, []string{"서울"}, parseCSV(",서울,"))
}

func TestStatusForAppError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Not found", err: models.NewNotFoundError("Policy", 1), want: fiber.StatusNotFound},
		{name: "Validation", err: models.NewValidationError("bad input"), want: fiber.StatusBadRequest},
		{name: "Unauthorized", err: models.NewUnauthorizedError("nope"), want: fiber.StatusUnauthorized},
		{name: "Internal", err: models.NewInternalError(errors.New("boom")), want: fiber.StatusInternalServerError},
		{name: "Plain error", err: errors.New("boom"), want: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForAppError(tt.err))
		})
	}
}
