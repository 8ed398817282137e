package errors

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad credentials", ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"unauthenticated", ErrUnauthenticated, fiber.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, fiber.StatusUnauthorized},
		{"token mismatch", ErrTokenMismatch, fiber.StatusUnauthorized},
		{"access denied", ErrAccessDenied, fiber.StatusForbidden},
		{"email in use", ErrEmailAlreadyInUse, fiber.StatusConflict},
		{"invalid role", ErrInvalidRole, fiber.StatusBadRequest},
		{"wrapped sentinel keeps its code", fmt.Errorf("%w: exp claim in the past", ErrInvalidToken), fiber.StatusUnauthorized},
		{"fiber error keeps its code", fiber.NewError(fiber.StatusBadRequest, "nope"), fiber.StatusBadRequest},
		{"unknown errors are internal", fmt.Errorf("connection refused"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}
