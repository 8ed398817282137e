package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// The auth core never renders error bodies itself; every component fails
// fast with one of these sentinels and the failure normalizer turns it into
// the wire envelope.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	// ErrTokenMismatch means a structurally valid refresh token did not match
	// the stored slot: either a rotated-out token was replayed or a concurrent
	// rotation won the compare-and-swap. Rendered to the client exactly like
	// ErrInvalidToken, logged separately.
	ErrTokenMismatch     = errors.New("refresh token mismatch")
	ErrAccessDenied      = errors.New("access denied")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrInvalidRole       = errors.New("unknown role")
)

// StatusCode maps a failure to its HTTP status. Unknown errors are internal.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenMismatch):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrAccessDenied):
		return fiber.StatusForbidden
	case errors.Is(err, ErrEmailAlreadyInUse):
		return fiber.StatusConflict
	case errors.Is(err, ErrInvalidRole):
		return fiber.StatusBadRequest
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}

	return fiber.StatusInternalServerError
}
