package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	autherror "github.com/JeongHyeonYang123/RealAssetPJT/internal/errors"
)

// ErrorEnvelope is the single error body shape the service emits. No other
// component renders errors.
type ErrorEnvelope struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	Path      string `json:"path"`
	Method    string `json:"method"`
	Timestamp int64  `json:"timestamp"`
}

// NewErrorHandler builds the fiber error handler wrapping the whole chain.
// It normalizes every failure, from the gate, the handlers or downstream,
// into ErrorEnvelope with the mapped status code.
func NewErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := autherror.StatusCode(err)
		env := ErrorEnvelope{
			Status:    status,
			Path:      c.Path(),
			Method:    c.Method(),
			Timestamp: time.Now().UnixMilli(),
		}

		switch {
		case errors.Is(err, autherror.ErrTokenMismatch):
			// The replay signal stays in the log; the client cannot tell a
			// mismatched token from a malformed one.
			log.Warnw("refresh token mismatch",
				"path", c.Path(), "method", c.Method(), "ip", c.IP())
			env.Message = autherror.ErrInvalidToken.Error()
		case errors.Is(err, autherror.ErrInvalidToken):
			env.Message = autherror.ErrInvalidToken.Error()
		case errors.Is(err, autherror.ErrInvalidCredentials):
			env.Message = autherror.ErrInvalidCredentials.Error()
		case errors.Is(err, autherror.ErrUnauthenticated):
			env.Message = autherror.ErrUnauthenticated.Error()
		case status == fiber.StatusInternalServerError:
			log.Errorw("unhandled error",
				"path", c.Path(), "method", c.Method(), "error", err)
			env.Message = "internal server error"
			env.Error = fmt.Sprintf("%T", err)
		default:
			env.Message = err.Error()
		}

		return c.Status(status).JSON(env)
	}
}
