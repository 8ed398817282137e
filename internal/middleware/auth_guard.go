package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/domain"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/service"
	autherror "github.com/JeongHyeonYang123/RealAssetPJT/internal/errors"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/metrics"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/route"
	"github.com/JeongHyeonYang123/RealAssetPJT/pkg/constant"
)

// AuthGuard is the per-request verification gate. It consults the route
// classifier, verifies the bearer token for protected routes and attaches
// the re-fetched identity to the request. It only guarantees "some valid
// identity"; role checks live on the specific route via RequireRole.
type AuthGuard struct {
	tokens  service.TokenGenerator
	users   domain.UserRepository
	metrics *metrics.Collector
}

func NewAuthGuard(tokens service.TokenGenerator, users domain.UserRepository, m *metrics.Collector) *AuthGuard {
	return &AuthGuard{
		tokens:  tokens,
		users:   users,
		metrics: m,
	}
}

func (g *AuthGuard) Handle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		access := route.Classify(c.Method(), c.Path())
		if access.Level == route.Public {
			return c.Next()
		}

		header := c.Get(constant.AuthorizationHeader)
		if !strings.HasPrefix(header, constant.BearerPrefix) {
			g.metrics.RecordVerification(metrics.OutcomeMissing)
			return autherror.ErrUnauthenticated
		}

		claims, err := g.tokens.Verify(strings.TrimPrefix(header, constant.BearerPrefix), constant.SubjectAccess)
		if err != nil {
			g.metrics.RecordVerification(metrics.OutcomeInvalid)
			return err
		}

		// Fresh lookup instead of trusting token claims: the role may have
		// changed since the token was issued, and the account may be gone.
		user, err := g.users.GetByEmail(c.UserContext(), claims.Email)
		if err != nil {
			return err
		}
		if user == nil {
			g.metrics.RecordVerification(metrics.OutcomeUnknownIdentity)
			return autherror.ErrUnauthenticated
		}

		g.metrics.RecordVerification(metrics.OutcomeSuccess)
		c.Locals(constant.IdentityLocalsKey, user)

		return c.Next()
	}
}

// RequireRole guards a specific route group after the gate has attached an
// identity. A missing identity is a gate misordering, treated as
// unauthenticated rather than a panic.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(constant.IdentityLocalsKey).(*domain.User)
		if !ok {
			return autherror.ErrUnauthenticated
		}
		if user.Role != role {
			return autherror.ErrAccessDenied
		}

		return c.Next()
	}
}

// Identity returns the identity attached by the gate, or nil on public
// routes.
func Identity(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(constant.IdentityLocalsKey).(*domain.User)
	return user
}
