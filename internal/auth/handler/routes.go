package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JeongHyeonYang123/RealAssetPJT/internal/middleware"
	"github.com/JeongHyeonYang123/RealAssetPJT/pkg/constant"
)

// RegisterRoutes mounts the auth core's own endpoints. The verification gate
// runs app-wide before these; role checks sit on the admin group only.
func RegisterRoutes(app *fiber.App, ah *AuthHandler, uh *UserHandler) {
	auth := app.Group("/api/auth")
	auth.Post("/login", ah.Login)
	auth.Post("/refresh", ah.Refresh)
	auth.Post("/logout", ah.Logout)

	v1 := app.Group("/api/v1")
	v1.Post("/users", uh.Register)
	v1.Get("/users/me", uh.Me)

	admin := v1.Group("/admin", middleware.RequireRole(constant.RoleAdmin))
	admin.Get("/users", uh.ListUsers)
	admin.Patch("/users/:mno/role", uh.UpdateUserRole)
}
