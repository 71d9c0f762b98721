package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(
	app fiber.Router,
	uh *handler.UserHandler,
	tokenRequired fiber.Handler,
	adminRequired fiber.Handler,
) {
	users := app.Group("/users")

	users.Get("/", uh.List, tokenRequired, adminRequired)
	users.Post("/", uh.Register)

	// The :email route is self-only and deliberately skips the admin gate;
	// any authenticated user may query their own status.
	users.Get("/admin/:email", uh.AdminStatus, tokenRequired)
	users.Patch("/admin/:id", uh.PromoteAdmin, tokenRequired, adminRequired)
}
