package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(app fiber.Router, ah *handler.AuthHandler) {
	app.Post("/jwt", ah.IssueToken)
}
