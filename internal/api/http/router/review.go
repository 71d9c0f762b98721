package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/api/http/handler"
)

func (r *Router) registerReviewRoutes(
	app fiber.Router,
	rh *handler.ReviewHandler,
	tokenRequired fiber.Handler,
) {
	reviews := app.Group("/reviews")

	reviews.Get("/", rh.List)
	reviews.Post("/", rh.Create, tokenRequired)
}
