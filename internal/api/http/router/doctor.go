package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(
	app fiber.Router,
	dh *handler.DoctorHandler,
	tokenRequired fiber.Handler,
	adminRequired fiber.Handler,
) {
	// Both collections read from the same doctor listing.
	app.Get("/doctors", dh.List)

	experts := app.Group("/expertDoctors")
	experts.Get("/", dh.List)
	experts.Get("/:id", dh.GetByID)
	experts.Post("/", dh.Create, tokenRequired, adminRequired)
	experts.Patch("/:id", dh.Update, tokenRequired, adminRequired)
}
