package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(app fiber.Router, ah *handler.AppointmentHandler) {
	appts := app.Group("/appointments")

	appts.Get("/", ah.List)
	appts.Post("/", ah.Toggle)
}
