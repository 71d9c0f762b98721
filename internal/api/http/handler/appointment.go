package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	appts, err := h.svc.List(c.Context())
	if err != nil {
		slog.Error("list appointments failed", "error", err)
		return internalError(c)
	}

	return c.JSON(appts)
}

// POST /appointments
//
// The booking toggle: the same (email, date, time) tuple alternates between
// creating and cancelling a reservation.
func (h *AppointmentHandler) Toggle(c fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Date     string `json:"date"`
		Time     string `json:"time"`
		DoctorID string `json:"doctorId"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.Toggle(c.Context(), appointment.ToggleRequest{
		Name:     body.Name,
		Email:    body.Email,
		Date:     body.Date,
		Time:     body.Time,
		DoctorID: body.DoctorID,
	})
	if err != nil {
		if errors.Is(err, appointment.ErrMissingFields) {
			return badRequest(c, "missing required fields")
		}
		slog.Error("appointment toggle failed", "error", err)
		return internalError(c)
	}

	if result.Cancelled != nil {
		return c.JSON(fiber.Map{
			"message":              "appointment cancelled",
			"cancelledAppointment": result.Cancelled,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "appointment booked successfully",
		"insertedId":  result.Created.ID,
		"appointment": result.Created,
	})
}
