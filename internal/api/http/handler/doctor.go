package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/model"
	"github.com/doctorshouse/backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

// GET /doctors and GET /expertDoctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	doctors, err := h.svc.List(c.Context())
	if err != nil {
		slog.Error("list doctors failed", "error", err)
		return internalError(c)
	}

	return c.JSON(doctors)
}

// GET /expertDoctors/:id
func (h *DoctorHandler) GetByID(c fiber.Ctx) error {
	d, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, doctor.ErrInvalidID):
			return badRequest(c, "invalid doctor id")
		case errors.Is(err, doctor.ErrNotFound):
			return notFound(c, "doctor not found")
		default:
			slog.Error("get doctor failed", "error", err)
			return internalError(c)
		}
	}

	return c.JSON(d)
}

// POST /expertDoctors  (admin-only)
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body model.Doctor
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.Create(c.Context(), body)
	if err != nil {
		if errors.Is(err, doctor.ErrNameRequired) {
			return badRequest(c, err.Error())
		}
		slog.Error("create doctor failed", "error", err)
		return internalError(c)
	}

	return c.JSON(result)
}

// PATCH /expertDoctors/:id  (admin-only)
func (h *DoctorHandler) Update(c fiber.Ctx) error {
	var fields map[string]any
	if err := c.Bind().JSON(&fields); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Update(c.Context(), c.Params("id"), fields); err != nil {
		switch {
		case errors.Is(err, doctor.ErrInvalidID):
			return badRequest(c, "invalid doctor id")
		case errors.Is(err, doctor.ErrNoFields):
			return badRequest(c, err.Error())
		case errors.Is(err, doctor.ErrNotFound):
			return notFound(c, "doctor not found")
		default:
			slog.Error("update doctor failed", "error", err)
			return internalError(c)
		}
	}

	return c.JSON(fiber.Map{"message": "doctor updated successfully"})
}
