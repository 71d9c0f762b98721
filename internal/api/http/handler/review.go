package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/model"
	"github.com/doctorshouse/backend/internal/service/review"
)

type ReviewHandler struct {
	svc review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// GET /reviews
func (h *ReviewHandler) List(c fiber.Ctx) error {
	reviews, err := h.svc.List(c.Context())
	if err != nil {
		slog.Error("list reviews failed", "error", err)
		return internalError(c)
	}

	return c.JSON(reviews)
}

// POST /reviews  (authenticated)
func (h *ReviewHandler) Create(c fiber.Ctx) error {
	var body model.Review
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := h.svc.Create(c.Context(), body)
	if err != nil {
		if errors.Is(err, review.ErrNameRequired) {
			return badRequest(c, err.Error())
		}
		slog.Error("create review failed", "error", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id})
}
