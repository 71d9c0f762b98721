package handler

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"github.com/doctorshouse/backend/internal/model"
	"github.com/doctorshouse/backend/internal/service/user"
	"github.com/doctorshouse/backend/pkg/token"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /users  (admin-only)
func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.svc.List(c.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		return internalError(c)
	}

	return c.JSON(users)
}

// GET /users/admin/:email  (authenticated, self-only)
//
// The path email must match the token's email regardless of role, so an
// authenticated user cannot probe another user's admin status.
func (h *UserHandler) AdminStatus(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	email, err := url.PathUnescape(c.Params("email"))
	if err != nil || email == "" {
		return badRequest(c, "invalid email")
	}

	if email != claims.Email {
		return forbidden(c)
	}

	admin, err := h.svc.IsAdmin(c.Context(), email)
	if err != nil {
		slog.Error("admin status lookup failed", "error", err)
		return internalError(c)
	}

	return c.JSON(fiber.Map{"admin": admin})
}

// POST /users
func (h *UserHandler) Register(c fiber.Ctx) error {
	var body model.User
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.Register(c.Context(), body)
	if err != nil {
		if errors.Is(err, user.ErrEmailRequired) {
			return badRequest(c, err.Error())
		}
		slog.Error("register user failed", "error", err)
		return internalError(c)
	}

	return c.JSON(result)
}

// PATCH /users/admin/:id  (admin-only)
func (h *UserHandler) PromoteAdmin(c fiber.Ctx) error {
	if err := h.svc.PromoteAdmin(c.Context(), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidID):
			return badRequest(c, "invalid user id")
		case errors.Is(err, user.ErrNotFound):
			return notFound(c, "user not found")
		default:
			slog.Error("promote user failed", "error", err)
			return internalError(c)
		}
	}

	return c.JSON(fiber.Map{"message": "user promoted to admin", "modifiedCount": 1})
}
