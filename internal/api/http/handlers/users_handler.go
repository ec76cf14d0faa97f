package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/loanlink-service/internal/api/dto"
	"github.com/spec-kit/loanlink-service/internal/auth"
	"github.com/spec-kit/loanlink-service/internal/service"
	apperrors "github.com/spec-kit/loanlink-service/pkg/util"
)

// UsersHandler exposes registration, login, and admin account management.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Register handles POST /users and POST /users/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewInvalidInput("name, email, password required", nil)
	}

	user, err := h.users.Register(c.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": user})
}

// Login handles POST /users/login. The issued token is returned in the body
// and set as the token cookie picked up by the credential verifier.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewInvalidInput("email and password required", nil)
	}

	user, token, exp, err := h.users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"data": fiber.Map{
		"user": user,
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	}})
}

// List handles GET /users (admin).
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": users, "count": len(users)})
}

// GetByEmail handles GET /users/:email (admin).
func (h *UsersHandler) GetByEmail(c *fiber.Ctx) error {
	user, err := h.users.GetByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": user})
}

// UpdateRole handles PATCH /users/role/:id (admin).
func (h *UsersHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}
	if req.Role == "" {
		return apperrors.NewInvalidInput("role required", nil)
	}

	if err := h.users.UpdateRole(c.Context(), c.Params("id"), req.Role); err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "User role updated"})
}

// Suspend handles PATCH /users/suspend/:id (admin). The same flag value may
// be set repeatedly without error.
func (h *UsersHandler) Suspend(c *fiber.Ctx) error {
	var req dto.SuspendRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}
	if req.Suspended == nil {
		return apperrors.NewInvalidInput("suspended required", nil)
	}

	if err := h.users.SetSuspension(c.Context(), c.Params("id"), *req.Suspended, req.Reason); err != nil {
		return err
	}

	message := "User unsuspended"
	if *req.Suspended {
		message = "User suspended"
	}
	return c.JSON(fiber.Map{"message": message})
}
