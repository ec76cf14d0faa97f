package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/loanlink-service/internal/api/dto"
	"github.com/spec-kit/loanlink-service/internal/domain"
	"github.com/spec-kit/loanlink-service/internal/service"
	apperrors "github.com/spec-kit/loanlink-service/pkg/util"
)

// ApplicationsHandler exposes loan-application endpoints, including the
// manager review routes.
type ApplicationsHandler struct {
	applications *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applicationService}
}

// Create handles POST /loan-applications. Status is forced to Pending.
func (h *ApplicationsHandler) Create(c *fiber.Ctx) error {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}

	application, err := h.applications.Create(c.Context(), fields)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": application})
}

// List handles GET /loan-applications?email=&status=.
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	applications, err := h.applications.List(c.Context(), c.Query("email"), c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applications})
}

// Get handles GET /loan-applications/:id.
func (h *ApplicationsHandler) Get(c *fiber.Ctx) error {
	application, err := h.applications.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": application})
}

// UpdateStatus handles PATCH /loan-applications/:id and
// PATCH /application-status/:id (manager/admin).
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewInvalidInput("status required", nil)
	}

	if err := h.applications.UpdateStatus(c.Context(), c.Params("id"), req.Status, req.Feedback); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Application status updated"})
}

// Pending handles GET /pending-applications (manager/admin).
func (h *ApplicationsHandler) Pending(c *fiber.Ctx) error {
	applications, err := h.applications.ListByStatus(c.Context(), domain.StatusPending)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applications})
}

// Approved handles GET /approved-applications (manager/admin).
func (h *ApplicationsHandler) Approved(c *fiber.Ctx) error {
	applications, err := h.applications.ListByStatus(c.Context(), domain.StatusApproved)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applications})
}
