package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/loanlink-service/internal/service"
	apperrors "github.com/spec-kit/loanlink-service/pkg/util"
)

// LoansHandler exposes loan CRUD endpoints.
type LoansHandler struct {
	loans *service.LoanService
}

// NewLoansHandler constructs handler.
func NewLoansHandler(loanService *service.LoanService) *LoansHandler {
	return &LoansHandler{loans: loanService}
}

// Create handles POST /loans. The body is stored as-is apart from the
// status default and creation timestamp.
func (h *LoansHandler) Create(c *fiber.Ctx) error {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return apperrors.NewInvalidInput("invalid payload", nil)
	}

	loan, err := h.loans.Create(c.Context(), fields)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": loan})
}

// List handles GET /loans?limit=. Loans come back newest-first.
func (h *LoansHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	loans, err := h.loans.List(c.Context(), int64(limit))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": loans})
}

// Get handles GET /loans/:id. A missing loan is a null body, not an error.
func (h *LoansHandler) Get(c *fiber.Ctx) error {
	loan, err := h.loans.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if loan == nil {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": loan})
}

// Delete handles DELETE /loans/:id.
func (h *LoansHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.loans.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}
