package company

import (
	"errors"

	"save-editor/core/logger"
	"save-editor/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for companies.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the company routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/companies")
	group.Get("/", h.HandleList)
	group.Patch("/:name", h.HandleUpdate)
	group.Post("/:name/revert", h.HandleRevert)
}

// HandleList returns the projected company list.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	companies, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(companies)
}

// HandleUpdate applies a partial edit to one company.
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var edit Edit
	if err := c.BodyParser(&edit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.Update(c.Context(), c.Params("name"), edit); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRevert restores one company to its baseline state.
func (h *Handler) HandleRevert(c *fiber.Ctx) error {
	if err := h.service.Revert(c.Context(), c.Params("name")); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, session.ErrNoSession) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(l, c).Error("Company request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
