package faction

import (
	"errors"

	"save-editor/core/logger"
	"save-editor/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for factions.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the faction routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/factions")
	group.Get("/", h.HandleList)
	group.Patch("/:name", h.HandleUpdate)
	group.Post("/:name/revert", h.HandleRevert)
}

// HandleList returns the projected faction list.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	factions, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(factions)
}

// HandleUpdate applies a partial edit to one faction.
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

// HandleRevert restores one faction to its baseline state.
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
	logger.WithRayID(l, c).Error("Faction request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
