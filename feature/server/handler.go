package server

import (
	"errors"

	"save-editor/core/logger"
	"save-editor/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for servers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the server routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/servers")
	group.Get("/", h.HandleList)
	group.Put("/purchased", h.HandleUpdatePurchased)
	group.Post("/purchased/revert", h.HandleRevertPurchased)
	group.Patch("/:hostname", h.HandleUpdate)
	group.Post("/:hostname/revert", h.HandleRevert)
}

// HandleList returns the projected server list.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	servers, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(servers)
}

// HandleUpdate applies a partial edit to one server.
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var edit Edit
	if err := c.BodyParser(&edit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.Update(c.Context(), c.Params("hostname"), edit); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleUpdatePurchased replaces the purchased-hostname list.
func (h *Handler) HandleUpdatePurchased(c *fiber.Ctx) error {
	var body struct {
		Hostnames []string `json:"hostnames"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.UpdatePurchased(c.Context(), body.Hostnames); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRevert restores one server to its baseline state.
func (h *Handler) HandleRevert(c *fiber.Ctx) error {
	if err := h.service.Revert(c.Context(), c.Params("hostname")); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRevertPurchased restores the purchased list to baseline.
func (h *Handler) HandleRevertPurchased(c *fiber.Ctx) error {
	if err := h.service.RevertPurchased(c.Context()); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, session.ErrNoSession) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(l, c).Error("Server request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
