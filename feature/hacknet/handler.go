package hacknet

import (
	"errors"

	"save-editor/core/logger"
	"save-editor/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for hacknet nodes and the hash ledger.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the hacknet routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/hacknet")
	group.Get("/nodes", h.HandleListNodes)
	group.Patch("/nodes/:name", h.HandleUpdateNode)
	group.Post("/nodes/:name/revert", h.HandleRevertNode)
	group.Get("/hashes", h.HandleLedger)
	group.Put("/hashes", h.HandleUpdateHashes)
	group.Put("/hashes/upgrades/:name", h.HandleUpdateUpgrade)
	group.Post("/hashes/revert", h.HandleRevertLedger)
}

// HandleListNodes returns the projected nodes.
func (h *Handler) HandleListNodes(c *fiber.Ctx) error {
	nodes, err := h.service.ListNodes(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(nodes)
}

// HandleUpdateNode applies a partial edit to one node.
func (h *Handler) HandleUpdateNode(c *fiber.Ctx) error {
	var edit NodeEdit
	if err := c.BodyParser(&edit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.UpdateNode(c.Context(), c.Params("name"), edit); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRevertNode restores one node to baseline.
func (h *Handler) HandleRevertNode(c *fiber.Ctx) error {
	if err := h.service.RevertNode(c.Context(), c.Params("name")); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleLedger returns the projected hash ledger.
func (h *Handler) HandleLedger(c *fiber.Ctx) error {
	ledger, err := h.service.Ledger(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(ledger)
}

// HandleUpdateHashes sets the stored hash count.
func (h *Handler) HandleUpdateHashes(c *fiber.Ctx) error {
	var body struct {
		Hashes float64 `json:"hashes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	hashes, err := h.service.UpdateHashes(c.Context(), body.Hashes)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"hashes": hashes})
}

// HandleUpdateUpgrade sets one hash-upgrade count.
func (h *Handler) HandleUpdateUpgrade(c *fiber.Ctx) error {
	var body struct {
		Count int `json:"count"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	count, err := h.service.UpdateUpgrade(c.Context(), c.Params("name"), body.Count)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleRevertLedger restores the hash manager to baseline.
func (h *Handler) HandleRevertLedger(c *fiber.Ctx) error {
	if err := h.service.RevertLedger(c.Context()); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, session.ErrNoSession) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(l, c).Error("Hacknet request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
