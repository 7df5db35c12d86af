package job

import (
	"errors"

	"save-editor/core/logger"
	"save-editor/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for jobs.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the job routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/jobs")
	group.Get("/", h.HandleList)
	group.Put("/:company", h.HandleUpdate)
	group.Post("/:company/revert", h.HandleRevert)
}

// HandleList returns the projected job list.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(jobs)
}

// HandleUpdate sets or clears the job at one company.
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var body struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.Update(c.Context(), c.Params("company"), body.Title); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRevert restores the job at one company to baseline.
func (h *Handler) HandleRevert(c *fiber.Ctx) error {
	if err := h.service.Revert(c.Context(), c.Params("company")); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, session.ErrNoSession) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(l, c).Error("Job request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
