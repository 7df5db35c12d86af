package augment

import (
	"errors"

	"save-editor/core/logger"
	"save-editor/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for augmentations.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the augmentation routes. The neuroflux
// routes register before the :name routes so the literal path wins.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/augmentations")
	group.Get("/", h.HandleList)
	group.Get("/neuroflux", h.HandleNeuroFlux)
	group.Put("/neuroflux", h.HandleUpdateNeuroFlux)
	group.Post("/neuroflux/revert", h.HandleRevertNeuroFlux)
	group.Patch("/:name", h.HandleUpdate)
	group.Post("/:name/revert", h.HandleRevert)
}

// HandleList returns the projected ordinary augmentations.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	augs, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(augs)
}

// HandleNeuroFlux returns the leveled augmentation's level pair.
func (h *Handler) HandleNeuroFlux(c *fiber.Ctx) error {
	levels, err := h.service.NeuroFlux(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(levels)
}

// HandleUpdate changes one ordinary augmentation's status. When the
// change forces a cascade and the request did not confirm it, the plan
// comes back with 428 and nothing is committed.
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var body struct {
		Status    string `json:"status"`
		Confirmed bool   `json:"confirmed"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	status, err := ParseStatus(body.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	plan, err := h.service.Update(c.Context(), c.Params("name"), status, Options{Confirmed: body.Confirmed})
	if err != nil {
		return respondPlanError(c, h.logger, plan, err)
	}
	return c.JSON(plan)
}

// HandleRevert restores one ordinary augmentation to baseline, subject
// to the same cascade confirmation as a forward edit.
func (h *Handler) HandleRevert(c *fiber.Ctx) error {
	var body struct {
		Confirmed bool `json:"confirmed"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	plan, err := h.service.Revert(c.Context(), c.Params("name"), Options{Confirmed: body.Confirmed})
	if err != nil {
		return respondPlanError(c, h.logger, plan, err)
	}
	return c.JSON(plan)
}

// HandleUpdateNeuroFlux sets the leveled augmentation's level pair.
func (h *Handler) HandleUpdateNeuroFlux(c *fiber.Ctx) error {
	var body struct {
		Installed int `json:"installed"`
		Queued    int `json:"queued"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	levels, err := h.service.UpdateNeuroFlux(c.Context(), body.Installed, body.Queued)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(levels)
}

// HandleRevertNeuroFlux restores the leveled augmentation to baseline.
func (h *Handler) HandleRevertNeuroFlux(c *fiber.Ctx) error {
	levels, err := h.service.RevertNeuroFlux(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(levels)
}

func respondPlanError(c *fiber.Ctx, l *zap.Logger, plan Plan, err error) error {
	if errors.Is(err, ErrConfirmationRequired) {
		return c.Status(fiber.StatusPreconditionRequired).JSON(fiber.Map{
			"error": err.Error(),
			"plan":  plan,
		})
	}
	return respondError(c, l, err)
}

func respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, session.ErrNoSession) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(l, c).Error("Augmentation request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
