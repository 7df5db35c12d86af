package savegame

import (
	"errors"
	"fmt"
	"io"

	"save-editor/core/codec"
	"save-editor/core/logger"
	"save-editor/core/savefile"
	"save-editor/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the session lifecycle.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/save")
	group.Post("/load", h.HandleLoad)
	group.Post("/load/storage", h.HandleLoadStorage)
	group.Get("/list", h.HandleList)
	group.Get("/status", h.HandleStatus)
	group.Post("/revert", h.HandleRevertAll)
	group.Get("/export", h.HandleExport)
	group.Get("/audit", h.HandleAudit)
}

// HandleLoad installs a session from an uploaded save file.
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file upload"})
	}
	file, err := header.Open()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	status, err := h.service.Load(c.Context(), header.Filename, raw)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(status)
}

// HandleLoadStorage installs a session from a save object in the
// configured bucket.
func (h *Handler) HandleLoadStorage(c *fiber.Ctx) error {
	var body struct {
		Object string `json:"object"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if body.Object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "object is required"})
	}
	status, err := h.service.LoadFromStorage(c.Context(), body.Object)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(status)
}

// HandleList lists save objects available in the configured bucket.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	names, err := h.service.ListSaves(c.Context(), c.Query("prefix"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(fiber.Map{"saves": names})
}

// HandleStatus reports the live session.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	status, err := h.service.Status(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(status)
}

// HandleRevertAll discards every edit.
func (h *Handler) HandleRevertAll(c *fiber.Ctx) error {
	if err := h.service.RevertAll(c.Context()); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleExport downloads the re-encoded working document.
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	export, err := h.service.Export(c.Context(), c.QueryBool("backup"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	if export.BackupObject != "" {
		c.Set("X-Backup-Object", export.BackupObject)
	}
	return c.Send(export.Data)
}

// HandleAudit returns the latest audit entries for the live session.
func (h *Handler) HandleAudit(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	entries, err := h.service.Audit(c.Context(), limit)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(entries)
}

func respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, codec.ErrUnrecognizedFormat), errors.Is(err, savefile.ErrInvalidContainer):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrStorageDisabled):
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(l, c).Error("Session request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
