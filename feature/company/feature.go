package company

import (
	"save-editor/core/audit"
	"save-editor/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the company service into the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the company feature.
func NewFeature(sessions *session.Manager, logger *zap.Logger, recorder *audit.Recorder) *Feature {
	service := NewService(sessions, logger, recorder)
	return &Feature{handler: NewHandler(service, logger)}
}

// Name identifies the feature.
func (f *Feature) Name() string { return "company" }

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
