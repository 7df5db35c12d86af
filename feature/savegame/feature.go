package savegame

import (
	"save-editor/core/audit"
	"save-editor/core/session"
	"save-editor/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the session lifecycle into the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the savegame feature. store may be nil when object
// storage is not configured.
func NewFeature(sessions *session.Manager, store storage.Client, storageCfg storage.Config, logger *zap.Logger, recorder *audit.Recorder) *Feature {
	service := NewService(sessions, store, storageCfg, logger, recorder)
	return &Feature{handler: NewHandler(service, logger)}
}

// Name identifies the feature.
func (f *Feature) Name() string { return "savegame" }

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
