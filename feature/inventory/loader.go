package inventory

import (
	"inventory-tracker/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new inventory feature.
func NewFeature(store Store, client storage.Client, bucket string, logger *zap.Logger, dateLayout string) *Feature {
	svc := NewService(store, client, bucket, logger, dateLayout)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service to commands and the scheduler.
func (f *Feature) Service() *Service {
	return f.service
}
