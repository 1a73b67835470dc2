package uniques

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Uniques feature. Syncs started over HTTP run
// until syncCtx is done.
func NewFeature(service *Service, syncCtx context.Context) *Feature {
	return &Feature{service: service, handler: NewHandler(service, syncCtx)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "uniques"
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
