package catalogRepo

import (
	"context"
	"errors"

	"quotely/models"
)

// ErrNotFound is returned for lookups with an unknown service id. The quote
// engine maps it to a validation error; it never silently defaults.
var ErrNotFound = errors.New("service not found in catalog")

// CatalogRepository provides read access to the immutable service catalog.
type CatalogRepository interface {
	GetService(ctx context.Context, id string) (models.ServiceDefinition, error)
	ListServices(ctx context.Context) ([]models.ServiceDefinition, error)
}
