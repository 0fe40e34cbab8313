package catalogRepo

import (
	"context"

	"quotely/models"
)

type memoryCatalogRepo struct {
	order []string
	byID  map[string]models.ServiceDefinition
}

// NewMemoryCatalogRepo returns a CatalogRepository over a static set of
// definitions. With no arguments it serves the default catalog.
func NewMemoryCatalogRepo(defs ...models.ServiceDefinition) CatalogRepository {
	if len(defs) == 0 {
		defs = DefaultCatalog()
	}
	repo := &memoryCatalogRepo{
		order: make([]string, 0, len(defs)),
		byID:  make(map[string]models.ServiceDefinition, len(defs)),
	}
	for _, def := range defs {
		repo.order = append(repo.order, def.ID)
		repo.byID[def.ID] = def
	}
	return repo
}

func (r *memoryCatalogRepo) GetService(_ context.Context, id string) (models.ServiceDefinition, error) {
	def, ok := r.byID[id]
	if !ok {
		return models.ServiceDefinition{}, ErrNotFound
	}
	return def, nil
}

func (r *memoryCatalogRepo) ListServices(_ context.Context) ([]models.ServiceDefinition, error) {
	defs := make([]models.ServiceDefinition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.byID[id])
	}
	return defs, nil
}
