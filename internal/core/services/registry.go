package services

import (
	"fmt"

	"github.com/continuum-hq/model-router/internal/core/domain"
	"github.com/continuum-hq/model-router/internal/core/ports"
)

// StaticRegistry is the immutable, ordered model catalog. It is built once at
// startup and only ever read afterwards, so no locking is needed: publish
// before first use and every later read is safe.
type StaticRegistry struct {
	models []domain.ModelDescriptor
	byID   map[string]int
}

// NewStaticRegistry builds a registry from descriptors, preserving their
// order. Duplicate IDs are a configuration error.
func NewStaticRegistry(models []domain.ModelDescriptor) (ports.ModelRegistry, error) {
	byID := make(map[string]int, len(models))
	for i, m := range models {
		if _, exists := byID[m.ID]; exists {
			return nil, fmt.Errorf("duplicate model id in registry: %q", m.ID)
		}
		byID[m.ID] = i
	}

	owned := make([]domain.ModelDescriptor, len(models))
	copy(owned, models)

	return &StaticRegistry{
		models: owned,
		byID:   byID,
	}, nil
}

func (r *StaticRegistry) Get(id string) (*domain.ModelDescriptor, error) {
	if i, ok := r.byID[id]; ok {
		m := r.models[i]
		return &m, nil
	}
	return nil, fmt.Errorf("model not found: %s", id)
}

// List returns a copy so callers can never mutate the catalog.
func (r *StaticRegistry) List() []domain.ModelDescriptor {
	list := make([]domain.ModelDescriptor, len(r.models))
	copy(list, r.models)
	return list
}

func (r *StaticRegistry) Len() int {
	return len(r.models)
}
