package ports

import "github.com/continuum-hq/model-router/internal/core/domain"

// ModelRegistry is the read-only catalog of invokable models. Implementations
// are built once at startup and must be safe for concurrent reads.
type ModelRegistry interface {
	// Get returns the descriptor for a model ID.
	Get(id string) (*domain.ModelDescriptor, error)

	// List returns all descriptors in registry order.
	List() []domain.ModelDescriptor

	// Len returns the number of registered descriptors.
	Len() int
}
