package ports

import "github.com/continuum-hq/model-router/internal/core/domain"

// ModelSelector defines the routing logic over the registry.
type ModelSelector interface {
	// SelectModelForTask picks the single best-fit descriptor for a request.
	// Returns domain.ErrNoEligibleModel when a required provider cannot be
	// satisfied, or a *domain.MissingDefaultError when the registry is broken.
	SelectModelForTask(req domain.SelectionRequest) (*domain.ModelDescriptor, error)

	// DefaultModel returns the registry's unique default descriptor.
	DefaultModel() (*domain.ModelDescriptor, error)

	// ModelsByProvider returns all descriptors of one provider, in registry order.
	ModelsByProvider(p domain.Provider) []domain.ModelDescriptor

	// ModelsByCapability returns all descriptors carrying one capability, in registry order.
	ModelsByCapability(c domain.Capability) []domain.ModelDescriptor
}
