package services

import (
	"sort"

	"github.com/continuum-hq/model-router/internal/core/domain"
	"github.com/continuum-hq/model-router/internal/core/ports"
)

// Selector routes tasks to models by capability. It is stateless between
// calls and only reads the injected registry, so it is safe for any number of
// concurrent callers.
type Selector struct {
	registry ports.ModelRegistry
}

func NewSelector(registry ports.ModelRegistry) *Selector {
	return &Selector{registry: registry}
}

// SelectModelForTask picks the single best-fit descriptor for a request.
//
// Candidate pools are tried in order: models covering every requested
// capability, then models covering at least one, then the default model. A
// preferred provider narrows the pool when it can; when it cannot and
// fallback is disabled the call is an explicit miss (ErrNoEligibleModel).
// Survivors are ranked default-first, then by capability count, then by
// context window, with registry order breaking any remaining tie.
func (s *Selector) SelectModelForTask(req domain.SelectionRequest) (*domain.ModelDescriptor, error) {
	// A task with no stated needs always gets the default model, regardless
	// of provider preference.
	if len(req.Capabilities) == 0 {
		return s.DefaultModel()
	}

	all := s.registry.List()

	candidates := make([]domain.ModelDescriptor, 0, len(all))
	for _, m := range all {
		if m.HasAll(req.Capabilities) {
			candidates = append(candidates, m)
		}
	}

	if len(candidates) == 0 {
		// No model covers the full request; settle for partial coverage.
		for _, m := range all {
			if m.HasAny(req.Capabilities) {
				candidates = append(candidates, m)
			}
		}
	}

	if len(candidates) == 0 {
		return s.DefaultModel()
	}

	if req.PreferredProvider != "" {
		preferred := make([]domain.ModelDescriptor, 0, len(candidates))
		for _, m := range candidates {
			if m.Provider == req.PreferredProvider {
				preferred = append(preferred, m)
			}
		}

		switch {
		case len(preferred) > 0:
			candidates = preferred
		case !req.FallbackAllowed:
			return nil, domain.ErrNoEligibleModel
		}
		// Otherwise keep considering all providers.
	}

	// Stable sort keeps registry order on full ties, so repeated calls with
	// the same registry and request always return the same descriptor.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.IsDefault != b.IsDefault {
			return a.IsDefault
		}
		if len(a.Capabilities) != len(b.Capabilities) {
			return len(a.Capabilities) > len(b.Capabilities)
		}
		return a.ContextWindowTokens > b.ContextWindowTokens
	})

	top := candidates[0]
	return &top, nil
}

// DefaultModel returns the registry's unique default descriptor. A registry
// without one is broken configuration and reported as *MissingDefaultError,
// distinct from a routing miss.
func (s *Selector) DefaultModel() (*domain.ModelDescriptor, error) {
	for _, m := range s.registry.List() {
		if m.IsDefault {
			found := m
			return &found, nil
		}
	}
	return nil, &domain.MissingDefaultError{Size: s.registry.Len()}
}

// ModelsByProvider returns every descriptor served by the given provider, in
// registry order. An empty result is not an error.
func (s *Selector) ModelsByProvider(p domain.Provider) []domain.ModelDescriptor {
	matched := make([]domain.ModelDescriptor, 0)
	for _, m := range s.registry.List() {
		if m.Provider == p {
			matched = append(matched, m)
		}
	}
	return matched
}

// ModelsByCapability returns every descriptor carrying the given capability,
// in registry order. An empty result is not an error.
func (s *Selector) ModelsByCapability(c domain.Capability) []domain.ModelDescriptor {
	matched := make([]domain.ModelDescriptor, 0)
	for _, m := range s.registry.List() {
		if m.Has(c) {
			matched = append(matched, m)
		}
	}
	return matched
}
